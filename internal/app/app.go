package app

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"steez-storefront/internal/cloudinary"
	"steez-storefront/internal/messaging/kafka/producer"
)

func BuildApp(router *gin.Engine) error {
	shopAPIURL := os.Getenv("SHOP_API_URL")
	if shopAPIURL == "" {
		return fmt.Errorf("SHOP_API_URL is not configured")
	}

	// 1. Setup Infrastructure
	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	publisher := producer.NewNoopPublisher()
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		kafkaWriter, err := ConnectKafkaWithRetry(broker, 5)
		if err != nil {
			return err
		}
		publisher = producer.NewPublisher(kafkaWriter)
	}

	// 2. Setup Third Party Services
	imageSvc, err := cloudinary.NewServiceFromEnv()
	if err != nil {
		log.Printf("cloudinary disabled: %v", err)
		imageSvc = cloudinary.NewNoopService()
	}

	// 3. Register Modules & Routes
	registerModules(router, shopAPIURL, redisClient, publisher, imageSvc)

	return nil
}
