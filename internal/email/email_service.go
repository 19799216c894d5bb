package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type Service interface {
	SendOrderNotification(ctx context.Context, to, summary string) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	baseURL   string
}

func NewResendServiceFromEnv() (Service, error) {
	apiKey := strings.Trim(os.Getenv("RESEND_API_KEY"), "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from := strings.TrimSpace(strings.Trim(os.Getenv("RESEND_FROM_EMAIL"), "\""))
	if from == "" {
		from = "onboarding@resend.dev"
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		baseURL:   "https://api.resend.com",
	}, nil
}

func NewNoopService() Service {
	return &noopService{}
}

// SendOrderNotification tells the shop operator a new order came in.
func (s *resendService) SendOrderNotification(ctx context.Context, to, summary string) error {
	html := fmt.Sprintf("<p>A new order was placed on the storefront.</p><pre>%s</pre>", summary)
	return s.send(ctx, to, "New order received", html)
}

func (s *resendService) send(ctx context.Context, to, subject, html string) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(respBody))
		if len(msg) > 500 {
			msg = msg[:500]
		}
		if msg == "" {
			return fmt.Errorf("resend API returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, msg)
	}

	return nil
}

type noopService struct{}

func (s *noopService) SendOrderNotification(_ context.Context, _, _ string) error {
	return nil
}
