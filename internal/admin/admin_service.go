package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	adminerrors "steez-storefront/internal/admin/errors"
	"steez-storefront/internal/cloudinary"
	"steez-storefront/internal/session"
)

// Service proxies the admin management surface of the shop backend. The only
// work it does itself is hosting product images: uploads go to cloudinary and
// the resulting URL is forwarded with the product record.
type Service interface {
	CreateProduct(ctx context.Context, sess session.Session, form ProductForm, image multipart.File, imageName string) (json.RawMessage, error)
	UpdateProduct(ctx context.Context, sess session.Session, id int64, form ProductForm, image multipart.File, imageName string) (json.RawMessage, error)
	DeleteProduct(ctx context.Context, sess session.Session, id int64) error
	Orders(ctx context.Context, sess session.Session) (json.RawMessage, error)
	UpdateOrderStatus(ctx context.Context, sess session.Session, id int64, req OrderStatusRequest) (json.RawMessage, error)
}

type service struct {
	baseURL string
	client  *http.Client
	images  cloudinary.Service
	logger  *zap.Logger
}

func NewService(baseURL string, images cloudinary.Service) Service {
	return &service{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		images:  images,
		logger:  zap.L().Named("admin.service"),
	}
}

func (s *service) CreateProduct(ctx context.Context, sess session.Session, form ProductForm, image multipart.File, imageName string) (json.RawMessage, error) {
	payload, err := s.buildProductPayload(ctx, form, image, imageName)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, sess, http.MethodPost, "/products", payload)
}

func (s *service) UpdateProduct(ctx context.Context, sess session.Session, id int64, form ProductForm, image multipart.File, imageName string) (json.RawMessage, error) {
	payload, err := s.buildProductPayload(ctx, form, image, imageName)
	if err != nil {
		return nil, err
	}
	return s.do(ctx, sess, http.MethodPut, fmt.Sprintf("/products/%d", id), payload)
}

func (s *service) DeleteProduct(ctx context.Context, sess session.Session, id int64) error {
	_, err := s.do(ctx, sess, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil)
	return err
}

func (s *service) Orders(ctx context.Context, sess session.Session) (json.RawMessage, error) {
	return s.do(ctx, sess, http.MethodGet, "/orders", nil)
}

func (s *service) UpdateOrderStatus(ctx context.Context, sess session.Session, id int64, req OrderStatusRequest) (json.RawMessage, error) {
	return s.do(ctx, sess, http.MethodPut, fmt.Sprintf("/orders/%d", id), req)
}

func (s *service) buildProductPayload(ctx context.Context, form ProductForm, image multipart.File, imageName string) (productPayload, error) {
	sizes, err := form.parseSizes()
	if err != nil {
		return productPayload{}, err
	}

	payload := productPayload{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Stock:       form.Stock,
		CategoryID:  form.CategoryID,
		BrandID:     form.BrandID,
		Sizes:       sizes,
	}

	if image != nil {
		url, err := s.images.UploadImage(ctx, image, uuid.NewString()+"-"+imageName)
		if err != nil {
			s.logger.Error("image upload failed", zap.String("file", imageName), zap.Error(err))
			return productPayload{}, adminerrors.ErrImageUploadFailed.Wrap(err)
		}
		payload.ImageURL = url
	}

	return payload, nil
}

func (s *service) do(ctx context.Context, sess session.Session, method, path string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, adminerrors.ErrBackendRejected.Wrap(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, adminerrors.ErrBackendRejected.Wrap(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+sess.UpstreamToken)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("admin backend call failed", zap.String("path", path), zap.Error(err))
		return nil, adminerrors.ErrBackendRejected.Wrap(err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &parsed) == nil && parsed.Message != "" {
			return nil, adminerrors.ErrBackendRejected.WithMessage(parsed.Message)
		}
		return nil, adminerrors.ErrBackendRejected
	}

	if len(raw) == 0 {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}
