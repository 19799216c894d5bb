package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	profileerrors "steez-storefront/internal/profile/errors"
	"steez-storefront/internal/session"
)

// Service proxies the account surface of the shop backend: the profile record
// and the customer's own order history. Every call needs the upstream
// credential, so guests are turned away before anything leaves the process.
type Service interface {
	Profile(ctx context.Context, sess session.Session) (json.RawMessage, error)
	UpdateProfile(ctx context.Context, sess session.Session, req UpdateRequest) (json.RawMessage, error)
	MyOrders(ctx context.Context, sess session.Session) (json.RawMessage, error)
}

type service struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewService(baseURL string) Service {
	return &service{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  zap.L().Named("profile.service"),
	}
}

func (s *service) Profile(ctx context.Context, sess session.Session) (json.RawMessage, error) {
	return s.do(ctx, sess, http.MethodGet, "/users/profile", nil)
}

func (s *service) UpdateProfile(ctx context.Context, sess session.Session, req UpdateRequest) (json.RawMessage, error) {
	return s.do(ctx, sess, http.MethodPut, "/users/profile", req)
}

func (s *service) MyOrders(ctx context.Context, sess session.Session) (json.RawMessage, error) {
	return s.do(ctx, sess, http.MethodGet, "/orders/my-orders", nil)
}

func (s *service) do(ctx context.Context, sess session.Session, method, path string, payload any) (json.RawMessage, error) {
	if sess.UpstreamToken == "" {
		return nil, profileerrors.ErrAccountRequired
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, profileerrors.ErrBackendRejected.Wrap(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, profileerrors.ErrBackendRejected.Wrap(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+sess.UpstreamToken)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("profile backend call failed", zap.String("path", path), zap.Error(err))
		return nil, profileerrors.ErrBackendRejected.Wrap(err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &parsed) == nil && parsed.Message != "" {
			return nil, profileerrors.ErrBackendRejected.WithMessage(parsed.Message)
		}
		return nil, profileerrors.ErrBackendRejected
	}

	if len(raw) == 0 {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}
