package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"steez-storefront/internal/pkg/apperror"
	sessionerrors "steez-storefront/internal/session/errors"
)

const (
	RoleAdmin = "admin"
	RoleGuest = "guest"

	tokenTTL = 7 * 24 * time.Hour
)

// Service mints and resolves BFF session tokens. Login and registration are
// proxied to the shop backend; the upstream bearer token is folded into our
// own signed token so later requests carry a single credential.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (SessionResponse, error)
	Register(ctx context.Context, req RegisterRequest) (SessionResponse, error)
	GuestLogin() (SessionResponse, error)
	FromToken(token string) (Session, error)
}

type service struct {
	baseURL string
	client  *http.Client
	secret  []byte
	logger  *zap.Logger
}

func NewService(baseURL string) Service {
	return &service{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		secret:  []byte(os.Getenv("JWT_SECRET")),
		logger:  zap.L().Named("session.service"),
	}
}

type upstreamAuthResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    json.Number `json:"id"`
		Name  string      `json:"name"`
		Email string      `json:"email"`
		Role  string      `json:"role"`
	} `json:"user"`
}

func (s *service) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	up, err := s.postAuth(ctx, "/users/login", req, sessionerrors.ErrInvalidCredentials)
	if err != nil {
		return SessionResponse{}, err
	}
	return s.mint(up)
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (SessionResponse, error) {
	up, err := s.postAuth(ctx, "/users/register", req, sessionerrors.ErrRegistrationRejected)
	if err != nil {
		return SessionResponse{}, err
	}
	return s.mint(up)
}

// GuestLogin issues a local guest identity without touching the backend.
// Guests can browse, keep a cart, and check out anonymously.
func (s *service) GuestLogin() (SessionResponse, error) {
	user := UserResponse{
		ID:    "guest_" + uuid.NewString(),
		Name:  "Guest User",
		Role:  RoleGuest,
		Guest: true,
	}

	token, err := s.sign(Session{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		Guest:  true,
	})
	if err != nil {
		return SessionResponse{}, sessionerrors.ErrTokenGenerationFailed.Wrap(err)
	}

	return SessionResponse{Token: token, User: user}, nil
}

func (s *service) FromToken(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, sessionerrors.ErrTokenExpired
		}
		return Session{}, sessionerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, sessionerrors.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return Session{}, sessionerrors.ErrInvalidToken
	}

	sess := Session{UserID: userID}
	sess.Name, _ = claims["name"].(string)
	sess.Email, _ = claims["email"].(string)
	sess.Role, _ = claims["role"].(string)
	sess.Guest, _ = claims["guest"].(bool)
	sess.UpstreamToken, _ = claims["upstream_token"].(string)

	return sess, nil
}

// ========================
// helpers
// ========================

func (s *service) postAuth(ctx context.Context, path string, payload any, rejection *apperror.AppError) (upstreamAuthResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return upstreamAuthResponse{}, sessionerrors.ErrIdentityUnavailable.Wrap(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return upstreamAuthResponse{}, sessionerrors.ErrIdentityUnavailable.Wrap(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Warn("identity request failed", zap.String("path", path), zap.Error(err))
		return upstreamAuthResponse{}, sessionerrors.ErrIdentityUnavailable.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		if msg := upstreamMessage(raw); msg != "" {
			return upstreamAuthResponse{}, rejection.WithMessage(msg)
		}
		return upstreamAuthResponse{}, rejection
	}

	var up upstreamAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&up); err != nil {
		return upstreamAuthResponse{}, sessionerrors.ErrIdentityUnavailable.Wrap(err)
	}
	if up.Token == "" {
		return upstreamAuthResponse{}, sessionerrors.ErrIdentityUnavailable
	}

	return up, nil
}

func (s *service) mint(up upstreamAuthResponse) (SessionResponse, error) {
	user := UserResponse{
		ID:    up.User.ID.String(),
		Name:  up.User.Name,
		Email: up.User.Email,
		Role:  up.User.Role,
	}

	token, err := s.sign(Session{
		UserID:        user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		UpstreamToken: up.Token,
	})
	if err != nil {
		return SessionResponse{}, sessionerrors.ErrTokenGenerationFailed.Wrap(err)
	}

	return SessionResponse{Token: token, User: user}, nil
}

func (s *service) sign(sess Session) (string, error) {
	claims := jwt.MapClaims{
		"user_id": sess.UserID,
		"name":    sess.Name,
		"role":    sess.Role,
		"guest":   sess.Guest,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	if sess.Email != "" {
		claims["email"] = sess.Email
	}
	if sess.UpstreamToken != "" {
		claims["upstream_token"] = sess.UpstreamToken
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func upstreamMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
