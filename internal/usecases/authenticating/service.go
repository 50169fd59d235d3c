package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/business-overview-api/internal/config"
	"github.com/vfg2006/business-overview-api/internal/domain"
)

const issuer = "business-overview-api"

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Authenticator interface {
	IssueToken(sessionID string) (string, time.Time, error)
	ValidateToken(tokenString string) (*domain.SessionClaims, error)
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.SecretKey),
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}
}

// IssueToken gera um token HS256 vinculado à sessão do formulário
func (s *Service) IssueToken(sessionID string) (string, time.Time, error) {
	if sessionID == "" {
		return "", time.Time{}, ErrMissingSession
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := domain.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.SessionID == "" {
		return nil, ErrMissingSession
	}

	return claims, nil
}

// Authorize confere se o token foi emitido para a sessão pedida
func Authorize(claims *domain.SessionClaims, sessionID string) error {
	if claims == nil {
		return ErrInvalidToken
	}
	if claims.SessionID != sessionID {
		return ErrSessionMismatch
	}
	return nil
}
