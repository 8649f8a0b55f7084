package usecase

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"directin/internal/pkg/jwt"
)

// TokenResult is the issued credential plus its lifetime in seconds.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type AuthUsecase interface {
	IssueToken(accessKey string) (TokenResult, error)
}

// AuthService trades the single pre-shared access key for a short-lived
// bearer token. The key itself is never stored, only its bcrypt hash
// from configuration.
type AuthService struct {
	keyHash   string
	tokens    jwt.Service
	expiresIn int
	logger    *log.Logger
}

func NewAuthService(accessKeyHash string, tokens jwt.Service, expiresInSeconds int, logger *log.Logger) *AuthService {
	return &AuthService{
		keyHash:   accessKeyHash,
		tokens:    tokens,
		expiresIn: expiresInSeconds,
		logger:    logger,
	}
}

func (s *AuthService) IssueToken(accessKey string) (TokenResult, error) {
	if accessKey == "" {
		return TokenResult{}, fmt.Errorf("%w: access key is required", ErrInvalidInput)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.keyHash), []byte(accessKey)); err != nil {
		return TokenResult{}, ErrInvalidCredentials
	}

	clientID := uuid.NewString()
	token, err := s.tokens.GenerateAccessToken(clientID)
	if err != nil {
		return TokenResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if s.logger != nil {
		s.logger.Printf("[Auth] token issued client_id=%s", clientID)
	}
	return TokenResult{AccessToken: token, TokenType: "Bearer", ExpiresIn: s.expiresIn}, nil
}

var _ AuthUsecase = (*AuthService)(nil)
