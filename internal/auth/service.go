package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/parkconserve/park-management/internal/core/events"
)

type Repository interface {
	FindByEmail(role Role, email string) (*Account, error)
	FindByID(role Role, id int64) (*Account, error)
	EmailExists(role Role, email string) (bool, error)
	CreateVisitor(account *Account) error
	UpdatePasswordHash(role Role, id int64, hash string) error
	UpdateLastLogin(role Role, id int64, at time.Time) error
}

type ServiceAPI interface {
	Login(ctx context.Context, dto LoginDTO) (*LoginResult, error)
	LoginAs(ctx context.Context, role Role, dto LoginDTO) (*LoginResult, error)
	RegisterVisitor(ctx context.Context, dto RegisterDTO) (*Account, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type Service struct {
	repo       Repository
	tokens     *JWTTokenGenerator
	eventBus   *events.EventBus
	logger     *slog.Logger
	bcryptCost int
}

func NewService(repo Repository, tokens *JWTTokenGenerator, eventBus *events.EventBus, logger *slog.Logger, bcryptCost int) *Service {
	return &Service{
		repo:       repo,
		tokens:     tokens,
		eventBus:   eventBus,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// Login authenticates a staff member by searching the role tables in fixed
// priority order. An email present in two tables with different passwords
// resolves to whichever table matches first.
func (s *Service) Login(ctx context.Context, dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	// The first table containing the email wins; a wrong password there does
	// not fall through to later tables.
	for _, role := range StaffLoginOrder {
		result, err := s.authenticate(ctx, role, dto)
		if errors.Is(err, ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	return nil, ErrInvalidCredentials
}

// LoginAs authenticates against a single role table.
func (s *Service) LoginAs(ctx context.Context, role Role, dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	result, err := s.authenticate(ctx, role, dto)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return result, nil
}

func (s *Service) authenticate(ctx context.Context, role Role, dto LoginDTO) (*LoginResult, error) {
	account, err := s.repo.FindByEmail(role, dto.Email)
	if err != nil {
		return nil, err
	}

	ok, needsRehash := VerifyPassword(account.PasswordHash, dto.Password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if needsRehash {
		if newHash, hashErr := HashPassword(dto.Password, s.bcryptCost); hashErr == nil {
			if err := s.repo.UpdatePasswordHash(role, account.ID, newHash); err != nil {
				s.logger.Warn("failed to upgrade legacy password hash", "role", role, "user_id", account.ID, "error", err)
			}
		}
	}

	now := time.Now()
	if err := s.repo.UpdateLastLogin(role, account.ID, now); err != nil {
		s.logger.Warn("failed to update last login", "role", role, "user_id", account.ID, "error", err)
	}
	account.LastLogin = &now

	token, err := s.tokens.GenerateToken(account.ID, account.Email, role)
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		_ = s.eventBus.Publish(ctx, events.NewUserLoggedInEvent(account.ID, account.Email, string(role)))
	}

	return &LoginResult{Token: token, Role: role, User: account}, nil
}

// RegisterVisitor creates a visitor account with a bcrypt password hash.
func (s *Service) RegisterVisitor(ctx context.Context, dto RegisterDTO) (*Account, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(RoleVisitor, dto.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &Account{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateVisitor(account); err != nil {
		return nil, err
	}

	s.logger.Info("visitor registered", "visitor_id", account.ID, "email", account.Email)
	return account, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}

// JWTTokenGenerator issues HS256 session tokens.
type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

func (j *JWTTokenGenerator) GenerateToken(userID int64, email string, role Role) (string, error) {
	now := time.Now()
	subject := strconv.FormatInt(userID, 10)

	claims := &Claims{
		UserID: subject,
		Email:  email,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
