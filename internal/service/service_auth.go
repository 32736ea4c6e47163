// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/festivize/festivize/internal/config"
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/store"
	"github.com/festivize/festivize/internal/utils"
	"github.com/festivize/festivize/models"
	"golang.org/x/crypto/bcrypt"
)

// authService implements [AuthService] on top of the user repository and the
// JWT helpers. Passwords are stored as bcrypt hashes only.
type authService struct {
	users  store.UserRepository
	auth   config.Auth
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService].
func NewAuthService(users store.UserRepository, auth config.Auth, log *logger.Logger) AuthService {
	log.Debug().Msg("creating auth service")
	return &authService{
		users:  users,
		auth:   auth,
		logger: log,
	}
}

// Register validates the account data, hashes the password and persists the
// user. The role defaults to a regular user when omitted; only "user" and
// "admin" are accepted.
func (s *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" || user.Name == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return models.User{}, ErrInvalidDataProvided
	}
	switch user.Role {
	case "":
		user.Role = models.RoleUser
	case models.RoleUser, models.RoleAdmin:
	default:
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error: hashing error")
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login checks the credentials against the stored hash and, on success,
// issues a signed token. A missing account and a wrong password are both
// reported as ErrWrongPassword so callers cannot probe for registered emails.
func (s *authService) Login(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrWrongPassword
		}
		return models.Token{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("failed login attempt")
		return models.Token{}, ErrWrongPassword
	}

	token, err := utils.GenerateJWTToken(s.auth.TokenIssuer, user, s.auth.TokenDuration, s.auth.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error: token generation error")
		return models.Token{}, fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}

// ParseToken validates the token signature, issuer and expiry.
func (s *authService) ParseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.auth.TokenSignKey, s.auth.TokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}
