// File: services/user/auth.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"afinare/models"
	"afinare/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// ErrInvalidCredentials hides which of email/password was wrong.
var ErrInvalidCredentials = errors.New("e-mail ou senha inválidos")

// ErrEmailTaken indicates the e-mail is already registered.
var ErrEmailTaken = errors.New("este e-mail já está cadastrado")

// ErrWeakPassword rejects passwords shorter than six characters.
var ErrWeakPassword = errors.New("a senha deve ter pelo menos 6 caracteres")

func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := utils.AuthSession{
		UserID:    usr.ID,
		Email:     usr.Email,
		CreatedAt: time.Now(),
	}
	if err := utils.SaveAuthSession(s.Sessions, utils.HashToken(token), session); err != nil {
		return nil, fmt.Errorf("failed to create auth session: %w", err)
	}

	return &AuthResponse{User: *usr, Token: token}, nil
}

// Register creates a new account with role "cliente" and signs it in.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("nome e e-mail são obrigatórios")
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleClient,
		CreatedAt:    time.Now(),
	}
	if _, err := s.Repo.Create(ctx, usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(usr)
}

// Authenticate verifies the password and issues a fresh session token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(usr)
}

// RevokeToken invalidates the session behind the given token.
func (s *DefaultUserService) RevokeToken(ctx context.Context, token string) error {
	return utils.DeleteAuthSession(s.Sessions, utils.HashToken(token))
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetRole reads the role field from the users document. Privilege checks go
// through here on every request instead of trusting token claims.
func (s *DefaultUserService) GetRole(ctx context.Context, id string) (string, error) {
	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return usr.Role, nil
}

func (s *DefaultUserService) SetFCMToken(ctx context.Context, id, token string) error {
	return s.Repo.SetFCMToken(ctx, id, token)
}

// EnsureAdmin bootstraps the administrative account if it does not exist yet.
func (s *DefaultUserService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	usr := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if _, err := s.Repo.Create(ctx, usr); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	utils.GetLogger().Info("EnsureAdmin: admin account created", zap.String("email", email))
	return nil
}
