package dj

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
	"github.com/wavecrate/wavecrate/internal/platform/sec"
	"github.com/wavecrate/wavecrate/internal/platform/validate"
)

// TokenProvider signs access tokens. Satisfied by [sec.TokenService].
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

type Service struct {
	repo        Repository
	sessions    SessionStore
	resetTokens ResetTokenStore
	tokens      TokenProvider
	logger      *slog.Logger
}

func NewService(repo Repository, sessions SessionStore, resetTokens ResetTokenStore, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		sessions:    sessions,
		resetTokens: resetTokens,
		tokens:      tokens,
		logger:      logger,
	}
}

// RegisterInput holds the data to enroll a new DJ.
type RegisterInput struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     sec.UserRole `json:"role"`
}

// Register enrolls a new DJ. Only admins reach this path; the station has
// no self-signup.
func (service *Service) Register(context context.Context, input RegisterInput) (*DJ, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, 64).
		Email(FieldEmail, input.Email).
		MinLen(FieldPassword, input.Password, 8)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Role == "" {
		input.Role = sec.RoleDJ
	}
	if !input.Role.Valid() {
		return nil, validate.RequiredError("role", "Unknown role")
	}

	if _, err := service.repo.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}
	if _, err := service.repo.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	passwordHash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("dj_service_hash_failed: %w", err)
	}

	// Time-sortable ID to keep the PG index append-friendly.
	d := &DJ{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Username:     input.Username,
		Email:        input.Email,
		Role:         input.Role,
		PasswordHash: passwordHash,
	}

	if err := service.repo.CreateDJ(context, d); err != nil {
		return nil, fmt.Errorf("dj_service_register_failed: %w", err)
	}

	service.logger.Info("dj_registered",
		slog.String("dj_id", d.ID),
		slog.String("username", d.Username),
		slog.String("role", string(d.Role)),
	)
	return d, nil
}

// LoginInput is a credential pair; Login accepts a username or an email.
type LoginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginSession is an established session: a short-lived access token plus
// a rotated refresh token.
type LoginSession struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	DJ                    *DJ       `json:"dj"`
}

// Login verifies credentials and opens a session. Lookup failures and
// password mismatches return the same generic error to prevent account
// enumeration.
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	d, err := service.repo.FindByUsername(context, input.Login)
	if err != nil {
		d, err = service.repo.FindByEmail(context, input.Login)
	}
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, d.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.openSession(context, d)
	if err != nil {
		return nil, err
	}

	service.logger.Info("dj_logged_in", slog.String("dj_id", d.ID))
	return session, nil
}

// Logout revokes the refresh session. Idempotent: an already-expired
// token logs out successfully.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.sessions.Delete(context, sec.HashToken(refreshToken))
}

// RefreshSession rotates a refresh token: the old session is revoked
// before the new pair is issued, so a replayed token dies on first use.
func (service *Service) RefreshSession(context context.Context, refreshToken string) (*LoginSession, error) {
	tokenHash := sec.HashToken(refreshToken)

	djID, err := service.sessions.Get(context, tokenHash)
	if err != nil {
		return nil, err
	}
	if err := service.sessions.Delete(context, tokenHash); err != nil {
		return nil, fmt.Errorf("dj_service_refresh_revoke_failed: %w", err)
	}

	d, err := service.repo.GetDJ(context, djID)
	if err != nil {
		return nil, apperr.Unauthorized("DJ account not found")
	}

	return service.openSession(context, d)
}

func (service *Service) openSession(context context.Context, d *DJ) (*LoginSession, error) {
	accessToken, err := service.tokens.GenerateAccessToken(d.ID, d.Username, string(d.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("dj_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("dj_service_refresh_token_failed: %w", err)
	}

	if err := service.sessions.Set(context, sec.HashToken(refreshToken), d.ID, RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("dj_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: time.Now().Add(RefreshTokenTTL),
		DJ:                    d,
	}, nil
}

// RequestPasswordReset starts the forgot-password flow. An unknown email
// returns an empty token with no error, so the endpoint cannot be used to
// enumerate accounts.
func (service *Service) RequestPasswordReset(context context.Context, email string) (string, error) {
	d, err := service.repo.FindByEmail(context, email)
	if err != nil {
		return "", nil
	}

	token, err := sec.GenerateSecureToken(ResetTokenLength)
	if err != nil {
		return "", fmt.Errorf("dj_service_generate_reset_token_failed: %w", err)
	}

	if err := service.resetTokens.Set(context, token, d.ID, ResetTokenTTL); err != nil {
		return "", fmt.Errorf("dj_service_save_reset_token_failed: %w", err)
	}

	return token, nil
}

// ResetPassword completes the forgot-password flow and burns the token.
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {
	validator := &validate.Validator{}
	validator.MinLen(FieldPassword, newPassword, 8)
	if err := validator.Err(); err != nil {
		return err
	}

	djID, err := service.resetTokens.Get(context, token)
	if err != nil {
		return err
	}

	passwordHash, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("dj_service_reset_password_hash_failed: %w", err)
	}
	if err := service.repo.UpdatePassword(context, djID, passwordHash); err != nil {
		return fmt.Errorf("dj_service_reset_password_update_failed: %w", err)
	}

	_ = service.resetTokens.Delete(context, token)

	service.logger.Info("dj_password_reset", slog.String("dj_id", djID))
	return nil
}

func (service *Service) ListDJs(context context.Context) ([]*DJ, error) {
	return service.repo.ListDJs(context)
}

func (service *Service) GetDJ(context context.Context, id string) (*DJ, error) {
	d, err := service.repo.GetDJ(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("DJ")
		}
		return nil, err
	}
	return d, nil
}

// DeleteDJ removes the account. Catalog annotations signed by the DJ are
// left in place with a dangling dj_id.
func (service *Service) DeleteDJ(context context.Context, id string) error {
	if err := service.repo.DeleteDJ(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("DJ")
		}
		return err
	}

	service.logger.Warn("dj_deleted", slog.String("dj_id", id))
	return nil
}
