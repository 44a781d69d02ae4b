package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/petpal/petpal/pkg/email"
	"github.com/petpal/petpal/pkg/logger"
	"github.com/petpal/petpal/pkg/token"
)

// Service implements the account operations on top of Storage.
type Service struct {
	cfg     Config
	storage Storage
	mailer  email.EmailSender
	signer  *token.Signer
	log     *slog.Logger
	now     func() time.Time
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the time source for token issuance, verification and
// record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService resolves the signing secret and wires the collaborators.
// It fails with ErrInsecureSecret in production when no secret is configured.
func NewService(cfg Config, storage Storage, mailer email.EmailSender, opts ...Option) (*Service, error) {
	s := &Service{
		cfg:     cfg.withDefaults(),
		storage: storage,
		mailer:  mailer,
		log:     logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("auth"))

	secret, insecure, err := s.cfg.ResolveSecret()
	if err != nil {
		return nil, err
	}
	if insecure {
		s.log.Warn("JWT_SECRET is not set, signing tokens with the development secret")
	}

	s.signer, err = token.NewSigner(secret, token.WithClock(s.now))
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Register creates an account. A duplicate email yields ErrInvalidCredentials
// so that registration does not reveal which addresses exist.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	addr := strings.TrimSpace(in.Email)
	if addr == "" || in.Password == "" {
		return nil, NewValidationError("Missing email or password")
	}

	_, err := s.storage.GetUserByEmail(ctx, addr)
	if err == nil {
		return nil, ErrInvalidCredentials
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := HashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &User{
		ID:           uuid.New(),
		Email:        addr,
		Name:         optional(in.Name),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", logger.UserID(user.ID.String()))
	return user, nil
}

// Login checks credentials. Unknown email, passwordless account and wrong
// password are indistinguishable.
func (s *Service) Login(ctx context.Context, emailAddr, password string) (*User, error) {
	addr := strings.TrimSpace(emailAddr)
	if addr == "" || password == "" {
		return nil, NewValidationError("Missing email or password")
	}

	user, err := s.storage.GetUserByEmail(ctx, addr)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Me re-reads the account named by the session. A vanished account is ErrUnauthorized.
func (s *Service) Me(ctx context.Context, claims *SessionClaims) (*User, error) {
	id, err := claimsUserID(claims)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *Service) ChangePassword(ctx context.Context, claims *SessionClaims, current, next string) error {
	if current == "" || next == "" {
		return NewValidationError("Missing passwords")
	}

	id, err := claimsUserID(claims)
	if err != nil {
		return err
	}

	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrPasswordNotSet
		}
		return fmt.Errorf("failed to load user: %w", err)
	}
	if len(user.PasswordHash) == 0 {
		return ErrPasswordNotSet
	}
	if !VerifyPassword(user.PasswordHash, current) {
		return ErrCurrentPasswordIncorrect
	}

	hash, err := HashPassword(next, s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	if err := s.storage.UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", logger.UserID(id.String()))
	return nil
}

// UpdateProfile applies the non-empty fields of upd. A taken email or a
// vanished account yields ErrStoreConflict.
func (s *Service) UpdateProfile(ctx context.Context, claims *SessionClaims, upd ProfileUpdate) (*User, error) {
	id, err := claimsUserID(claims)
	if err != nil {
		return nil, err
	}

	upd = ProfileUpdate{Name: optional(upd.Name), Email: optional(upd.Email)}

	user, err := s.storage.UpdateProfile(ctx, id, upd)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrUserNotFound) {
			return nil, errors.Join(ErrStoreConflict, err)
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func claimsUserID(claims *SessionClaims) (uuid.UUID, error) {
	if claims == nil {
		return uuid.Nil, ErrUnauthorized
	}
	id, err := claims.UserID()
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}

// optional trims v and maps empty strings to nil.
func optional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
