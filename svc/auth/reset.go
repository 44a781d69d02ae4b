package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/petpal/petpal/pkg/email"
	"github.com/petpal/petpal/pkg/email/templates"
	"github.com/petpal/petpal/pkg/logger"
	"github.com/petpal/petpal/pkg/token"
)

// ResetClaims is the payload of a password reset token. Only the id is trusted.
type ResetClaims struct {
	token.Registered
	ID string `json:"id"`
}

// RequestReset emails a reset link to a known address. Unknown addresses and
// delivery failures are not reported to the caller.
//
// TODO: reset tokens stay valid until expiry after use; store a per-user
// password version in the claims to make them single-use.
func (s *Service) RequestReset(ctx context.Context, emailAddr string) error {
	addr := strings.TrimSpace(emailAddr)
	if addr == "" {
		return NewValidationError("Missing email")
	}

	user, err := s.storage.GetUserByEmail(ctx, addr)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	tok, err := s.signer.Issue(&ResetClaims{ID: user.ID.String()}, PurposePasswordReset, s.cfg.ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	if err := s.sendResetEmail(ctx, user.Email, s.resetURL(tok)); err != nil {
		s.log.ErrorContext(ctx, "password reset email failed",
			logger.UserID(user.ID.String()),
			logger.Error(err),
		)
	}
	return nil
}

// RedeemReset sets a new password for the account named by a valid reset token.
func (s *Service) RedeemReset(ctx context.Context, tokenString, password string) error {
	if tokenString == "" || password == "" {
		return NewValidationError("Missing token or password")
	}

	claims, err := token.Verify[ResetClaims](s.signer, tokenString, PurposePasswordReset)
	if err != nil {
		return errors.Join(ErrInvalidOrExpiredToken, err)
	}
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return errors.Join(ErrInvalidOrExpiredToken, err)
	}

	hash, err := HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	if err := s.storage.UpdatePassword(ctx, id, hash); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return errors.Join(ErrInvalidOrExpiredToken, err)
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", logger.UserID(id.String()))
	return nil
}

func (s *Service) resetURL(tok string) string {
	return s.cfg.BaseURL() + "/reset-password?token=" + url.QueryEscape(tok)
}

func (s *Service) sendResetEmail(ctx context.Context, to, resetURL string) error {
	if s.mailer == nil {
		return errors.New("no mail sender configured")
	}

	html, err := templates.Render(ctx, templates.PasswordResetHTML(resetURL))
	if err != nil {
		return fmt.Errorf("failed to render reset email: %w", err)
	}

	return s.mailer.SendEmail(ctx, email.SendEmailParams{
		SendTo:   to,
		Subject:  templates.PasswordResetSubject,
		BodyText: templates.PasswordResetText(resetURL),
		BodyHTML: html,
		Tag:      "password-reset",
	})
}
