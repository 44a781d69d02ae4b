package account

import (
	"github.com/petpal/petpal/handler"
	"github.com/petpal/petpal/svc/auth"
)

type RegisterRequest struct {
	Name     *string `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (s *Service) register(ctx handler.Context, req RegisterRequest) handler.Response {
	user, err := s.auth.Register(ctx, auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return handler.Error(err)
	}
	return s.startSession(ctx, user)
}

func (s *Service) login(ctx handler.Context, req LoginRequest) handler.Response {
	user, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return handler.Error(err)
	}
	return s.startSession(ctx, user)
}

// startSession attaches a fresh session token and renders the identity.
func (s *Service) startSession(ctx handler.Context, user *auth.User) handler.Response {
	tok, err := s.auth.IssueSession(user)
	if err != nil {
		return handler.Error(err)
	}
	if err := s.transport.SetToken(ctx.ResponseWriter(), tok, s.auth.SessionTTL()); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(user.Identity())
}

func (s *Service) logout(ctx handler.Context, _ struct{}) handler.Response {
	if err := s.transport.ClearToken(ctx.ResponseWriter()); err != nil {
		return handler.Error(err)
	}
	return handler.OK()
}

func (s *Service) me(ctx handler.Context, _ struct{}) handler.Response {
	user, err := s.auth.Me(ctx, auth.ClaimsFromContext(ctx))
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(user.Identity())
}

func (s *Service) forgot(ctx handler.Context, req ForgotRequest) handler.Response {
	if err := s.auth.RequestReset(ctx, req.Email); err != nil {
		return handler.Error(err)
	}
	return handler.OK()
}

func (s *Service) resetPassword(ctx handler.Context, req ResetPasswordRequest) handler.Response {
	if err := s.auth.RedeemReset(ctx, req.Token, req.Password); err != nil {
		return handler.Error(err)
	}
	return handler.OK()
}

func (s *Service) changePassword(ctx handler.Context, req ChangePasswordRequest) handler.Response {
	err := s.auth.ChangePassword(ctx, auth.ClaimsFromContext(ctx), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return handler.Error(err)
	}
	return handler.OK()
}

func (s *Service) updateProfile(ctx handler.Context, req UpdateProfileRequest) handler.Response {
	user, err := s.auth.UpdateProfile(ctx, auth.ClaimsFromContext(ctx), auth.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(user.Identity())
}
