package service

import (
	"context"

	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/dto"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	"github.com/google/uuid"
)

type Service interface {
	Register(ctx context.Context, in dto.RegisterDTO) (model.User, error)

	VerifyEmail(ctx context.Context, in dto.VerifyEmailDTO) (model.User, error)

	Login(ctx context.Context, in dto.LoginDTO) (model.User, model.TokenPair, error)

	// Refresh reissues an access token against a valid refresh token whose
	// hash is still the one stored on the account. The refresh token itself
	// is not rotated.
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)

	// Logout invalidates the presented access token and clears the stored
	// refresh-token hash. An already-expired access token is not an error.
	Logout(ctx context.Context, accessToken string) error

	CurrentUser(ctx context.Context, id uuid.UUID) (model.User, error)

	UpdateCurrentUser(ctx context.Context, id uuid.UUID, in dto.UpdateCurrentUserDTO) (model.User, error)

	ForgotPassword(ctx context.Context, in dto.ForgotPasswordDTO) error

	ResetPassword(ctx context.Context, in dto.ResetPasswordDTO) (model.User, error)

	// Authenticate validates an access token for the guard layer and returns
	// the request principal without touching the credential store.
	Authenticate(ctx context.Context, accessToken string) (model.Principal, error)
}
