package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/dto"
	"github.com/Miraines/ContactNest/contacts-service/internal/app/auth/hash"
	"github.com/Miraines/ContactNest/contacts-service/internal/app/auth/secrets"
	customErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/mail"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/repo"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/token"
	"github.com/Miraines/ContactNest/contacts-service/internal/infra/config"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type authService struct {
	userRepo  repo.UserRepo
	tokenRepo repo.TokenRepo
	codec     token.Codec
	hasher    hash.Hasher
	secretGen secrets.Generator
	mailer    mail.Sender
	cfg       *config.Config
	v         *validator.Validate
}

func New(
	ur repo.UserRepo,
	tr repo.TokenRepo,
	codec token.Codec,
	hasher hash.Hasher,
	sg secrets.Generator,
	mailer mail.Sender,
	cfg *config.Config,
	v *validator.Validate,
) Service {
	return &authService{
		userRepo: ur, tokenRepo: tr, codec: codec, hasher: hasher,
		secretGen: sg, mailer: mailer, cfg: cfg, v: v,
	}
}

func (a *authService) Register(ctx context.Context, in dto.RegisterDTO) (model.User, error) {
	if err := a.validate(in); err != nil {
		return model.User{}, err
	}

	// Each uniqueness conflict names its field; register is not an
	// enumeration-sensitive path the way login is.
	if _, err := a.userRepo.GetUserByEmail(ctx, in.Email); err == nil {
		return model.User{}, customErrors.NewDuplicateField("email")
	} else if !customErrors.IsNotFound(err) {
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	if _, err := a.userRepo.GetUserByUsername(ctx, in.Username); err == nil {
		return model.User{}, customErrors.NewDuplicateField("username")
	} else if !customErrors.IsNotFound(err) {
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	verificationToken, err := a.secretGen.Secret()
	if err != nil {
		return model.User{}, err
	}

	passwordHash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		ID:                     uuid.New(),
		Email:                  in.Email,
		Username:               in.Username,
		PasswordHash:           passwordHash,
		IsVerified:             false,
		EmailVerificationToken: verificationToken,
	}

	// Role is decided inside CreateUser: the first account to claim the
	// admin sentinel row becomes ADMIN, all later ones USER.
	created, err := a.userRepo.CreateUser(ctx, user)
	if err != nil {
		if customErrors.IsAlreadyExists(err) {
			return model.User{}, err
		}
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	// Mail failure propagates: without the mail the account can never be
	// verified, so silently succeeding would strand it.
	if err := a.sendMail(ctx, func(mailCtx context.Context) error {
		return a.mailer.SendVerificationEmail(mailCtx, created.Username, created.Email, verificationToken)
	}); err != nil {
		return model.User{}, customErrors.WrapInternal(err, "send verification email")
	}

	return created, nil
}

func (a *authService) VerifyEmail(ctx context.Context, in dto.VerifyEmailDTO) (model.User, error) {
	if err := a.validate(in); err != nil {
		return model.User{}, err
	}

	user, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case customErrors.IsNotFound(err):
		return model.User{}, customErrors.ErrNotFound
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "VerifyEmail")
	}

	if user.IsVerified {
		return model.User{}, customErrors.ErrAlreadyVerified
	}

	// Byte-for-byte compare; the token is single-use so it is stored raw.
	if in.Token != user.EmailVerificationToken {
		return model.User{}, customErrors.ErrTokenMismatch
	}

	now := time.Now()
	user.IsVerified = true
	user.VerifiedAt = &now
	user.EmailVerificationToken = ""

	if err := a.userRepo.UpdateUser(ctx, user); err != nil {
		return model.User{}, customErrors.WrapInternal(err, "VerifyEmail")
	}
	return user, nil
}

func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (model.User, model.TokenPair, error) {
	if err := a.validate(in); err != nil {
		return model.User{}, model.TokenPair{}, err
	}

	user, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case customErrors.IsNotFound(err):
		// Same error as a password mismatch so callers cannot probe which
		// emails are registered.
		return model.User{}, model.TokenPair{}, customErrors.ErrInvalidCredentials
	case err != nil:
		return model.User{}, model.TokenPair{}, customErrors.WrapInternal(err, "Login")
	}

	if !user.IsVerified {
		return model.User{}, model.TokenPair{}, customErrors.ErrEmailNotVerified
	}

	ok, err := a.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return model.User{}, model.TokenPair{}, err
	}
	if !ok {
		return model.User{}, model.TokenPair{}, customErrors.ErrInvalidCredentials
	}

	pair, refreshHash, err := a.issueTokens(user.ID)
	if err != nil {
		return model.User{}, model.TokenPair{}, err
	}

	user.RefreshTokenHash = refreshHash
	if err := a.userRepo.UpdateUser(ctx, user); err != nil {
		return model.User{}, model.TokenPair{}, customErrors.WrapInternal(err, "StoreRefresh")
	}

	return user, pair, nil
}

func (a *authService) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	if refreshToken == "" {
		return model.TokenPair{}, customErrors.ErrInvalidToken
	}

	claims, err := a.codec.Decode(refreshToken)
	if err != nil {
		return model.TokenPair{}, customErrors.ErrInvalidToken
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.TokenPair{}, customErrors.ErrInvalidToken
	}

	user, err := a.userRepo.GetUserByID(ctx, uid)
	if err != nil || user.RefreshTokenHash == "" {
		return model.TokenPair{}, customErrors.ErrInvalidToken
	}

	// The signed token checked out; now it must also be the one whose hash
	// we stored at login, so a leaked store cannot mint sessions.
	ok, err := a.hasher.Verify(refreshToken, user.RefreshTokenHash)
	if err != nil {
		return model.TokenPair{}, err
	}
	if !ok {
		return model.TokenPair{}, customErrors.ErrInvalidToken
	}

	access, accessClaims, err := a.codec.Issue(user.ID, token.KindAccess)
	if err != nil {
		return model.TokenPair{}, err
	}

	// The refresh token is deliberately not rotated here; it stays valid
	// until its own expiry.
	return model.TokenPair{
		AccessToken: access,
		AccessTTL:   time.Until(accessClaims.ExpiresAt.Time),
		UserID:      user.ID,
	}, nil
}

func (a *authService) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}

	// An expired or garbage access token still logs out fine; there is
	// nothing server-side left to invalidate for it.
	claims, err := a.codec.Verify(accessToken, token.KindAccess)
	if err != nil {
		return nil
	}

	if err := a.tokenRepo.RevokeAccess(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return customErrors.WrapInternal(err, "Logout")
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil
	}
	user, err := a.userRepo.GetUserByID(ctx, uid)
	if err != nil {
		if customErrors.IsNotFound(err) {
			return nil
		}
		return customErrors.WrapInternal(err, "Logout")
	}

	user.RefreshTokenHash = ""
	if err := a.userRepo.UpdateUser(ctx, user); err != nil {
		return customErrors.WrapInternal(err, "Logout")
	}
	return nil
}

func (a *authService) CurrentUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := a.userRepo.GetUserByID(ctx, id)
	switch {
	case customErrors.IsNotFound(err):
		return model.User{}, customErrors.ErrNotFound
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "CurrentUser")
	}
	return user, nil
}

func (a *authService) UpdateCurrentUser(ctx context.Context, id uuid.UUID, in dto.UpdateCurrentUserDTO) (model.User, error) {
	if err := a.validate(in); err != nil {
		return model.User{}, err
	}

	user, err := a.CurrentUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if in.Username != "" && in.Username != user.Username {
		if _, err := a.userRepo.GetUserByUsername(ctx, in.Username); err == nil {
			return model.User{}, customErrors.NewDuplicateField("username")
		} else if !customErrors.IsNotFound(err) {
			return model.User{}, customErrors.WrapInternal(err, "UpdateCurrentUser")
		}
		user.Username = in.Username
	}

	if in.Password != "" {
		passwordHash, err := a.hasher.Hash(in.Password)
		if err != nil {
			return model.User{}, err
		}
		user.PasswordHash = passwordHash
	}

	if err := a.userRepo.UpdateUser(ctx, user); err != nil {
		return model.User{}, customErrors.WrapInternal(err, "UpdateCurrentUser")
	}
	return user, nil
}

func (a *authService) ForgotPassword(ctx context.Context, in dto.ForgotPasswordDTO) error {
	if err := a.validate(in); err != nil {
		return err
	}

	user, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case customErrors.IsNotFound(err):
		return customErrors.ErrInvalidEmail
	case err != nil:
		return customErrors.WrapInternal(err, "ForgotPassword")
	}

	if !user.IsVerified {
		return customErrors.ErrEmailNotVerified
	}

	resetSecret, err := a.secretGen.Secret()
	if err != nil {
		return err
	}
	resetHash, err := a.hasher.Hash(resetSecret)
	if err != nil {
		return err
	}

	if err := a.sendMail(ctx, func(mailCtx context.Context) error {
		return a.mailer.SendResetPasswordEmail(mailCtx, user.Username, user.Email, resetSecret)
	}); err != nil {
		return customErrors.WrapInternal(err, "send reset email")
	}

	expiresAt := time.Now().Add(a.cfg.ResetTokenTTL)
	user.PasswordResetTokenHash = resetHash
	user.PasswordResetExpiresAt = &expiresAt

	if err := a.userRepo.UpdateUser(ctx, user); err != nil {
		return customErrors.WrapInternal(err, "ForgotPassword")
	}
	return nil
}

func (a *authService) ResetPassword(ctx context.Context, in dto.ResetPasswordDTO) (model.User, error) {
	if err := a.validate(in); err != nil {
		return model.User{}, err
	}

	user, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case customErrors.IsNotFound(err):
		return model.User{}, customErrors.ErrInvalidEmail
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "ResetPassword")
	}

	if user.PasswordResetTokenHash == "" {
		return model.User{}, customErrors.ErrNoResetRequest
	}
	if user.PasswordResetExpiresAt == nil || user.PasswordResetExpiresAt.Before(time.Now()) {
		return model.User{}, customErrors.ErrTokenExpired
	}

	ok, err := a.hasher.Verify(in.ResetToken, user.PasswordResetTokenHash)
	if err != nil {
		return model.User{}, err
	}
	if !ok {
		return model.User{}, customErrors.ErrTokenMismatch
	}

	passwordHash, err := a.hasher.Hash(in.NewPassword)
	if err != nil {
		return model.User{}, err
	}

	// One atomic unit: password swap, reset-token clear and refresh-hash
	// clear, so existing sessions have to authenticate again.
	if err := a.userRepo.ReplacePassword(ctx, user.ID, passwordHash); err != nil {
		return model.User{}, customErrors.WrapInternal(err, "ResetPassword")
	}

	user.PasswordHash = passwordHash
	user.PasswordResetTokenHash = ""
	user.PasswordResetExpiresAt = nil
	user.RefreshTokenHash = ""
	return user, nil
}

func (a *authService) Authenticate(ctx context.Context, accessToken string) (model.Principal, error) {
	claims, err := a.codec.Verify(accessToken, token.KindAccess)
	if err != nil {
		return model.Principal{}, customErrors.ErrInvalidToken
	}

	revoked, err := a.tokenRepo.IsAccessRevoked(ctx, claims.ID)
	if err != nil {
		return model.Principal{}, customErrors.WrapInternal(err, "Authenticate")
	}
	if revoked {
		return model.Principal{}, customErrors.ErrInvalidToken
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Principal{}, customErrors.ErrInvalidToken
	}
	return model.Principal{UserID: uid, TokenJTI: claims.ID}, nil
}

func (a *authService) issueTokens(uid uuid.UUID) (model.TokenPair, string, error) {
	access, accessClaims, err := a.codec.Issue(uid, token.KindAccess)
	if err != nil {
		return model.TokenPair{}, "", err
	}
	refresh, refreshClaims, err := a.codec.Issue(uid, token.KindRefresh)
	if err != nil {
		return model.TokenPair{}, "", err
	}

	refreshHash, err := a.hasher.Hash(refresh)
	if err != nil {
		return model.TokenPair{}, "", err
	}

	now := time.Now()
	return model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessTTL:    accessClaims.ExpiresAt.Sub(now),
		RefreshTTL:   refreshClaims.ExpiresAt.Sub(now),
		UserID:       uid,
	}, refreshHash, nil
}

func (a *authService) sendMail(ctx context.Context, send func(context.Context) error) error {
	// A slow mail provider must not hold the HTTP response hostage.
	mailCtx, cancel := context.WithTimeout(ctx, a.cfg.MailTimeout)
	defer cancel()
	return send(mailCtx)
}

func (a *authService) validate(s any) error {
	err := a.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]customErrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, customErrors.FieldError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed on the %q rule", fe.Tag()),
			})
		}
		return customErrors.NewValidation(fields)
	}
	return customErrors.NewInvalidArgument(err.Error())
}
