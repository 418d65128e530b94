// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"taskman/config"
	deliverycontext "taskman/internal/delivery/context"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/domain/service"
	"taskman/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	verifyEmailSubject = "Task Management System Verify Email"
	codeMessagePrefix  = "Your code is: "

	// decoyPassword seeds the hash compared against when a login email matches no account.
	decoyPassword = "taskman-unknown-account"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	policy     service.PasswordPolicy
	tokens     service.TokenCodec
	revocation service.RevocationRegistry
	mailer     service.EmailDispatcher
	clock      service.Clock
	codes      service.CodeGenerator
	codeTTL    time.Duration
	logger     *slog.Logger

	decoyOnce sync.Once
	decoyHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	Policy     service.PasswordPolicy
	Tokens     service.TokenCodec
	Revocation service.RevocationRegistry
	Mailer     service.EmailDispatcher
	Clock      service.Clock
	Codes      service.CodeGenerator
	Config     *config.Config
	Logger     *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var codeTTL time.Duration
	if params.Config != nil && params.Config.Auth != nil {
		codeTTL = params.Config.Auth.CodeTTL
	}

	return &authService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		policy:     params.Policy,
		tokens:     params.Tokens,
		revocation: params.Revocation,
		mailer:     params.Mailer,
		clock:      params.Clock,
		codes:      params.Codes,
		codeTTL:    codeTTL,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unverified USER account and mails it a confirmation code.
// The account is only kept when the code was handed to the mail relay.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting user registration")

	if err := srv.policy.Validate(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	code, err := srv.codes.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate confirmation code")
	}

	now := srv.clock.Now()
	newUser := &entity.User{
		Email:            input.Email,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		PasswordHash:     hashedPassword,
		Role:             entity.RoleUser,
		IsVerified:       false,
		ConfirmationCode: &code,
		CodeSentAt:       &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		return sendCode(ctx, srv.mailer, newUser.Email, verifyEmailSubject, code)
	})
	if err != nil {
		srv.log(ctx).Warn("User registration failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}
	srv.log(ctx).Info("User registered", slog.Any("user_id", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// VerifyEmail confirms an account. The code must match and be younger than the code TTL.
func (srv *authService) VerifyEmail(ctx context.Context, email, code string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return mapUserLookupError(err, domainerrors.ErrUserNotFound)
	}

	if user.IsVerified {
		return domainerrors.ErrAlreadyVerified
	}
	if !user.CodeMatches(code) {
		return domainerrors.ErrInvalidCode
	}
	if user.CodeExpired(srv.clock.Now(), srv.codeTTL) {
		return domainerrors.ErrCodeExpired
	}

	if err := srv.userRepo.MarkVerified(ctx, email); err != nil {
		return errors.Wrap(err, "failed to mark user verified")
	}
	srv.log(ctx).Info("User verified", slog.Any("user_id", user.ID))

	return nil
}

// ResendCode replaces the confirmation code of an unverified account and mails it.
func (srv *authService) ResendCode(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return mapUserLookupError(err, domainerrors.ErrUserNotFound)
	}
	if user.IsVerified {
		return domainerrors.ErrAlreadyVerified
	}

	code, err := srv.codes.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate confirmation code")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().UpdateConfirmationCode(ctx, email, code, srv.clock.Now()); err != nil {
			return errors.Wrap(err, "failed to store confirmation code")
		}

		return sendCode(ctx, srv.mailer, email, verifyEmailSubject, code)
	})
	if err != nil {
		srv.log(ctx).Warn("Resending confirmation code failed", slog.Any("error", err))

		return err
	}

	return nil
}

// Login checks credentials before verification state, so the verification flag
// of an account is only revealed to someone holding its password.
func (srv *authService) Login(ctx context.Context, email, password string) (*entity.TokenPair, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(password, srv.decoy(ctx))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Debug("Login rejected", slog.Any("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, domainerrors.ErrUserNotVerified
	}

	pair, err := srv.tokens.IssueTokenPair(user.Email, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}
	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return pair, nil
}

// decoy returns a hash made with the configured cost, so logins for unknown
// emails take as long as wrong passwords.
func (srv *authService) decoy(ctx context.Context) string {
	srv.decoyOnce.Do(func() {
		hash, err := srv.hasher.Hash(decoyPassword)
		if err != nil {
			srv.log(ctx).Warn("Failed to prepare decoy hash", slog.Any("error", err))
		}
		srv.decoyHash = hash
	})

	return srv.decoyHash
}

// RefreshAccessToken rotates a refresh token. The presented token is revoked and a new
// pair is issued with the user's current role. Every failure reads as an invalid refresh token.
func (srv *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	pair, err := srv.refresh(ctx, refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	return pair, nil
}

func (srv *authService) refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	if !srv.tokens.ValidateRefreshToken(refreshToken) {
		return nil, errors.New("refresh token failed validation")
	}

	subject, err := srv.tokens.ExtractUsername(refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read subject")
	}
	expiresAt, err := srv.tokens.ExtractExpiration(refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read expiry")
	}

	// Only the caller that claims the token may rotate it.
	claimed, err := srv.revocation.Claim(ctx, refreshToken, expiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim refresh token")
	}
	if !claimed {
		return nil, errors.New("refresh token was revoked")
	}

	user, err := srv.userRepo.FindByEmail(ctx, subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	pair, err := srv.tokens.IssueTokenPair(user.Email, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	return pair, nil
}

// Logout revokes accessToken until its own expiry.
func (srv *authService) Logout(ctx context.Context, accessToken string) error {
	expiresAt, err := srv.tokens.ExtractExpiration(accessToken)
	if err != nil {
		return domainerrors.ErrBadToken
	}

	if err := srv.revocation.Add(ctx, accessToken, expiresAt); err != nil {
		srv.log(ctx).Error("Failed to revoke token", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke token")
	}
	srv.log(ctx).Debug("Token revoked", slog.Time("expires_at", expiresAt))

	return nil
}

// Authenticate accepts only unexpired, unrevoked access tokens.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.Caller, error) {
	claims, err := srv.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	revoked, err := srv.revocation.IsRevoked(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check revocation")
	}
	if revoked {
		return nil, domainerrors.ErrUnauthenticated
	}

	return &entity.Caller{Email: claims.Subject, Role: claims.Role}, nil
}
