package impl

import (
	"context"
	"log/slog"
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

const resetPasswordSubject = "Task Management System Reset Password"

// passwordResetService implements the PasswordResetUsecase interface.
//
// The flow is forgot -> verify -> update. VerifyResetCode hands out a reset token
// fingerprinting the verified code, and UpdatePassword only accepts a token whose
// fingerprint still matches the stored code. Updating clears the code, so a token
// works once.
type passwordResetService struct {
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
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
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

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	var codeTTL time.Duration
	if params.Config != nil && params.Config.Auth != nil {
		codeTTL = params.Config.Auth.CodeTTL
	}

	return &passwordResetService{
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

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// findVerified loads a verified account for the reset flow.
func (srv *passwordResetService) findVerified(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapUserLookupError(err, domainerrors.ErrEmailNotFound)
	}
	if !user.IsVerified {
		return nil, domainerrors.ErrUserNotVerified
	}

	return user, nil
}

// ForgotPassword overwrites any previous code with a fresh one and mails it.
func (srv *passwordResetService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := srv.findVerified(ctx, email); err != nil {
		return err
	}

	code, err := srv.codes.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().UpdateConfirmationCode(ctx, email, code, srv.clock.Now()); err != nil {
			return errors.Wrap(err, "failed to store reset code")
		}

		return sendCode(ctx, srv.mailer, email, resetPasswordSubject, code)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset request failed", slog.Any("error", err))

		return err
	}
	srv.log(ctx).Info("Password reset code sent")

	return nil
}

// VerifyResetCode matches code exactly and returns a reset token. The user record is not modified.
func (srv *passwordResetService) VerifyResetCode(ctx context.Context, email, code string) (string, error) {
	user, err := srv.findVerified(ctx, email)
	if err != nil {
		return "", err
	}

	if !user.CodeMatches(code) {
		return "", domainerrors.ErrInvalidCode
	}
	if user.CodeExpired(srv.clock.Now(), srv.codeTTL) {
		return "", domainerrors.ErrCodeExpired
	}

	resetToken, err := srv.tokens.IssueResetToken(user.Email, codeFingerprint(code))
	if err != nil {
		return "", errors.Wrap(err, "failed to issue reset token")
	}

	return resetToken, nil
}

// UpdatePassword stores a new password for a verified reset and consumes the code.
func (srv *passwordResetService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	claims, err := srv.tokens.ValidateResetToken(input.ResetToken)
	if err != nil || claims.Subject != input.Email {
		return domainerrors.ErrResetNotVerified
	}

	user, err := srv.findVerified(ctx, input.Email)
	if err != nil {
		return err
	}
	if !user.HasActiveCode() || !fingerprintsEqual(codeFingerprint(*user.ConfirmationCode), claims.Fingerprint) {
		return domainerrors.ErrResetNotVerified
	}

	if err := srv.policy.Validate(input.Password); err != nil {
		return err
	}

	claimed, err := srv.revocation.Claim(ctx, input.ResetToken, claims.ExpiresAt)
	if err != nil {
		return errors.Wrap(err, "failed to claim reset token")
	}
	if !claimed {
		return domainerrors.ErrResetNotVerified
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, input.Email, hashedPassword); err != nil {
		return errors.Wrap(err, "failed to update password")
	}
	srv.log(ctx).Info("Password updated", slog.Any("user_id", user.ID))

	return nil
}
