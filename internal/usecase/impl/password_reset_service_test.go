package impl

import (
	"context"
	"testing"
	"time"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	mockRepo "taskman/internal/mocks/repository"
	mockSvc "taskman/internal/mocks/service"
	"taskman/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordResetFixtures struct {
	service    usecase.PasswordResetUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	userRepo   *mockRepo.MockUserRepository
	tokens     *mockSvc.MockTokenCodec
	revocation *mockSvc.MockRevocationRegistry
	mailer     *mockSvc.MockEmailDispatcher
	codes      *mockSvc.MockCodeGenerator
}

func createTestPasswordResetService(t *testing.T) passwordResetFixtures {
	fx := passwordResetFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		tokens:     mockSvc.NewMockTokenCodec(t),
		revocation: mockSvc.NewMockRevocationRegistry(t),
		mailer:     mockSvc.NewMockEmailDispatcher(t),
		codes:      mockSvc.NewMockCodeGenerator(t),
	}
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()

	fx.service = NewPasswordResetService(PasswordResetServiceParams{
		TxManager:  fx.txManager,
		UserRepo:   fx.userRepo,
		Hasher:     mockSvc.NewMockPasswordHasher(t),
		Policy:     mockSvc.NewMockPasswordPolicy(t),
		Tokens:     fx.tokens,
		Revocation: fx.revocation,
		Mailer:     fx.mailer,
		Clock:      clock,
		Codes:      fx.codes,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestPasswordResetService_ForgotPassword_MailsResetCode(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := newVerifiedUser("a@x.com", entity.RoleUser)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.codes.EXPECT().Generate().Return("424242", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().UpdateConfirmationCode(ctx, user.Email, "424242", testNow).Return(nil)
	fx.mailer.EXPECT().Send(ctx, user.Email, "Task Management System Reset Password", "Your code is: 424242").Return(nil)

	require.NoError(t, fx.service.ForgotPassword(ctx, user.Email))
}

func TestPasswordResetService_ForgotPassword_DeliveryFailure(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := newVerifiedUser("a@x.com", entity.RoleUser)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.codes.EXPECT().Generate().Return("424242", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().UpdateConfirmationCode(ctx, user.Email, "424242", testNow).Return(nil)
	fx.mailer.EXPECT().Send(ctx, user.Email, resetPasswordSubject, "Your code is: 424242").Return(errors.New("relay down"))

	err := fx.service.ForgotPassword(ctx, user.Email)

	assert.True(t, errors.Is(err, domainerrors.ErrEmailDeliveryFailed))
}

func TestPasswordResetService_VerifyResetCode_Expired(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := newVerifiedUser("a@x.com", entity.RoleUser)
	user.ConfirmationCode = strPtr("424242")
	user.CodeSentAt = timePtr(testNow.Add(-time.Hour))

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	token, err := fx.service.VerifyResetCode(ctx, user.Email, "424242")

	assert.Empty(t, token)
	assert.Equal(t, domainerrors.ErrCodeExpired, err)
}

func TestPasswordResetService_VerifyResetCode_BindsFingerprint(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	user := newVerifiedUser("a@x.com", entity.RoleUser)
	user.ConfirmationCode = strPtr("424242")
	user.CodeSentAt = timePtr(testNow.Add(-time.Minute))

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokens.EXPECT().IssueResetToken(user.Email, codeFingerprint("424242")).Return("reset-token", nil)

	token, err := fx.service.VerifyResetCode(ctx, user.Email, "424242")

	require.NoError(t, err)
	assert.Equal(t, "reset-token", token)
	assert.NotContains(t, codeFingerprint("424242"), "424242")
}
