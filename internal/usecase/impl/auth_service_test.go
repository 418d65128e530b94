package impl

import (
	"context"
	"testing"
	"time"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	mockRepo "taskman/internal/mocks/repository"
	mockSvc "taskman/internal/mocks/service"
	"taskman/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service    usecase.AuthUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	userRepo   *mockRepo.MockUserRepository
	hasher     *mockSvc.MockPasswordHasher
	policy     *mockSvc.MockPasswordPolicy
	tokens     *mockSvc.MockTokenCodec
	revocation *mockSvc.MockRevocationRegistry
	mailer     *mockSvc.MockEmailDispatcher
	codes      *mockSvc.MockCodeGenerator
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	policy := mockSvc.NewMockPasswordPolicy(t)
	tokens := mockSvc.NewMockTokenCodec(t)
	revocation := mockSvc.NewMockRevocationRegistry(t)
	mailer := mockSvc.NewMockEmailDispatcher(t)
	clock := mockSvc.NewMockClock(t)
	codes := mockSvc.NewMockCodeGenerator(t)

	clock.EXPECT().Now().Return(testNow).Maybe()

	service := NewAuthService(AuthServiceParams{
		TxManager:  txManager,
		UserRepo:   userRepo,
		Hasher:     hasher,
		Policy:     policy,
		Tokens:     tokens,
		Revocation: revocation,
		Mailer:     mailer,
		Clock:      clock,
		Codes:      codes,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return authServiceFixtures{
		service:    service,
		txManager:  txManager,
		factory:    factory,
		userRepo:   userRepo,
		hasher:     hasher,
		policy:     policy,
		tokens:     tokens,
		revocation: revocation,
		mailer:     mailer,
		codes:      codes,
	}
}

func newVerifiedUser(email string, role entity.Role) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "hashed_password",
		Role:         role,
		IsVerified:   true,
	}
}

func newPendingUser(email, code string, sentAt time.Time) *entity.User {
	user := newVerifiedUser(email, entity.RoleUser)
	user.IsVerified = false
	user.ConfirmationCode = strPtr(code)
	user.CodeSentAt = timePtr(sentAt)

	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "a@x.com",
		Password:  "Password123",
	}

	fx.policy.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.codes.EXPECT().Generate().Return("123456", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.mailer.EXPECT().Send(ctx, input.Email, "Task Management System Verify Email", "Your code is: 123456").Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.False(t, output.User.IsVerified)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	require.NotNil(t, output.User.ConfirmationCode)
	assert.Equal(t, "123456", *output.User.ConfirmationCode)
	assert.Equal(t, testNow, *output.User.CodeSentAt)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{FirstName: "Ann", Email: "a@x.com", Password: "Password123"}

	fx.policy.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.codes.EXPECT().Generate().Return("123456", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_PolicyRejected(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.RegisterInput{FirstName: "Ann", Email: "a@x.com", Password: "short"}
	fx.policy.EXPECT().Validate(input.Password).Return(domainerrors.ErrPasswordPolicy.WithDetails("too short"))

	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordPolicy))
}

func TestAuthService_Register_EmailDeliveryFailureAbortsTransaction(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{FirstName: "Ann", Email: "a@x.com", Password: "Password123"}

	fx.policy.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.codes.EXPECT().Generate().Return("123456", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.mailer.EXPECT().Send(ctx, input.Email, mock.Anything, mock.Anything).Return(errors.New("relay down"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailDeliveryFailed))
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *entity.User
		findErr error
		code    string
		wantErr error
		marks   bool
	}{
		{
			name:  "matching code verifies",
			user:  newPendingUser("a@x.com", "123456", testNow.Add(-time.Minute)),
			code:  "123456",
			marks: true,
		},
		{
			name:    "wrong code",
			user:    newPendingUser("a@x.com", "123456", testNow.Add(-time.Minute)),
			code:    "654321",
			wantErr: domainerrors.ErrInvalidCode,
		},
		{
			name:    "expired code",
			user:    newPendingUser("a@x.com", "123456", testNow.Add(-16*time.Minute)),
			code:    "123456",
			wantErr: domainerrors.ErrCodeExpired,
		},
		{
			name:    "already verified",
			user:    newVerifiedUser("a@x.com", entity.RoleUser),
			code:    "123456",
			wantErr: domainerrors.ErrAlreadyVerified,
		},
		{
			name:    "unknown email",
			findErr: repository.ErrUserNotFound,
			code:    "123456",
			wantErr: domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(tt.user, tt.findErr)
			if tt.marks {
				fx.userRepo.EXPECT().MarkVerified(ctx, "a@x.com").Return(nil)
			}

			err := fx.service.VerifyEmail(ctx, "a@x.com", tt.code)

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAuthService_ResendCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newPendingUser("a@x.com", "111111", testNow.Add(-time.Hour))

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.codes.EXPECT().Generate().Return("222222", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().UpdateConfirmationCode(ctx, user.Email, "222222", testNow).Return(nil)
	fx.mailer.EXPECT().Send(ctx, user.Email, "Task Management System Verify Email", "Your code is: 222222").Return(nil)

	require.NoError(t, fx.service.ResendCode(ctx, user.Email))
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t)
	unknown.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)
	unknown.hasher.EXPECT().Hash(decoyPassword).Return("decoy_hash", nil).Once()
	unknown.hasher.EXPECT().Check("Password123", "decoy_hash").Return(false)
	_, unknownErr := unknown.service.Login(ctx, "nobody@x.com", "Password123")

	wrong := createTestAuthService(t)
	user := newVerifiedUser("a@x.com", entity.RoleUser)
	wrong.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	wrong.hasher.EXPECT().Check("Wrong123", user.PasswordHash).Return(false)
	_, wrongErr := wrong.service.Login(ctx, user.Email, "Wrong123")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr, wrongErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmailSpendsHashCheck(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(decoyPassword).Return("decoy_hash", nil).Once()
	fx.hasher.EXPECT().Check(mock.Anything, "decoy_hash").Return(false).Times(2)

	for _, email := range []string{"nobody@x.com", "ghost@x.com"} {
		_, err := fx.service.Login(ctx, email, "Password123")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestAuthService_Login_UnverifiedUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newPendingUser("a@x.com", "123456", testNow)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123", user.PasswordHash).Return(true)

	pair, err := fx.service.Login(ctx, user.Email, "Password123")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotVerified))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newVerifiedUser("a@x.com", entity.RoleAdmin)
	issued := &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh", Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123", user.PasswordHash).Return(true)
	fx.tokens.EXPECT().IssueTokenPair(user.Email, entity.RoleAdmin).Return(issued, nil)

	pair, err := fx.service.Login(ctx, user.Email, "Password123")

	require.NoError(t, err)
	assert.Equal(t, issued, pair)
}

func TestAuthService_RefreshAccessToken_RotatesAndUsesCurrentRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	expiresAt := testNow.Add(time.Hour)
	user := newVerifiedUser("a@x.com", entity.RoleAdmin)
	issued := &entity.TokenPair{AccessToken: "access2", RefreshToken: "refresh2", Role: entity.RoleAdmin}

	fx.tokens.EXPECT().ValidateRefreshToken("refresh1").Return(true)
	fx.tokens.EXPECT().ExtractUsername("refresh1").Return(user.Email, nil)
	fx.tokens.EXPECT().ExtractExpiration("refresh1").Return(expiresAt, nil)
	fx.revocation.EXPECT().Claim(ctx, "refresh1", expiresAt).Return(true, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokens.EXPECT().IssueTokenPair(user.Email, entity.RoleAdmin).Return(issued, nil)

	pair, err := fx.service.RefreshAccessToken(ctx, "refresh1")

	require.NoError(t, err)
	assert.Equal(t, issued, pair)
}

func TestAuthService_RefreshAccessToken_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(fx authServiceFixtures)
	}{
		{
			name: "invalid token",
			setup: func(fx authServiceFixtures) {
				fx.tokens.EXPECT().ValidateRefreshToken("refresh1").Return(false)
			},
		},
		{
			name: "already claimed",
			setup: func(fx authServiceFixtures) {
				fx.tokens.EXPECT().ValidateRefreshToken("refresh1").Return(true)
				fx.tokens.EXPECT().ExtractUsername("refresh1").Return("a@x.com", nil)
				fx.tokens.EXPECT().ExtractExpiration("refresh1").Return(testNow.Add(time.Hour), nil)
				fx.revocation.EXPECT().Claim(ctx, "refresh1", testNow.Add(time.Hour)).Return(false, nil)
			},
		},
		{
			name: "registry failure",
			setup: func(fx authServiceFixtures) {
				fx.tokens.EXPECT().ValidateRefreshToken("refresh1").Return(true)
				fx.tokens.EXPECT().ExtractUsername("refresh1").Return("a@x.com", nil)
				fx.tokens.EXPECT().ExtractExpiration("refresh1").Return(testNow.Add(time.Hour), nil)
				fx.revocation.EXPECT().Claim(ctx, "refresh1", testNow.Add(time.Hour)).Return(false, errors.New("redis down"))
			},
		},
		{
			name: "subject no longer exists",
			setup: func(fx authServiceFixtures) {
				fx.tokens.EXPECT().ValidateRefreshToken("refresh1").Return(true)
				fx.tokens.EXPECT().ExtractUsername("refresh1").Return("gone@x.com", nil)
				fx.tokens.EXPECT().ExtractExpiration("refresh1").Return(testNow.Add(time.Hour), nil)
				fx.revocation.EXPECT().Claim(ctx, "refresh1", testNow.Add(time.Hour)).Return(true, nil)
				fx.userRepo.EXPECT().FindByEmail(ctx, "gone@x.com").Return(nil, repository.ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			pair, err := fx.service.RefreshAccessToken(ctx, "refresh1")

			assert.Nil(t, pair)
			assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes until expiry", func(t *testing.T) {
		fx := createTestAuthService(t)
		expiresAt := testNow.Add(10 * time.Minute)

		fx.tokens.EXPECT().ExtractExpiration("access").Return(expiresAt, nil)
		fx.revocation.EXPECT().Add(ctx, "access", expiresAt).Return(nil)

		require.NoError(t, fx.service.Logout(ctx, "access"))
	})

	t.Run("unreadable token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokens.EXPECT().ExtractExpiration("garbage").Return(time.Time{}, errors.New("malformed"))

		err := fx.service.Logout(ctx, "garbage")

		assert.True(t, errors.Is(err, domainerrors.ErrBadToken))
	})

	t.Run("registry failure surfaces", func(t *testing.T) {
		fx := createTestAuthService(t)
		expiresAt := testNow.Add(10 * time.Minute)

		fx.tokens.EXPECT().ExtractExpiration("access").Return(expiresAt, nil)
		fx.revocation.EXPECT().Add(ctx, "access", expiresAt).Return(errors.New("redis down"))

		err := fx.service.Logout(ctx, "access")

		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrBadToken))
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	claims := &entity.TokenClaims{Subject: "a@x.com", Role: entity.RoleUser, Kind: entity.TokenKindAccess}

	t.Run("valid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokens.EXPECT().ValidateAccessToken("access").Return(claims, nil)
		fx.revocation.EXPECT().IsRevoked(ctx, "access").Return(false, nil)

		caller, err := fx.service.Authenticate(ctx, "access")

		require.NoError(t, err)
		assert.Equal(t, &entity.Caller{Email: "a@x.com", Role: entity.RoleUser}, caller)
	})

	t.Run("revoked token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokens.EXPECT().ValidateAccessToken("access").Return(claims, nil)
		fx.revocation.EXPECT().IsRevoked(ctx, "access").Return(true, nil)

		_, err := fx.service.Authenticate(ctx, "access")

		assert.Equal(t, domainerrors.ErrUnauthenticated, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokens.EXPECT().ValidateAccessToken("access").Return(nil, errors.New("expired"))

		_, err := fx.service.Authenticate(ctx, "access")

		assert.Equal(t, domainerrors.ErrUnauthenticated, err)
	})
}
