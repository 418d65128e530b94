package impl

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/domain/service"
	"taskman/internal/infra/auth"
	"taskman/internal/infra/revocation"
	"taskman/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *stubClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// memoryUsers is a map-backed UserRepository with copy semantics like a real store.
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]entity.User)}
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &u, nil
}

func (m *memoryUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.users[email]

	return ok, nil
}

func (m *memoryUsers) Create(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Email]; ok {
		return domainerrors.ErrUserAlreadyExists
	}
	user.ID = uuid.New()
	m.users[user.Email] = *user

	return nil
}

func (m *memoryUsers) modify(email string, fn func(u *entity.User)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[email]
	if !ok {
		return repository.ErrUserNotFound
	}
	fn(&u)
	m.users[email] = u

	return nil
}

func (m *memoryUsers) UpdateConfirmationCode(_ context.Context, email, code string, sentAt time.Time) error {
	return m.modify(email, func(u *entity.User) {
		u.ConfirmationCode = &code
		u.CodeSentAt = &sentAt
	})
}

func (m *memoryUsers) MarkVerified(_ context.Context, email string) error {
	return m.modify(email, func(u *entity.User) {
		u.IsVerified = true
		u.ConfirmationCode = nil
		u.CodeSentAt = nil
	})
}

func (m *memoryUsers) UpdatePassword(_ context.Context, email, passwordHash string) error {
	return m.modify(email, func(u *entity.User) {
		u.PasswordHash = passwordHash
		u.ConfirmationCode = nil
		u.CodeSentAt = nil
	})
}

func (m *memoryUsers) DeleteUnverifiedOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for email, u := range m.users {
		if !u.IsVerified && u.CreatedAt.Before(cutoff) {
			delete(m.users, email)
			deleted++
		}
	}

	return deleted, nil
}

type memoryFactory struct {
	users *memoryUsers
}

func (f memoryFactory) UserRepo() repository.UserRepository       { return f.users }
func (f memoryFactory) TaskRepo() repository.TaskRepository       { return nil }
func (f memoryFactory) CommentRepo() repository.CommentRepository { return nil }

type memoryTx struct {
	users *memoryUsers
}

func (tx memoryTx) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(memoryFactory(tx))
}

// outbox captures dispatched mail.
type outbox struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	to, subject, body string
}

func (o *outbox) Send(_ context.Context, to, subject, body string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.sent = append(o.sent, sentMail{to: to, subject: subject, body: body})

	return nil
}

func (o *outbox) lastCode(t *testing.T, to string) string {
	t.Helper()

	o.mu.Lock()
	defer o.mu.Unlock()

	for i := len(o.sent) - 1; i >= 0; i-- {
		if o.sent[i].to == to {
			return strings.TrimPrefix(o.sent[i].body, "Your code is: ")
		}
	}
	t.Fatalf("no mail sent to %s", to)

	return ""
}

type authFlow struct {
	auth   usecase.AuthUsecase
	reset  usecase.PasswordResetUsecase
	users  *memoryUsers
	outbox *outbox
	clock  *stubClock
	tokens service.TokenCodec
}

func newAuthFlow(t *testing.T) *authFlow {
	t.Helper()

	cfg := newTestConfig()
	clk := &stubClock{now: testNow}
	users := newMemoryUsers()
	mail := &outbox{}

	tokens, err := auth.NewJWTCodec(cfg, clk)
	require.NoError(t, err)

	registry := revocation.NewMemoryRegistry(clk, time.Hour, newDiscardLogger())
	t.Cleanup(registry.Stop)

	hasher := auth.NewBcryptHasher(cfg)
	policy := auth.NewPasswordPolicy(cfg)
	codes := auth.NewCodeGenerator()
	tx := memoryTx{users: users}

	return &authFlow{
		auth: NewAuthService(AuthServiceParams{
			TxManager:  tx,
			UserRepo:   users,
			Hasher:     hasher,
			Policy:     policy,
			Tokens:     tokens,
			Revocation: registry,
			Mailer:     mail,
			Clock:      clk,
			Codes:      codes,
			Config:     cfg,
			Logger:     newDiscardLogger(),
		}),
		reset: NewPasswordResetService(PasswordResetServiceParams{
			TxManager:  tx,
			UserRepo:   users,
			Hasher:     hasher,
			Policy:     policy,
			Tokens:     tokens,
			Revocation: registry,
			Mailer:     mail,
			Clock:      clk,
			Codes:      codes,
			Config:     cfg,
			Logger:     newDiscardLogger(),
		}),
		users:  users,
		outbox: mail,
		clock:  clk,
		tokens: tokens,
	}
}

func (f *authFlow) registerVerified(t *testing.T, email, password string) {
	t.Helper()

	ctx := context.Background()
	_, err := f.auth.Register(ctx, &usecase.RegisterInput{FirstName: "Test", LastName: "User", Email: email, Password: password})
	require.NoError(t, err)
	require.NoError(t, f.auth.VerifyEmail(ctx, email, f.outbox.lastCode(t, email)))
}

func TestAuthFlow_RegisterVerifyLogin(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()

	out, err := flow.auth.Register(ctx, &usecase.RegisterInput{FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Password: "Password1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.User.Role)

	_, err = flow.auth.Login(ctx, "a@x.com", "Password1")
	assert.Equal(t, domainerrors.ErrUserNotVerified, err)

	code := flow.outbox.lastCode(t, "a@x.com")
	assert.Len(t, code, 6)
	require.NoError(t, flow.auth.VerifyEmail(ctx, "a@x.com", code))
	assert.Equal(t, domainerrors.ErrAlreadyVerified, flow.auth.VerifyEmail(ctx, "a@x.com", code))

	pair, err := flow.auth.Login(ctx, "a@x.com", "Password1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, pair.Role)

	caller, err := flow.auth.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", caller.Email)
	assert.Equal(t, entity.RoleUser, caller.Role)

	_, err = flow.auth.Authenticate(ctx, pair.RefreshToken)
	assert.Equal(t, domainerrors.ErrUnauthenticated, err)
}

func TestAuthFlow_DuplicateRegistration(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{FirstName: "Ann", Email: "a@x.com", Password: "Password1"}
	_, err := flow.auth.Register(ctx, input)
	require.NoError(t, err)

	_, err = flow.auth.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthFlow_LogoutRevokesOnlyThatToken(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.registerVerified(t, "a@x.com", "Password1")

	first, err := flow.auth.Login(ctx, "a@x.com", "Password1")
	require.NoError(t, err)
	second, err := flow.auth.Login(ctx, "a@x.com", "Password1")
	require.NoError(t, err)

	require.NoError(t, flow.auth.Logout(ctx, first.AccessToken))

	_, err = flow.auth.Authenticate(ctx, first.AccessToken)
	assert.Equal(t, domainerrors.ErrUnauthenticated, err)

	_, err = flow.auth.Authenticate(ctx, second.AccessToken)
	assert.NoError(t, err)

	assert.Equal(t, domainerrors.ErrBadToken, flow.auth.Logout(ctx, "not-a-token"))
}

func TestAuthFlow_AccessTokenExpires(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.registerVerified(t, "a@x.com", "Password1")

	pair, err := flow.auth.Login(ctx, "a@x.com", "Password1")
	require.NoError(t, err)

	flow.clock.advance(15 * time.Minute)

	_, err = flow.auth.Authenticate(ctx, pair.AccessToken)
	assert.Equal(t, domainerrors.ErrUnauthenticated, err)
}

func TestAuthFlow_RefreshCarriesCurrentRoleAndRotates(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.registerVerified(t, "a@x.com", "Password1")

	pair, err := flow.auth.Login(ctx, "a@x.com", "Password1")
	require.NoError(t, err)

	require.NoError(t, flow.users.modify("a@x.com", func(u *entity.User) { u.Role = entity.RoleAdmin }))

	refreshed, err := flow.auth.RefreshAccessToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, refreshed.Role)

	caller, err := flow.auth.Authenticate(ctx, refreshed.AccessToken)
	require.NoError(t, err)
	assert.True(t, caller.IsAdmin())

	_, err = flow.auth.RefreshAccessToken(ctx, pair.RefreshToken)
	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)

	_, err = flow.auth.RefreshAccessToken(ctx, pair.AccessToken)
	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
}

func TestPasswordResetFlow(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.registerVerified(t, "a@x.com", "Password1")

	require.NoError(t, flow.reset.ForgotPassword(ctx, "a@x.com"))
	code := flow.outbox.lastCode(t, "a@x.com")

	_, err := flow.reset.VerifyResetCode(ctx, "a@x.com", "000000")
	assert.Equal(t, domainerrors.ErrInvalidCode, err)

	resetToken, err := flow.reset.VerifyResetCode(ctx, "a@x.com", code)
	require.NoError(t, err)

	stored, err := flow.users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored.ConfirmationCode)
	assert.Equal(t, code, *stored.ConfirmationCode)

	err = flow.reset.UpdatePassword(ctx, &usecase.UpdatePasswordInput{Email: "a@x.com", ResetToken: resetToken, Password: "weak"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordPolicy)

	require.NoError(t, flow.reset.UpdatePassword(ctx, &usecase.UpdatePasswordInput{Email: "a@x.com", ResetToken: resetToken, Password: "Changed123"}))

	_, err = flow.auth.Login(ctx, "a@x.com", "Password1")
	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
	_, err = flow.auth.Login(ctx, "a@x.com", "Changed123")
	assert.NoError(t, err)

	err = flow.reset.UpdatePassword(ctx, &usecase.UpdatePasswordInput{Email: "a@x.com", ResetToken: resetToken, Password: "Another123"})
	assert.Equal(t, domainerrors.ErrResetNotVerified, err)
}

func TestPasswordResetFlow_RequiresVerifiedCode(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.registerVerified(t, "a@x.com", "Password1")
	flow.registerVerified(t, "b@x.com", "Password1")

	require.NoError(t, flow.reset.ForgotPassword(ctx, "a@x.com"))
	require.NoError(t, flow.reset.ForgotPassword(ctx, "b@x.com"))

	otherToken, err := flow.reset.VerifyResetCode(ctx, "b@x.com", flow.outbox.lastCode(t, "b@x.com"))
	require.NoError(t, err)

	login, err := flow.auth.Login(ctx, "a@x.com", "Password1")
	require.NoError(t, err)

	staleToken, err := flow.reset.VerifyResetCode(ctx, "a@x.com", flow.outbox.lastCode(t, "a@x.com"))
	require.NoError(t, err)
	require.NoError(t, flow.reset.ForgotPassword(ctx, "a@x.com"))

	tests := []struct {
		name  string
		token string
	}{
		{name: "no token", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "token of another account", token: otherToken},
		{name: "access token", token: login.AccessToken},
		{name: "token for a superseded code", token: staleToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := flow.reset.UpdatePassword(ctx, &usecase.UpdatePasswordInput{Email: "a@x.com", ResetToken: tt.token, Password: "Changed123"})
			assert.Equal(t, domainerrors.ErrResetNotVerified, err)
		})
	}

	_, err = flow.auth.Login(ctx, "a@x.com", "Password1")
	assert.NoError(t, err)
}

func TestPasswordResetFlow_UnknownAndUnverifiedAccounts(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()

	assert.Equal(t, domainerrors.ErrEmailNotFound, flow.reset.ForgotPassword(ctx, "nobody@x.com"))

	_, err := flow.auth.Register(ctx, &usecase.RegisterInput{FirstName: "Ann", Email: "a@x.com", Password: "Password1"})
	require.NoError(t, err)
	assert.Equal(t, domainerrors.ErrUserNotVerified, flow.reset.ForgotPassword(ctx, "a@x.com"))
}

func TestAuthFlow_ConcurrentRefreshRotatesOnce(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.registerVerified(t, "a@x.com", "Password1")

	pair, err := flow.auth.Login(ctx, "a@x.com", "Password1")
	require.NoError(t, err)

	const attempts = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)

	start := make(chan struct{})
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			if _, err := flow.auth.RefreshAccessToken(ctx, pair.RefreshToken); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}
