package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecom/internal/core/application/usecases/commands"
	"ecom/internal/core/domain/model/account"
	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/core/ports"
	"ecom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(_ context.Context, _ *account.Account) (*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}
func (m *MockAccountRepository) GetByEmail(ctx context.Context, email kernel.Email) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

// fakeHasher treats "hashed:" + password as the stored hash.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}
func (fakeHasher) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct{}

func (fakeTokens) IssuePair(accountID int64, _ string) (ports.TokenPair, error) {
	return ports.TokenPair{
		AccessToken:      "access",
		RefreshToken:     "refresh",
		AccessExpiresAt:  time.Now().Add(time.Hour),
		RefreshExpiresAt: time.Now().Add(24 * time.Hour),
	}, nil
}
func (fakeTokens) VerifyAccess(_ string) (int64, error)  { return 0, errors.New("not used") }
func (fakeTokens) VerifyRefresh(_ string) (int64, error) { return 0, errors.New("not used") }

func storedAccount(t *testing.T) *account.Account {
	t.Helper()
	email, err := kernel.NewEmail("admin@example.com")
	require.NoError(t, err)
	acc, err := account.RestoreAccount(1, email, "Admin", "hashed:secret", true, nil)
	require.NoError(t, err)
	return acc
}

func TestSignInCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	email, err := kernel.NewEmail("admin@example.com")
	require.NoError(t, err)
	cmd, err := commands.NewSignInCommand(email, "secret")
	require.NoError(t, err)

	acc := storedAccount(t)

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, email).Return(acc, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignInCommandHandler(factory, fakeHasher{}, fakeTokens{})
	pair, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSignInCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	email, err := kernel.NewEmail("admin@example.com")
	require.NoError(t, err)
	cmd, err := commands.NewSignInCommand(email, "wrong")
	require.NoError(t, err)

	acc := storedAccount(t)

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, email).Return(acc, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignInCommandHandler(factory, fakeHasher{}, fakeTokens{})
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestSignInCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	email, err := kernel.NewEmail("nobody@example.com")
	require.NoError(t, err)
	cmd, err := commands.NewSignInCommand(email, "secret")
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, email).
			Return(nil, errs.NewObjectNotFoundError("email", email.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignInCommandHandler(factory, fakeHasher{}, fakeTokens{})
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestResetPasswordCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	email, err := kernel.NewEmail("admin@example.com")
	require.NoError(t, err)
	cmd, err := commands.NewResetPasswordCommand(email, "code-123", "newpass")
	require.NoError(t, err)

	code := "code-123"
	acc, err := account.RestoreAccount(1, email, "Admin", "hashed:secret", true, &code)
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, email).Return(acc, nil).Once(),
		repo.On("Update", mock.Anything, acc).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetPasswordCommandHandler(factory, fakeHasher{})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "hashed:newpass", acc.HashedPassword())
	assert.Nil(t, acc.ResetCode())
}

func TestResetPasswordCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	email, err := kernel.NewEmail("admin@example.com")
	require.NoError(t, err)
	cmd, err := commands.NewResetPasswordCommand(email, "wrong", "newpass")
	require.NoError(t, err)

	code := "code-123"
	acc, err := account.RestoreAccount(1, email, "Admin", "hashed:secret", true, &code)
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, email).Return(acc, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetPasswordCommandHandler(factory, fakeHasher{})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidResetCode)
	assert.Equal(t, "hashed:secret", acc.HashedPassword())
}
