package impl

import (
	"context"
	"testing"

	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *fakeUserRepo
	hasher       *fakeHasher
	tokenService *fakeTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	hasher := &fakeHasher{}
	tokenService := &fakeTokenService{}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		userRepo: userRepo,
		listRepo: newFakeListRepo(),
		taskRepo: newFakeTaskRepo(),
	}}

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	out, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.Token)

	// The stored user carries the hash, never the plaintext
	user, err := fixtures.userRepo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:a long password", user.PasswordHash)
}

func TestAccountService_Register_TrimsEmail(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	_, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Email:    "  alice@example.com ",
		Password: "a long password",
	})
	require.NoError(t, err)

	_, err = fixtures.userRepo.FindByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
}

func TestAccountService_Register_EmailIsCaseSensitive(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	_, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Email:    "Alice@X.com",
		Password: "a long password",
	})
	require.NoError(t, err)

	// A differently-cased address is an independent account, not a conflict
	out, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Email:    "alice@x.com",
		Password: "another password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	upper, err := fixtures.userRepo.FindByEmail(ctx, "Alice@X.com")
	require.NoError(t, err)
	lower, err := fixtures.userRepo.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, upper.ID, lower.ID)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	_, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	require.NoError(t, err)

	out, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "another password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	assert.Nil(t, out)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fixtures := createTestAccountService(t)
	fixtures.hasher.hashErr = errors.New("out of entropy")

	out, err := fixtures.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, out)

	// Nothing was persisted
	_, err = fixtures.userRepo.FindByEmail(context.Background(), "alice@example.com")
	assert.Error(t, err)
}

func TestAccountService_Login(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	_, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	require.NoError(t, err)

	out, err := fixtures.service.Login(ctx, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	// The token asserts the registered user's identity
	user, err := fixtures.userRepo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	gotID, err := fixtures.tokenService.Validate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotID)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	_, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	require.NoError(t, err)

	out, err := fixtures.service.Login(ctx, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, out)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestAccountService(t)

	out, err := fixtures.service.Login(context.Background(), usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, out)

	// The dummy verification ran, so the unknown-email path costs a hash
	// check just like the wrong-password path
	assert.Equal(t, 1, fixtures.hasher.checkCount())
}

func TestAccountService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	_, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	require.NoError(t, err)

	_, unknownErr := fixtures.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, wrongErr := fixtures.service.Login(ctx, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong password",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAccountService_Register_TokenIssueFailure(t *testing.T) {
	fixtures := createTestAccountService(t)
	fixtures.tokenService.issueErr = errors.New("signing failed")

	out, err := fixtures.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	require.Error(t, err)
	assert.Nil(t, out)

	// A signing outage is an internal fault, not bad input and not a
	// credential problem
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_TokenIssueFailure(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	_, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	require.NoError(t, err)

	fixtures.tokenService.issueErr = errors.New("signing failed")

	out, err := fixtures.service.Login(ctx, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, out)
}
