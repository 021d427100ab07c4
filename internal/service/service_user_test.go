package service

import (
	"context"
	"errors"
	"testing"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/store"
	"github.com/melodia-app/melodia-server/internal/validators"
	"github.com/melodia-app/melodia-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(repo *mockUserRepository) UserService {
	return &userService{
		userRepository: repo,
		hasher:         mockHasher{},
		validator:      validators.NewAccountValidator(),
		logger:         logger.Nop(),
	}
}

func TestRegisterUser_HashesAndStripsPlaintext(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestUserService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Username: "john",
		Email:    "john@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)

	// the store must only ever see the hash
	assert.Empty(t, persisted.Password)
	assert.Equal(t, "hash:secret", persisted.PasswordHash)
}

func TestRegisterUser_InvalidPayload(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			t.Fatal("repository must not be called for invalid payloads")
			return user, nil
		},
	}
	svc := newTestUserService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "john", Email: "bad"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_DuplicateEmailSurfaces(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(context.Context, models.User) (models.User, error) {
			return models.User{}, store.ErrAlreadyExists
		},
	}
	svc := newTestUserService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Username: "john", Email: "john@example.com", Password: "secret",
	})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUpdateUser_RehashesSuppliedPassword(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		updateFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			return user, nil
		},
	}
	svc := newTestUserService(repo)

	_, err := svc.UpdateUser(context.Background(), models.User{UserID: 4, Password: "new-secret"})
	require.NoError(t, err)
	assert.Empty(t, persisted.Password)
	assert.Equal(t, "hash:new-secret", persisted.PasswordHash)
}

func TestUpdateUser_MissingID(t *testing.T) {
	svc := newTestUserService(&mockUserRepository{})

	_, err := svc.UpdateUser(context.Background(), models.User{Biography: "bio"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetUser_NotFoundSurfaces(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(context.Context, int64) (models.User, error) {
			return models.User{}, store.ErrNotFound
		},
	}
	svc := newTestUserService(repo)

	_, err := svc.GetUser(context.Background(), 42)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}
