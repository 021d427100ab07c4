package service

import (
	"context"
	"fmt"

	"github.com/melodia-app/melodia-server/internal/crypto"
	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/store"
	"github.com/melodia-app/melodia-server/internal/validators"
	"github.com/melodia-app/melodia-server/models"
)

// userService is the concrete implementation of UserService. It validates
// inbound payloads, hashes plaintext passwords and delegates persistence to
// the user repository. Plaintext never crosses the repository boundary.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository and
// password hasher.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewAccountValidator(),
		logger:         logger,
	}
}

// RegisterUser creates a new listener account. The plaintext password is
// validated, hashed and discarded before the record reaches the store.
func (s *userService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("func", "*userService.RegisterUser").Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = ""
	user.PasswordHash = hash

	registered, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// UpdateUser applies a partial update to an existing account. A supplied
// password is re-hashed; absent fields stay untouched.
func (s *userService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.UserID <= 0 {
		return models.User{}, ErrInvalidDataProvided
	}
	if user.Birth != "" {
		if err := s.validator.Validate(ctx, user, validators.FieldBirth); err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	if user.Password != "" {
		hash, err := s.hasher.Hash(user.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.Password = ""
		user.PasswordHash = hash
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// GetUser retrieves a single account by id.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*userService.GetUser").Int64("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return found, nil
}
