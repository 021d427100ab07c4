// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/melodia-app/melodia-server/internal/config"
	"github.com/melodia-app/melodia-server/internal/crypto"
	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/store"
	"github.com/melodia-app/melodia-server/internal/utils"
	"github.com/melodia-app/melodia-server/models"
)

// authService is the concrete implementation of AuthService.
// It resolves credentials against the users and artists tables, records
// login history, and manages the JWT token lifecycle.
type authService struct {
	// userRepository and artistRepository are the two disjoint account
	// stores. Resolution order is fixed: users are consulted first.
	userRepository   store.UserRepository
	artistRepository store.ArtistRepository

	// historyRepository receives one append-only record per issued session.
	historyRepository store.HistoryRepository

	// hasher verifies supplied passwords against stored peppered hashes.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to both account
// repositories, the login history store and the password hasher, with
// security parameters taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	userRepository store.UserRepository,
	artistRepository store.ArtistRepository,
	historyRepository store.HistoryRepository,
	hasher crypto.PasswordHasher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:    userRepository,
		artistRepository:  artistRepository,
		historyRepository: historyRepository,
		hasher:            hasher,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Resolve verifies the supplied credentials and returns the matching
// account as a role-tagged identity with the credential hash stripped.
//
// The users table is consulted first, then artists; an account only
// matches when its email corresponds to exactly one row AND the password
// verifies against that row's stored hash. Ambiguous results (several rows
// for one email) never match.
//
// A nil identity with a nil error means authentication failed; callers
// must not learn whether the email was unknown, ambiguous, or the password
// wrong. A non-nil error is always an infrastructure failure and must not
// be presented as bad credentials.
func (a *authService) Resolve(ctx context.Context, email, password string) (*models.Identity, error) {
	log := logger.FromContext(ctx)

	// Empty credentials can never verify; treat them as any other failed
	// match so the response stays indistinguishable from a wrong password.
	if email == "" || password == "" {
		return nil, nil
	}

	users, err := a.userRepository.FindUsersByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Resolve").Msg("user search by email failed")
		return nil, fmt.Errorf("user search by email failed: %w", err)
	}
	if len(users) == 1 && a.hasher.Verify(password, users[0].PasswordHash) {
		identity := models.IdentityFromUser(users[0])
		return &identity, nil
	}

	artists, err := a.artistRepository.FindArtistsByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Resolve").Msg("artist search by email failed")
		return nil, fmt.Errorf("artist search by email failed: %w", err)
	}
	if len(artists) == 1 && a.hasher.Verify(password, artists[0].PasswordHash) {
		identity := models.IdentityFromArtist(artists[0])
		return &identity, nil
	}

	return nil, nil
}

// Login records a login event for the resolved identity and issues a
// signed session token.
//
// The role is validated before any side effect: an identity carrying an
// unknown role produces ErrInvalidRole with no history row written and no
// token signed. A failed history insert is fatal to the login; the token
// is only signed after the record is stored. The two steps remain
// sequential, not atomic: a signing failure after a stored record leaves
// the record in place.
func (a *authService) Login(ctx context.Context, identity models.Identity, clientIP string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if identity.Role != models.RoleUser && identity.Role != models.RoleArtist {
		log.Error().Str("func", "*authService.Login").Str("role", identity.Role).Msg("unknown account role")
		return models.Token{}, ErrInvalidRole
	}

	record := models.LoginRecord{OwnerID: identity.ID, IP: clientIP}
	if _, err := a.historyRepository.RecordLogin(ctx, identity.Role, record); err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("id", identity.ID).Msg("recording login history failed")
		return models.Token{}, fmt.Errorf("recording login history failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("id", identity.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
