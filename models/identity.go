package models

// Account roles embedded in issued tokens and used to pick the
// role-specific login history relation.
const (
	RoleUser   = "user"
	RoleArtist = "artist"
)

// Identity is a resolved account tagged with its role and stripped of its
// credential hash. It is the only account representation that crosses from
// the authentication flow into token issuance; it is never persisted.
type Identity struct {
	// ID is the account's primary key in its role-specific table.
	ID int64 `json:"id"`

	// Email is the login identifier the account was resolved by.
	Email string `json:"email"`

	// Name is the display name of the account (username for users,
	// artist name for artists).
	Name string `json:"name"`

	// Role discriminates the account variant: RoleUser or RoleArtist.
	Role string `json:"role"`
}

// IdentityFromUser converts a stored user row into a role-tagged Identity.
// The password hash is deliberately left behind.
func IdentityFromUser(u User) Identity {
	return Identity{
		ID:    u.UserID,
		Email: u.Email,
		Name:  u.Username,
		Role:  RoleUser,
	}
}

// IdentityFromArtist converts a stored artist row into a role-tagged Identity.
func IdentityFromArtist(a Artist) Identity {
	return Identity{
		ID:    a.ArtistID,
		Email: a.Email,
		Name:  a.Name,
		Role:  RoleArtist,
	}
}
