package domain

import (
	"github.com/google/uuid"
)

// Role classifies what a user does on the marketplace.
type Role string

// Known user roles.
const (
	RoleOwner  Role = "OWNER"
	RoleRenter Role = "RENTER"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleRenter
}

// User represents a registered user of the marketplace, either an owner
// publishing spaces or a renter booking them.
//
// Email is the natural key: lookup and registration uniqueness go through it.
// Uniqueness is enforced by the registration use case, not by the entity.
type User struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Credential Credential `json:"-"`
	Role       Role       `json:"role"`
	Rating     float64    `json:"rating"`
}

// NewUser creates a User with a fresh ID, the given attributes, and a zero
// rating. The password is optional: when non-empty it is bcrypt-hashed into
// the user's Credential. Returns an error if validation fails.
func NewUser(name, email, password string, role Role) (*User, error) {
	user := &User{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Role:  role,
	}
	if password != "" {
		cred, err := NewCredential(password)
		if err != nil {
			return nil, err
		}
		user.Credential = cred
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks that the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrInvalidID
	}
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// UpdateRating folds a new rating into the user's running rating as
// (old + new) / 2. Recent ratings weigh heavier than a true arithmetic mean
// would allow; stored ratings depend on this fold, so it must not change.
func (u *User) UpdateRating(rating float64) {
	u.Rating = (u.Rating + rating) / 2
}
