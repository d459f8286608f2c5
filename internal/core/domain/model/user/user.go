package user

import (
	"errors"
	"strings"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/errs"
	"deliverya/internal/pkg/guard"
)

const (
	// MinRating is the lowest rating a user can hold.
	MinRating float64 = 0
	// MaxRating is the highest rating a user can hold.
	MaxRating float64 = 5
	// DefaultRating is assigned on registration, before anyone rated the user.
	DefaultRating float64 = 5
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser constructors.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User represents a registered participant, either a client or a courier.
//
// User follows these invariants:
//   - Must have a valid unique identifier and a valid role
//   - Name and email are required; email must look like an address
//   - Rating stays within [0, 5] and starts at DefaultRating
type User struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	role      Role
	rating    float64
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewUser registers a new user with the default rating.
// Phone is optional; everything else is validated.
func NewUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	role Role,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		phone:  phone,
		rating: DefaultRating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
		u.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage,
// including its accumulated rating.
func RestoreUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	role Role,
	rating float64,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
		u.setRating(rating),
		u.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}

	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Phone returns the user's phone number. May be empty.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the mode the user signed up in. It does not restrict what the
// user may do; the same account can place and deliver orders.
func (u *User) Role() Role {
	return u.role
}

// Rating returns the user's current rating in [0, 5].
func (u *User) Rating() float64 {
	return u.rating
}

// CreatedAt returns when the user registered.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	// Deliberately shallow check. Deliverability is the mail provider's
	// problem, not a domain invariant.
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	u.rating = rating
	return nil
}

func (u *User) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	u.createdAt = createdAt
	return nil
}
