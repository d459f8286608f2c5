package user

import (
	"fmt"

	"deliverya/internal/pkg/errs"
)

// Role distinguishes the two sides of the marketplace. It is the mode a user
// is currently acting in, not a fixed attribute: the same identity may place
// orders as a client and deliver as a courier. Registration records the mode
// the user signed up with, and the board and summary views take the viewer's
// current mode as a parameter.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Client places orders and pays for them.
	Client

	// Courier accepts and delivers orders.
	Courier
)

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		Client:  "client",
		Courier: "courier",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role ("client", "courier"),
// or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
