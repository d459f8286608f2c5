package commands

import (
	"errors"
	"strings"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/user"
	"deliverya/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUserNameIsRequired = errors.New("name is required")
	ErrEmailIsInvalid     = errors.New("email is invalid")
)

// RegisterUserCommand represents a request to register a new participant,
// either a client or a courier.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string
	email  string
	phone  string
	role   user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Phone is optional; everything else is validated.
func NewRegisterUserCommand(
	userID kernel.UUID,
	name string,
	email string,
	phone string,
	role user.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the user's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the user's email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Phone returns the user's phone number. May be empty.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Role returns the side of the marketplace the user registers on.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return ErrUserNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
