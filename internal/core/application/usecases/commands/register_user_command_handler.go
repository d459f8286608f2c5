package commands

import (
	"context"
	"errors"
	"time"

	"deliverya/internal/core/domain/model/user"
	"deliverya/internal/pkg/errs"
)

// RegisterUserCommandHandler handles the business logic for user registration.
// New users start with the default rating so listings do not penalize fresh
// accounts.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The email must not belong to an
// existing account; a duplicate fails with ObjectAlreadyTakenError.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewObjectAlreadyTakenError("email", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newUser, err := user.NewUser(
		cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Role(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
