package commands_test

import (
	"testing"

	"deliverya/internal/core/application/usecases/commands"
	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/user"
	"deliverya/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "Maria Lopez", "maria@example.com", "+54 9 11 5555-0001", user.Client)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", ctx, "maria@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "maria@example.com")).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	existing := fixtureClient(t, kernel.NewUUID())
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "Maria Lopez", existing.Email(), "", user.Client)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", ctx, existing.Email()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyTaken)
	userRepo.AssertNotCalled(t, "Add")
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{} // not constructed properly

	factory := new(MockUserUoWFactory)
	handler := commands.NewRegisterUserCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewRegisterUserCommand_Validation(t *testing.T) {
	t.Run("should reject empty name", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "", "a@b.c", "", user.Client)
		require.ErrorIs(t, err, commands.ErrUserNameIsRequired)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Maria", "not-an-email", "", user.Client)
		require.ErrorIs(t, err, commands.ErrEmailIsInvalid)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Maria", "a@b.c", "", user.RoleUnknown)
		require.Error(t, err)
	})
}
