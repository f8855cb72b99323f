package commands_test

import (
	"testing"
	"time"

	"gasfleet/internal/core/application/usecases/commands"
	"gasfleet/internal/core/domain/model/allocation"
	"gasfleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func plannedAllocation(t *testing.T) *allocation.Allocation {
	t.Helper()
	a, err := allocation.NewAllocation(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), 270)
	require.NoError(t, err)
	return a
}

func TestCancelAllocationCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := plannedAllocation(t)
	cmd, err := commands.NewCancelAllocationCommand(aggregate.ID())
	require.NoError(t, err)

	mockRepo := new(MockAllocationRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAllocationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AllocationRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCancelAllocationCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, allocation.StatusCancelled, aggregate.Status())
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCancelAllocationCommandHandler_Handle_AlreadyFinal(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := plannedAllocation(t)
	require.NoError(t, aggregate.Cancel())

	cmd, err := commands.NewCancelAllocationCommand(aggregate.ID())
	require.NoError(t, err)

	mockRepo := new(MockAllocationRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAllocationUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("AllocationRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCancelAllocationCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, allocation.ErrInvalidStatusTransition)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestNewCancelAllocationCommand(t *testing.T) {
	t.Run("should create command with valid ID", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCancelAllocationCommand(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.AllocationID().IsEqual(id))
	})

	t.Run("should return error for invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCancelAllocationCommand(invalidID)

		require.Error(t, err)
	})
}
