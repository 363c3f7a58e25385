package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
//
// Every operation runs inside a single transaction that first resolves the
// parent list scoped to the acting user. Touching a task under someone
// else's list is therefore impossible, and the list cannot be reassigned
// between the ownership check and the task statement.
type taskService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkListOwnership resolves the parent list scoped to userID inside the
// current transaction. An unowned or missing list maps to ErrListNotFound.
func (srv *taskService) checkListOwnership(ctx context.Context, repoFactory repository.RepositoryFactory, userID, listID uuid.UUID) error {
	if _, err := repoFactory.NewListRepository().FindByIDAndUser(ctx, listID, userID); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return domainerrors.ErrListNotFound
		}

		return errors.Wrap(err, "failed to verify list ownership")
	}

	return nil
}

// CreateTask creates a task under a list owned by userID.
func (srv *taskService) CreateTask(ctx context.Context, userID, listID uuid.UUID, input usecase.CreateTaskInput) (*usecase.TaskOutput, error) {
	task := &entity.Task{
		ListID: listID,
		Title:  input.Title,
		Status: entity.TaskStatusTodo,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkListOwnership(ctx, repoFactory, userID, listID); err != nil {
			return err
		}

		return repoFactory.NewTaskRepository().Create(ctx, task)
	})
	if err != nil {
		return nil, srv.translateTaskErr(ctx, err, "failed to create task", listID)
	}

	srv.log(ctx).Debug("Task created", slog.Any("listID", listID), slog.Any("taskID", task.ID))

	return usecase.NewTaskOutput(task), nil
}

// GetTasks returns every task under a list owned by userID.
func (srv *taskService) GetTasks(ctx context.Context, userID, listID uuid.UUID) ([]*usecase.TaskOutput, error) {
	var tasks []*entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkListOwnership(ctx, repoFactory, userID, listID); err != nil {
			return err
		}

		var err error
		tasks, err = repoFactory.NewTaskRepository().FindAllByList(ctx, listID)

		return err
	})
	if err != nil {
		return nil, srv.translateTaskErr(ctx, err, "failed to load tasks", listID)
	}

	outputs := make([]*usecase.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		outputs = append(outputs, usecase.NewTaskOutput(task))
	}

	return outputs, nil
}

// GetTask returns a single task under a list owned by userID.
func (srv *taskService) GetTask(ctx context.Context, userID, listID, taskID uuid.UUID) (*usecase.TaskOutput, error) {
	var task *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkListOwnership(ctx, repoFactory, userID, listID); err != nil {
			return err
		}

		var err error
		task, err = repoFactory.NewTaskRepository().FindByIDAndList(ctx, taskID, listID)

		return err
	})
	if err != nil {
		return nil, srv.translateTaskErr(ctx, err, "failed to load task", listID)
	}

	return usecase.NewTaskOutput(task), nil
}

// UpdateTask updates a task's title and status under a list owned by userID.
func (srv *taskService) UpdateTask(ctx context.Context, userID, listID, taskID uuid.UUID, input usecase.UpdateTaskInput) (*usecase.TaskOutput, error) {
	status := entity.TaskStatus(input.Status)
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed
	}

	var task *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkListOwnership(ctx, repoFactory, userID, listID); err != nil {
			return err
		}

		taskRepo := repoFactory.NewTaskRepository()

		var err error
		task, err = taskRepo.FindByIDAndList(ctx, taskID, listID)
		if err != nil {
			return err
		}

		task.Title = input.Title
		task.Status = status

		return taskRepo.Update(ctx, task)
	})
	if err != nil {
		return nil, srv.translateTaskErr(ctx, err, "failed to update task", listID)
	}

	srv.log(ctx).Debug("Task updated", slog.Any("listID", listID), slog.Any("taskID", taskID))

	return usecase.NewTaskOutput(task), nil
}

// DeleteTask removes a task under a list owned by userID.
func (srv *taskService) DeleteTask(ctx context.Context, userID, listID, taskID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkListOwnership(ctx, repoFactory, userID, listID); err != nil {
			return err
		}

		return repoFactory.NewTaskRepository().Delete(ctx, taskID, listID)
	})
	if err != nil {
		return srv.translateTaskErr(ctx, err, "failed to delete task", listID)
	}

	srv.log(ctx).Debug("Task deleted", slog.Any("listID", listID), slog.Any("taskID", taskID))

	return nil
}

// translateTaskErr maps repository sentinels onto the application taxonomy
// and logs anything unexpected.
func (srv *taskService) translateTaskErr(ctx context.Context, err error, msg string, listID uuid.UUID) error {
	switch {
	case errors.Is(err, domainerrors.ErrListNotFound),
		errors.Is(err, repository.ErrListNotFound):
		return domainerrors.ErrListNotFound
	case errors.Is(err, repository.ErrTaskNotFound):
		return domainerrors.ErrTaskNotFound
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return domainerrors.ErrValidationFailed
	default:
		srv.log(ctx).Error(msg, slog.Any("listID", listID), slog.Any("error", err))

		return errors.Wrap(err, msg)
	}
}
