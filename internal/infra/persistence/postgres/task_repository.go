package postgres

import (
	"context"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface.
// All queries are scoped to a parent list; callers verify list ownership
// before reaching this layer.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create persists a new task under task.ListID.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// Parent list deleted between the ownership check and the insert.
			return repository.ErrListNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed
		}

		return domainerrors.NewDatabaseExecuteError(err)
	}

	// Update the entity with generated values
	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindAllByList retrieves every task under listID, oldest first.
func (repo *taskRepository) FindAllByList(ctx context.Context, listID uuid.UUID) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at ASC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tasks by list")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// FindByIDAndList retrieves the task only if it belongs to listID.
func (repo *taskRepository) FindByIDAndList(ctx context.Context, taskID, listID uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", taskID, listID).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	return toTaskDomain(&taskM), nil
}

// Update persists the task's title and status.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND list_id = ?", task.ID, task.ListID).
		Updates(map[string]any{
			"title":  task.Title,
			"status": string(task.Status),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed
		}

		return errors.Wrap(result.Error, "failed to update task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes the task only if it belongs to listID.
func (repo *taskRepository) Delete(ctx context.Context, taskID, listID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", taskID, listID).
		Delete(&model.TaskModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:        data.ID,
		ListID:    data.ListID,
		Title:     data.Title,
		Status:    entity.TaskStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:        data.ID,
		ListID:    data.ListID,
		Title:     data.Title,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
