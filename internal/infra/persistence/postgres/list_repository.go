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

// listRepository implements the repository.ListRepository interface.
//
// Every query below carries both id and user_id in its WHERE clause, so
// ownership is enforced by the statement itself. A row owned by someone else
// behaves exactly like a row that does not exist.
type listRepository struct {
	db *gorm.DB
}

// NewListRepository is the constructor for listRepository.
func NewListRepository(db *gorm.DB) repository.ListRepository {
	return &listRepository{
		db: db,
	}
}

// Create persists a new list for list.UserID.
func (repo *listRepository) Create(ctx context.Context, list *entity.TodoList) error {
	listM := fromListDomain(list)

	if err := repo.db.WithContext(ctx).Create(listM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// The owning user row is gone; treat as an auth failure upstream.
			return repository.ErrListNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err)
	}

	// Update the entity with generated values
	list.ID = listM.ID
	list.CreatedAt = listM.CreatedAt
	list.UpdatedAt = listM.UpdatedAt

	return nil
}

// FindAllByUser retrieves every list owned by userID, newest first.
func (repo *listRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TodoList, error) {
	var listModels []*model.TodoListModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&listModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find lists by user")
	}

	lists := make([]*entity.TodoList, 0, len(listModels))
	for _, listM := range listModels {
		lists = append(lists, toListDomain(listM))
	}

	return lists, nil
}

// FindByIDAndUser retrieves the list only if it is owned by userID.
func (repo *listRepository) FindByIDAndUser(ctx context.Context, listID, userID uuid.UUID) (*entity.TodoList, error) {
	var listM model.TodoListModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", listID, userID).
		First(&listM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find list")
	}

	return toListDomain(&listM), nil
}

// UpdateTitle renames the list only if it is owned by userID.
func (repo *listRepository) UpdateTitle(ctx context.Context, listID, userID uuid.UUID, title string) (*entity.TodoList, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TodoListModel{}).
		Where("id = ? AND user_id = ?", listID, userID).
		Update("title", title)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update list title")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrListNotFound
	}

	return repo.FindByIDAndUser(ctx, listID, userID)
}

// Delete removes the list only if it is owned by userID.
func (repo *listRepository) Delete(ctx context.Context, listID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", listID, userID).
		Delete(&model.TodoListModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete list")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toListDomain converts a GORM TodoListModel to a domain TodoList entity.
func toListDomain(data *model.TodoListModel) *entity.TodoList {
	if data == nil {
		return nil
	}

	return &entity.TodoList{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromListDomain converts a domain TodoList entity to a GORM TodoListModel.
func fromListDomain(data *entity.TodoList) *model.TodoListModel {
	if data == nil {
		return nil
	}

	return &model.TodoListModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
