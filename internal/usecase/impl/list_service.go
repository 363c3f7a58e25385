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

// listService implements the ListUsecase interface.
type listService struct {
	listRepo repository.ListRepository
	logger   *slog.Logger
}

// ListServiceParams holds dependencies for listService, injected by Fx.
type ListServiceParams struct {
	fx.In

	ListRepo repository.ListRepository
	Logger   *slog.Logger
}

// NewListService is the constructor for listService.
func NewListService(params ListServiceParams) usecase.ListUsecase {
	return &listService{
		listRepo: params.ListRepo,
		logger:   params.Logger,
	}
}

func (srv *listService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateList creates a new list owned by userID.
func (srv *listService) CreateList(ctx context.Context, userID uuid.UUID, input usecase.CreateListInput) (*usecase.ListOutput, error) {
	list := &entity.TodoList{
		UserID: userID,
		Title:  input.Title,
	}

	if err := srv.listRepo.Create(ctx, list); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			// The owning account vanished mid-request.
			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Failed to create list", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create list")
	}

	srv.log(ctx).Debug("List created", slog.Any("userID", userID), slog.Any("listID", list.ID))

	return usecase.NewListOutput(list), nil
}

// GetLists returns every list owned by userID.
func (srv *listService) GetLists(ctx context.Context, userID uuid.UUID) ([]*usecase.ListOutput, error) {
	lists, err := srv.listRepo.FindAllByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load lists", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load lists")
	}

	outputs := make([]*usecase.ListOutput, 0, len(lists))
	for _, list := range lists {
		outputs = append(outputs, usecase.NewListOutput(list))
	}

	return outputs, nil
}

// GetList returns a single list owned by userID.
func (srv *listService) GetList(ctx context.Context, userID, listID uuid.UUID) (*usecase.ListOutput, error) {
	list, err := srv.listRepo.FindByIDAndUser(ctx, listID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, domainerrors.ErrListNotFound
		}

		srv.log(ctx).Error("Failed to load list", slog.Any("listID", listID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load list")
	}

	return usecase.NewListOutput(list), nil
}

// UpdateList renames a list owned by userID.
func (srv *listService) UpdateList(ctx context.Context, userID, listID uuid.UUID, input usecase.UpdateListInput) (*usecase.ListOutput, error) {
	list, err := srv.listRepo.UpdateTitle(ctx, listID, userID, input.Title)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, domainerrors.ErrListNotFound
		}

		srv.log(ctx).Error("Failed to update list", slog.Any("listID", listID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update list")
	}

	srv.log(ctx).Debug("List updated", slog.Any("userID", userID), slog.Any("listID", listID))

	return usecase.NewListOutput(list), nil
}

// DeleteList removes a list owned by userID along with its tasks.
func (srv *listService) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	if err := srv.listRepo.Delete(ctx, listID, userID); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return domainerrors.ErrListNotFound
		}

		srv.log(ctx).Error("Failed to delete list", slog.Any("listID", listID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete list")
	}

	srv.log(ctx).Debug("List deleted", slog.Any("userID", userID), slog.Any("listID", listID))

	return nil
}
