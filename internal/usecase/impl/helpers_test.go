package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- in-memory repository fakes ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User

	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

type fakeListRepo struct {
	mu    sync.Mutex
	lists map[uuid.UUID]*entity.TodoList

	createErr error
	findErr   error
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{lists: make(map[uuid.UUID]*entity.TodoList)}
}

func (r *fakeListRepo) Create(_ context.Context, list *entity.TodoList) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	list.ID = uuid.New()
	list.CreatedAt = time.Now()
	list.UpdatedAt = list.CreatedAt
	clone := *list
	r.lists[list.ID] = &clone

	return nil
}

func (r *fakeListRepo) FindAllByUser(_ context.Context, userID uuid.UUID) ([]*entity.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	var out []*entity.TodoList
	for _, list := range r.lists {
		if list.UserID == userID {
			clone := *list
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (r *fakeListRepo) FindByIDAndUser(_ context.Context, listID, userID uuid.UUID) (*entity.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	list, ok := r.lists[listID]
	if !ok || list.UserID != userID {
		return nil, repository.ErrListNotFound
	}
	clone := *list

	return &clone, nil
}

func (r *fakeListRepo) UpdateTitle(_ context.Context, listID, userID uuid.UUID, title string) (*entity.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[listID]
	if !ok || list.UserID != userID {
		return nil, repository.ErrListNotFound
	}

	list.Title = title
	list.UpdatedAt = time.Now()
	clone := *list

	return &clone, nil
}

func (r *fakeListRepo) Delete(_ context.Context, listID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[listID]
	if !ok || list.UserID != userID {
		return repository.ErrListNotFound
	}
	delete(r.lists, listID)

	return nil
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*entity.Task

	updateErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*entity.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = uuid.New()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	clone := *task
	r.tasks[task.ID] = &clone

	return nil
}

func (r *fakeTaskRepo) FindAllByList(_ context.Context, listID uuid.UUID) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Task
	for _, task := range r.tasks {
		if task.ListID == listID {
			clone := *task
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

func (r *fakeTaskRepo) FindByIDAndList(_ context.Context, taskID, listID uuid.UUID) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.ListID != listID {
		return nil, repository.ErrTaskNotFound
	}
	clone := *task

	return &clone, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return r.updateErr
	}

	existing, ok := r.tasks[task.ID]
	if !ok || existing.ListID != task.ListID {
		return repository.ErrTaskNotFound
	}

	existing.Title = task.Title
	existing.Status = task.Status
	existing.UpdatedAt = time.Now()

	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, taskID, listID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.ListID != listID {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, taskID)

	return nil
}

// --- transaction fakes ---

type fakeRepoFactory struct {
	userRepo *fakeUserRepo
	listRepo *fakeListRepo
	taskRepo *fakeTaskRepo
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository { return f.userRepo }
func (f *fakeRepoFactory) NewListRepository() repository.ListRepository { return f.listRepo }
func (f *fakeRepoFactory) NewTaskRepository() repository.TaskRepository { return f.taskRepo }

type fakeTxManager struct {
	factory *fakeRepoFactory

	beginErr error
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if tm.beginErr != nil {
		return tm.beginErr
	}

	return fn(tm.factory)
}

// --- domain service fakes ---

type fakeHasher struct {
	mu         sync.Mutex
	checkCalls []string

	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, encoded string) (bool, error) {
	h.mu.Lock()
	h.checkCalls = append(h.checkCalls, encoded)
	h.mu.Unlock()

	if !strings.HasPrefix(encoded, "hashed:") && !strings.HasPrefix(encoded, "$argon2id$") {
		return false, errors.New("malformed hash")
	}

	return encoded == "hashed:"+password, nil
}

func (h *fakeHasher) checkCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.checkCalls)
}

type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) Issue(userID uuid.UUID) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-for-" + userID.String(), nil
}

func (s *fakeTokenService) Validate(tokenString string) (uuid.UUID, error) {
	id, ok := strings.CutPrefix(tokenString, "token-for-")
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return userID, nil
}
