package services

import (
	"errors"
	"fmt"

	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/dto"
	"github.com/skazhukov/task-manager/internal/models"
	"github.com/skazhukov/task-manager/internal/repository"
	"gorm.io/gorm"
)

// TaskService handles task business logic: reference resolution for the
// executor/status/label ids carried in payloads, tri-state partial updates,
// predicate-based filtering, and the author-only delete rule.
type TaskService struct {
	taskRepo   repository.TaskRepository
	userRepo   repository.UserRepository
	statusRepo repository.StatusRepository
	labelRepo  repository.LabelRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	statusRepo repository.StatusRepository,
	labelRepo repository.LabelRepository,
) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		userRepo:   userRepo,
		statusRepo: statusRepo,
		labelRepo:  labelRepo,
	}
}

// Create creates a task authored by the current principal. All referenced
// entities must exist; any unresolved reference aborts the whole operation.
func (s *TaskService) Create(input dto.CreateTaskRequest, authorID uint64) (*models.Task, error) {
	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		AuthorID:    authorID,
	}

	if input.ExecutorID != nil {
		executor, err := s.resolveExecutor(*input.ExecutorID)
		if err != nil {
			return nil, err
		}
		task.ExecutorID = &executor.ID
	}

	if input.TaskStatusID == nil {
		return nil, apperrors.NewValidationError("taskStatusId", "cannot be empty")
	}
	status, err := s.resolveStatus(*input.TaskStatusID)
	if err != nil {
		return nil, err
	}
	task.StatusID = status.ID

	if input.LabelIDs != nil {
		labels, err := s.resolveLabels(input.LabelIDs)
		if err != nil {
			return nil, err
		}
		task.Labels = labels
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.FindByID(task.ID)
}

// FindAll lists tasks matching the conjunction of the present filter
// criteria. With no criteria it returns all tasks in creation order.
func (s *TaskService) FindAll(query dto.TaskFilterQuery) ([]models.Task, error) {
	filter := repository.TaskFilter{
		StatusID:   query.StatusID,
		ExecutorID: query.ExecutorID,
		LabelID:    query.LabelID,
		AuthorID:   query.AuthorID,
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// FindByID returns a task with resolved references
func (s *TaskService) FindByID(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "Task", ID: id}
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Update applies a sparse update to a task. Omitted fields stay untouched; an
// explicit null clears the executor, labels, or description and is rejected
// for name and status. The author is never re-derived from the payload. All
// reference resolution completes before anything is written, so a failed
// update leaves no partial state behind.
func (s *TaskService) Update(id uint64, input dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name.Present {
		if !input.Name.Valid || input.Name.Value == "" {
			return nil, apperrors.NewValidationError("name", "cannot be empty")
		}
		task.Name = input.Name.Value
	}

	if input.Description.Present {
		if input.Description.Valid {
			task.Description = input.Description.Value
		} else {
			task.Description = ""
		}
	}

	if input.ExecutorID.Present {
		if input.ExecutorID.Valid {
			executor, err := s.resolveExecutor(input.ExecutorID.Value)
			if err != nil {
				return nil, err
			}
			task.ExecutorID = &executor.ID
		} else {
			task.ExecutorID = nil
		}
	}

	if input.TaskStatusID.Present {
		if !input.TaskStatusID.Valid {
			return nil, apperrors.NewValidationError("taskStatusId", "cannot be null")
		}
		status, err := s.resolveStatus(input.TaskStatusID.Value)
		if err != nil {
			return nil, err
		}
		task.StatusID = status.ID
	}

	labels := task.Labels
	if input.LabelIDs.Present {
		if input.LabelIDs.Valid {
			labels, err = s.resolveLabels(input.LabelIDs.Value)
			if err != nil {
				return nil, err
			}
		} else {
			labels = []models.Label{}
		}
	}

	if err := s.taskRepo.Update(task, labels); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.FindByID(task.ID)
}

// Delete removes a task. Only its author may delete it.
func (s *TaskService) Delete(id, actorID uint64) error {
	task, err := s.FindByID(id)
	if err != nil {
		return err
	}

	if task.AuthorID != actorID {
		return &apperrors.PermissionDeniedError{}
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// resolveExecutor looks up a referenced executor, naming the reference kind
// in the not-found error to distinguish it from a missing task.
func (s *TaskService) resolveExecutor(id uint64) (*models.User, error) {
	executor, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "Executor", ID: id}
		}
		return nil, fmt.Errorf("failed to resolve executor: %w", err)
	}
	return executor, nil
}

func (s *TaskService) resolveStatus(id uint64) (*models.Status, error) {
	status, err := s.statusRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "Status", ID: id}
		}
		return nil, fmt.Errorf("failed to resolve status: %w", err)
	}
	return status, nil
}

// resolveLabels resolves a full replacement set of label ids. A single
// unresolvable id fails the whole set.
func (s *TaskService) resolveLabels(ids []uint64) ([]models.Label, error) {
	labels := make([]models.Label, 0, len(ids))
	seen := make(map[uint64]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		label, err := s.labelRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &apperrors.NotFoundError{Resource: "Label", ID: id}
			}
			return nil, fmt.Errorf("failed to resolve label: %w", err)
		}
		labels = append(labels, *label)
	}

	return labels, nil
}
