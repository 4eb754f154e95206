package repository

import (
	"github.com/skazhukov/task-manager/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email (exact match)
	FindByEmail(email string) (*models.User, error)

	// FindAll lists users in creation order
	FindAll() ([]models.User, error)

	// Update persists all fields of an existing user
	Update(user *models.User) error

	// Delete removes a user
	Delete(id uint64) error
}

// StatusRepository defines the interface for status data access
type StatusRepository interface {
	// Create creates a new status
	Create(status *models.Status) error

	// FindByID finds a status by ID
	FindByID(id uint64) (*models.Status, error)

	// FindByName finds a status by its unique name
	FindByName(name string) (*models.Status, error)

	// FindAll lists statuses in creation order
	FindAll() ([]models.Status, error)

	// Update persists all fields of an existing status
	Update(status *models.Status) error

	// Delete removes a status; fails when any task references it
	Delete(id uint64) error
}

// LabelRepository defines the interface for label data access
type LabelRepository interface {
	// Create creates a new label
	Create(label *models.Label) error

	// FindByID finds a label by ID
	FindByID(id uint64) (*models.Label, error)

	// FindByName finds a label by its unique name
	FindByName(name string) (*models.Label, error)

	// FindAll lists labels in creation order
	FindAll() ([]models.Label, error)

	// Update persists all fields of an existing label
	Update(label *models.Label) error

	// Delete removes a label; fails when any task references it
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task together with its label associations
	Create(task *models.Task) error

	// FindByID finds a task by ID with its relations preloaded
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks matching the conjunction of the present filter
	// criteria in a single query
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists the task fields and replaces its label associations
	// within one transaction
	Update(task *models.Task, labels []models.Label) error

	// Delete removes a task and its label associations
	Delete(id uint64) error
}

// TaskFilter holds the optional task list criteria. Nil fields impose no
// constraint; present fields compose via AND.
type TaskFilter struct {
	StatusID   *uint64
	ExecutorID *uint64
	LabelID    *uint64
	AuthorID   *uint64
}
