package repository

import (
	"github.com/skazhukov/task-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task and its label associations in one transaction
func (r *GormTaskRepository) Create(task *models.Task) error {
	labels := task.Labels
	task.Labels = nil

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return err
		}

		if len(labels) > 0 {
			if err := tx.Model(task).Association("Labels").Append(&labels); err != nil {
				return err
			}
		}

		task.Labels = labels
		return nil
	})
}

// FindByID finds a task by ID with its relations preloaded
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Preload("Author").
		Preload("Executor").
		Preload("Status").
		Preload("Labels").
		First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks matching the conjunction of the present criteria.
// All predicates are pushed into a single query; the label criterion uses an
// EXISTS subquery over the join table so it matches set membership.
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{})

	if filter.StatusID != nil {
		query = query.Where("tasks.status_id = ?", *filter.StatusID)
	}
	if filter.ExecutorID != nil {
		query = query.Where("tasks.executor_id = ?", *filter.ExecutorID)
	}
	if filter.AuthorID != nil {
		query = query.Where("tasks.author_id = ?", *filter.AuthorID)
	}
	if filter.LabelID != nil {
		labelSubQuery := r.db.Table("task_labels").
			Select("1").
			Where("task_labels.task_id = tasks.id").
			Where("task_labels.label_id = ?", *filter.LabelID)
		query = query.Where("EXISTS (?)", labelSubQuery)
	}

	err := query.
		Order("tasks.id ASC").
		Preload("Author").
		Preload("Executor").
		Preload("Status").
		Preload("Labels").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update persists the task fields and replaces its label associations
// atomically. The labels argument is the full replacement set.
func (r *GormTaskRepository) Update(task *models.Task, labels []models.Label) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(task).Error; err != nil {
			return err
		}

		if err := tx.Model(task).Association("Labels").Replace(&labels); err != nil {
			return err
		}

		task.Labels = labels
		return nil
	})
}

// Delete removes a task and its label associations
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_labels WHERE task_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
}
