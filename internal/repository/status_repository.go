package repository

import (
	"errors"

	"github.com/skazhukov/task-manager/internal/models"
	"gorm.io/gorm"
)

// ErrReferenced is returned when a delete is blocked because existing tasks
// still reference the row.
var ErrReferenced = errors.New("repository: entity is referenced by existing tasks")

// GormStatusRepository is a GORM implementation of StatusRepository
type GormStatusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new StatusRepository
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &GormStatusRepository{db: db}
}

// Create creates a new status
func (r *GormStatusRepository) Create(status *models.Status) error {
	return r.db.Create(status).Error
}

// FindByID finds a status by ID
func (r *GormStatusRepository) FindByID(id uint64) (*models.Status, error) {
	var status models.Status
	if err := r.db.First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// FindByName finds a status by its unique name
func (r *GormStatusRepository) FindByName(name string) (*models.Status, error) {
	var status models.Status
	if err := r.db.Where("name = ?", name).First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// FindAll lists statuses in creation order
func (r *GormStatusRepository) FindAll() ([]models.Status, error) {
	var statuses []models.Status
	if err := r.db.Order("id ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// Update persists all fields of an existing status
func (r *GormStatusRepository) Update(status *models.Status) error {
	return r.db.Save(status).Error
}

// Delete removes a status unless a task still references it
func (r *GormStatusRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Task{}).Where("status_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrReferenced
		}

		return tx.Delete(&models.Status{}, id).Error
	})
}
