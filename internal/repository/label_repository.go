package repository

import (
	"github.com/skazhukov/task-manager/internal/models"
	"gorm.io/gorm"
)

// GormLabelRepository is a GORM implementation of LabelRepository
type GormLabelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new LabelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &GormLabelRepository{db: db}
}

// Create creates a new label
func (r *GormLabelRepository) Create(label *models.Label) error {
	return r.db.Create(label).Error
}

// FindByID finds a label by ID
func (r *GormLabelRepository) FindByID(id uint64) (*models.Label, error) {
	var label models.Label
	if err := r.db.First(&label, id).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// FindByName finds a label by its unique name
func (r *GormLabelRepository) FindByName(name string) (*models.Label, error) {
	var label models.Label
	if err := r.db.Where("name = ?", name).First(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// FindAll lists labels in creation order
func (r *GormLabelRepository) FindAll() ([]models.Label, error) {
	var labels []models.Label
	if err := r.db.Order("id ASC").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// Update persists all fields of an existing label
func (r *GormLabelRepository) Update(label *models.Label) error {
	return r.db.Save(label).Error
}

// Delete removes a label unless a task still references it
func (r *GormLabelRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("task_labels").Where("label_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrReferenced
		}

		return tx.Delete(&models.Label{}, id).Error
	})
}
