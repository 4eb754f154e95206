package services

import (
	"errors"
	"fmt"

	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/models"
	"github.com/skazhukov/task-manager/internal/repository"
	"gorm.io/gorm"
)

// LabelService handles label business logic. Labels follow the same rules as
// statuses: unique names, mutations by any authenticated user, deletion
// blocked while tasks reference them.
type LabelService struct {
	labelRepo repository.LabelRepository
}

// NewLabelService creates a new LabelService
func NewLabelService(labelRepo repository.LabelRepository) *LabelService {
	return &LabelService{labelRepo: labelRepo}
}

// Create creates a label with a globally unique name
func (s *LabelService) Create(name string) (*models.Label, error) {
	if _, err := s.labelRepo.FindByName(name); err == nil {
		return nil, &apperrors.AlreadyExistsError{Resource: "Label", Value: name}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check label name: %w", err)
	}

	label := &models.Label{Name: name}
	if err := s.labelRepo.Create(label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.AlreadyExistsError{Resource: "Label", Value: name}
		}
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	return label, nil
}

// FindAll lists all labels
func (s *LabelService) FindAll() ([]models.Label, error) {
	labels, err := s.labelRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return labels, nil
}

// FindByID returns a label by ID
func (s *LabelService) FindByID(id uint64) (*models.Label, error) {
	label, err := s.labelRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "Label", ID: id}
		}
		return nil, fmt.Errorf("failed to find label: %w", err)
	}
	return label, nil
}

// Update renames a label, re-checking name uniqueness against other rows
func (s *LabelService) Update(id uint64, name string) (*models.Label, error) {
	label, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if other, err := s.labelRepo.FindByName(name); err == nil && other.ID != label.ID {
		return nil, &apperrors.AlreadyExistsError{Resource: "Label", Value: name}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check label name: %w", err)
	}

	label.Name = name
	if err := s.labelRepo.Update(label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.AlreadyExistsError{Resource: "Label", Value: name}
		}
		return nil, fmt.Errorf("failed to update label: %w", err)
	}

	return label, nil
}

// Delete removes a label unless tasks still reference it
func (s *LabelService) Delete(id uint64) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}

	if err := s.labelRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return &apperrors.DeleteConflictError{Resource: "Label", ID: id}
		}
		return fmt.Errorf("failed to delete label: %w", err)
	}

	return nil
}
