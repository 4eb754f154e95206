package services

import (
	"errors"
	"fmt"

	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/models"
	"github.com/skazhukov/task-manager/internal/repository"
	"gorm.io/gorm"
)

// StatusService handles task status business logic. Any authenticated user
// may mutate statuses; there is no ownership concept on them.
type StatusService struct {
	statusRepo repository.StatusRepository
}

// NewStatusService creates a new StatusService
func NewStatusService(statusRepo repository.StatusRepository) *StatusService {
	return &StatusService{statusRepo: statusRepo}
}

// Create creates a status with a globally unique name
func (s *StatusService) Create(name string) (*models.Status, error) {
	if _, err := s.statusRepo.FindByName(name); err == nil {
		return nil, &apperrors.AlreadyExistsError{Resource: "Status", Value: name}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check status name: %w", err)
	}

	status := &models.Status{Name: name}
	if err := s.statusRepo.Create(status); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.AlreadyExistsError{Resource: "Status", Value: name}
		}
		return nil, fmt.Errorf("failed to create status: %w", err)
	}

	return status, nil
}

// FindAll lists all statuses
func (s *StatusService) FindAll() ([]models.Status, error) {
	statuses, err := s.statusRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}

// FindByID returns a status by ID
func (s *StatusService) FindByID(id uint64) (*models.Status, error) {
	status, err := s.statusRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "Status", ID: id}
		}
		return nil, fmt.Errorf("failed to find status: %w", err)
	}
	return status, nil
}

// Update renames a status, re-checking name uniqueness against other rows
func (s *StatusService) Update(id uint64, name string) (*models.Status, error) {
	status, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if other, err := s.statusRepo.FindByName(name); err == nil && other.ID != status.ID {
		return nil, &apperrors.AlreadyExistsError{Resource: "Status", Value: name}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check status name: %w", err)
	}

	status.Name = name
	if err := s.statusRepo.Update(status); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.AlreadyExistsError{Resource: "Status", Value: name}
		}
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	return status, nil
}

// Delete removes a status. A status still referenced by tasks is a conflict,
// not a cascade.
func (s *StatusService) Delete(id uint64) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}

	if err := s.statusRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return &apperrors.DeleteConflictError{Resource: "Status", ID: id}
		}
		return fmt.Errorf("failed to delete status: %w", err)
	}

	return nil
}
