package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/dto"
	"github.com/skazhukov/task-manager/internal/models"
	"github.com/skazhukov/task-manager/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 3

// UserService handles user business logic. Signup is public; update and
// delete are permitted only for the user themselves.
type UserService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// Create registers a new user. The uniqueness pre-check by email is best
// effort; a concurrent insert still surfaces as a duplicate-key error, which
// is translated to the same conflict.
func (s *UserService) Create(input dto.CreateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, &apperrors.AlreadyExistsError{Resource: "User", Value: input.Email}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.AlreadyExistsError{Resource: "User", Value: input.Email}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindAll lists all users
func (s *UserService) FindAll() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindByID returns a user by ID
func (s *UserService) FindByID(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "User", ID: id}
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Update applies a sparse update to a user. Only the user themselves may
// update their record. Omitted fields stay untouched; all fields here are
// required, so an explicit null is rejected.
func (s *UserService) Update(id, actorID uint64, input dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if user.ID != actorID {
		return nil, &apperrors.PermissionDeniedError{}
	}

	if input.FirstName.Present {
		if !input.FirstName.Valid || input.FirstName.Value == "" {
			return nil, apperrors.NewValidationError("firstName", "cannot be empty")
		}
		user.FirstName = input.FirstName.Value
	}

	if input.LastName.Present {
		if !input.LastName.Valid || input.LastName.Value == "" {
			return nil, apperrors.NewValidationError("lastName", "cannot be empty")
		}
		user.LastName = input.LastName.Value
	}

	if input.Email.Present {
		if !input.Email.Valid || input.Email.Value == "" {
			return nil, apperrors.NewValidationError("email", "cannot be empty")
		}
		if err := s.validate.Var(input.Email.Value, "email"); err != nil {
			return nil, apperrors.NewValidationError("email", "has to be a valid email address")
		}
		if input.Email.Value != user.Email {
			if other, err := s.userRepo.FindByEmail(input.Email.Value); err == nil && other.ID != user.ID {
				return nil, &apperrors.AlreadyExistsError{Resource: "User", Value: input.Email.Value}
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
		}
		user.Email = input.Email.Value
	}

	if input.Password.Present {
		if !input.Password.Valid || len(input.Password.Value) < minPasswordLength {
			return nil, apperrors.NewValidationError("password", fmt.Sprintf("has to contain at least %d symbols", minPasswordLength))
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password.Value), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.AlreadyExistsError{Resource: "User", Value: user.Email}
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.FindByID(user.ID)
}

// Delete removes a user. Only the user themselves may delete their record.
func (s *UserService) Delete(id, actorID uint64) error {
	user, err := s.FindByID(id)
	if err != nil {
		return err
	}

	if user.ID != actorID {
		return &apperrors.PermissionDeniedError{}
	}

	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return &apperrors.DeleteConflictError{Resource: "User", ID: id}
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
