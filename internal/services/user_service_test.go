package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/dto"
	"github.com/skazhukov/task-manager/internal/models"
	"github.com/skazhukov/task-manager/internal/repository"
)

type UserServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Status{},
		&models.Label{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	suite.service = NewUserService(repository.NewUserRepository(suite.db))
}

func (suite *UserServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *UserServiceTestSuite) signup(email string) *models.User {
	user, err := suite.service.Create(dto.CreateUserRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Password:  "secret",
	})
	suite.Require().NoError(err)
	return user
}

func (suite *UserServiceTestSuite) TestCreate_PasswordIsHashed() {
	user := suite.signup("jane@example.com")

	suite.NotEqual("secret", user.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func (suite *UserServiceTestSuite) TestCreate_DuplicateEmail() {
	suite.signup("jane@example.com")

	_, err := suite.service.Create(dto.CreateUserRequest{
		FirstName: "Another",
		LastName:  "Jane",
		Email:     "jane@example.com",
		Password:  "different",
	})

	var existsErr *apperrors.AlreadyExistsError
	suite.Require().ErrorAs(err, &existsErr)
	suite.Equal("User", existsErr.Resource)

	// Exactly one user with that email remains
	var count int64
	suite.db.Model(&models.User{}).Where("email = ?", "jane@example.com").Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *UserServiceTestSuite) TestUpdate_SelfOnly() {
	jane := suite.signup("jane@example.com")
	mallory := suite.signup("mallory@example.com")

	_, err := suite.service.Update(jane.ID, mallory.ID, dto.UpdateUserRequest{
		FirstName: dto.NullableOf("Hacked"),
	})

	var permErr *apperrors.PermissionDeniedError
	suite.Require().ErrorAs(err, &permErr)

	// No mutation occurred
	stored, err := suite.service.FindByID(jane.ID)
	suite.Require().NoError(err)
	suite.Equal("Jane", stored.FirstName)
}

func (suite *UserServiceTestSuite) TestUpdate_OmittedFieldsUnchanged() {
	jane := suite.signup("jane@example.com")

	updated, err := suite.service.Update(jane.ID, jane.ID, dto.UpdateUserRequest{
		LastName: dto.NullableOf("Smith"),
	})
	suite.Require().NoError(err)

	suite.Equal("Jane", updated.FirstName)
	suite.Equal("Smith", updated.LastName)
	suite.Equal("jane@example.com", updated.Email)
	suite.Equal(jane.PasswordHash, updated.PasswordHash)
}

func (suite *UserServiceTestSuite) TestUpdate_EmailUniqueness() {
	jane := suite.signup("jane@example.com")
	suite.signup("taken@example.com")

	_, err := suite.service.Update(jane.ID, jane.ID, dto.UpdateUserRequest{
		Email: dto.NullableOf("taken@example.com"),
	})

	var existsErr *apperrors.AlreadyExistsError
	suite.Require().ErrorAs(err, &existsErr)
}

func (suite *UserServiceTestSuite) TestUpdate_PasswordRehashed() {
	jane := suite.signup("jane@example.com")

	updated, err := suite.service.Update(jane.ID, jane.ID, dto.UpdateUserRequest{
		Password: dto.NullableOf("newsecret"),
	})
	suite.Require().NoError(err)

	suite.NotEqual("newsecret", updated.PasswordHash)
	suite.NotEqual(jane.PasswordHash, updated.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newsecret")))
}

func (suite *UserServiceTestSuite) TestUpdate_NullRequiredFieldRejected() {
	jane := suite.signup("jane@example.com")

	_, err := suite.service.Update(jane.ID, jane.ID, dto.UpdateUserRequest{
		Email: dto.NullableNull[string](),
	})

	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
}

func (suite *UserServiceTestSuite) TestUpdate_InvalidEmailRejected() {
	jane := suite.signup("jane@example.com")

	_, err := suite.service.Update(jane.ID, jane.ID, dto.UpdateUserRequest{
		Email: dto.NullableOf("not-an-email"),
	})

	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
}

func (suite *UserServiceTestSuite) TestDelete_SelfOnly() {
	jane := suite.signup("jane@example.com")
	mallory := suite.signup("mallory@example.com")

	err := suite.service.Delete(jane.ID, mallory.ID)
	var permErr *apperrors.PermissionDeniedError
	suite.Require().ErrorAs(err, &permErr)

	suite.Require().NoError(suite.service.Delete(jane.ID, jane.ID))

	_, err = suite.service.FindByID(jane.ID)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *UserServiceTestSuite) TestDelete_BlockedWhileAuthorOfTask() {
	jane := suite.signup("jane@example.com")

	status := &models.Status{Name: "new"}
	suite.Require().NoError(suite.db.Create(status).Error)
	task := &models.Task{Name: "Report", AuthorID: jane.ID, StatusID: status.ID}
	suite.Require().NoError(suite.db.Create(task).Error)

	err := suite.service.Delete(jane.ID, jane.ID)
	var conflictErr *apperrors.DeleteConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Equal("User", conflictErr.Resource)
	suite.Equal(jane.ID, conflictErr.ID)

	// Neither the user nor the task was touched
	stored, err := suite.service.FindByID(jane.ID)
	suite.Require().NoError(err)
	suite.Equal(jane.Email, stored.Email)

	var count int64
	suite.db.Model(&models.Task{}).Where("author_id = ?", jane.ID).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *UserServiceTestSuite) TestDelete_BlockedWhileExecutorOfTask() {
	jane := suite.signup("jane@example.com")
	bob := suite.signup("bob@example.com")

	status := &models.Status{Name: "new"}
	suite.Require().NoError(suite.db.Create(status).Error)
	task := &models.Task{Name: "Report", AuthorID: jane.ID, ExecutorID: &bob.ID, StatusID: status.ID}
	suite.Require().NoError(suite.db.Create(task).Error)

	err := suite.service.Delete(bob.ID, bob.ID)
	var conflictErr *apperrors.DeleteConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Equal("User", conflictErr.Resource)

	_, err = suite.service.FindByID(bob.ID)
	suite.NoError(err)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
