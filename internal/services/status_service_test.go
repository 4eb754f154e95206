package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skazhukov/task-manager/internal/apperrors"
	"github.com/skazhukov/task-manager/internal/models"
	"github.com/skazhukov/task-manager/internal/repository"
)

type StatusServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	statuses *StatusService
	labels   *LabelService
}

func (suite *StatusServiceTestSuite) SetupTest() {
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

	suite.statuses = NewStatusService(repository.NewStatusRepository(suite.db))
	suite.labels = NewLabelService(repository.NewLabelRepository(suite.db))
}

func (suite *StatusServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *StatusServiceTestSuite) TestCreate_DuplicateName() {
	_, err := suite.statuses.Create("New")
	suite.Require().NoError(err)

	_, err = suite.statuses.Create("New")
	var existsErr *apperrors.AlreadyExistsError
	suite.Require().ErrorAs(err, &existsErr)
	suite.Equal("Status", existsErr.Resource)
}

func (suite *StatusServiceTestSuite) TestUpdate_RenameToTakenName() {
	_, err := suite.statuses.Create("New")
	suite.Require().NoError(err)
	done, err := suite.statuses.Create("Done")
	suite.Require().NoError(err)

	_, err = suite.statuses.Update(done.ID, "New")
	var existsErr *apperrors.AlreadyExistsError
	suite.Require().ErrorAs(err, &existsErr)
}

func (suite *StatusServiceTestSuite) TestUpdate_KeepOwnName() {
	status, err := suite.statuses.Create("New")
	suite.Require().NoError(err)

	// Renaming to the current name is not a conflict
	updated, err := suite.statuses.Update(status.ID, "New")
	suite.Require().NoError(err)
	suite.Equal("New", updated.Name)
}

func (suite *StatusServiceTestSuite) TestDelete_BlockedWhileReferenced() {
	status, err := suite.statuses.Create("New")
	suite.Require().NoError(err)

	author := &models.User{FirstName: "A", LastName: "B", Email: "a@example.com", PasswordHash: "x"}
	suite.db.Create(author)
	suite.db.Create(&models.Task{Name: "Task", AuthorID: author.ID, StatusID: status.ID})

	err = suite.statuses.Delete(status.ID)
	var conflictErr *apperrors.DeleteConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Equal("Status", conflictErr.Resource)

	// Status remains retrievable
	stored, err := suite.statuses.FindByID(status.ID)
	suite.Require().NoError(err)
	suite.Equal("New", stored.Name)
}

func (suite *StatusServiceTestSuite) TestDelete_Unreferenced() {
	status, err := suite.statuses.Create("Obsolete")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.statuses.Delete(status.ID))

	_, err = suite.statuses.FindByID(status.ID)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *StatusServiceTestSuite) TestLabelDelete_BlockedWhileReferenced() {
	status, err := suite.statuses.Create("New")
	suite.Require().NoError(err)
	label, err := suite.labels.Create("urgent")
	suite.Require().NoError(err)

	author := &models.User{FirstName: "A", LastName: "B", Email: "a@example.com", PasswordHash: "x"}
	suite.db.Create(author)
	task := &models.Task{Name: "Task", AuthorID: author.ID, StatusID: status.ID}
	suite.db.Create(task)
	suite.Require().NoError(suite.db.Model(task).Association("Labels").Append(&models.Label{ID: label.ID}))

	err = suite.labels.Delete(label.ID)
	var conflictErr *apperrors.DeleteConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Equal("Label", conflictErr.Resource)
}

func (suite *StatusServiceTestSuite) TestLabelCreate_DuplicateName() {
	_, err := suite.labels.Create("urgent")
	suite.Require().NoError(err)

	_, err = suite.labels.Create("urgent")
	var existsErr *apperrors.AlreadyExistsError
	suite.Require().ErrorAs(err, &existsErr)
	suite.Equal("Label", existsErr.Resource)
}

func TestStatusServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatusServiceTestSuite))
}
