package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skazhukov/task-manager/internal/middleware"
	"github.com/skazhukov/task-manager/internal/models"
	"github.com/skazhukov/task-manager/internal/repository"
	"github.com/skazhukov/task-manager/internal/services"
	"github.com/skazhukov/task-manager/internal/token"
)

// HandlerTestSuite wires the full router over an in-memory database so tests
// exercise routing, the auth middleware, and handlers together.
type HandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	tokens *token.Manager
}

// SetupTest runs before each test
func (suite *HandlerTestSuite) SetupTest() {
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

	userRepo := repository.NewUserRepository(suite.db)
	statusRepo := repository.NewStatusRepository(suite.db)
	labelRepo := repository.NewLabelRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)

	suite.tokens = token.NewManager("test-secret", time.Hour)
	authService := services.NewAuthService(userRepo, suite.tokens)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(services.NewUserService(userRepo))
	statusHandler := NewStatusHandler(services.NewStatusService(statusRepo))
	labelHandler := NewLabelHandler(services.NewLabelService(labelRepo))
	taskHandler := NewTaskHandler(services.NewTaskService(taskRepo, userRepo, statusRepo, labelRepo))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	requireAuth := middleware.RequireAuth(suite.tokens, authService)

	api := suite.router.Group("/api")
	api.POST("/login", authHandler.Login)

	users := api.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", requireAuth, userHandler.UpdateUser)
	users.DELETE("/:id", requireAuth, userHandler.DeleteUser)

	statuses := api.Group("/statuses")
	statuses.Use(requireAuth)
	statuses.GET("", statusHandler.ListStatuses)
	statuses.POST("", statusHandler.CreateStatus)
	statuses.GET("/:id", statusHandler.GetStatus)
	statuses.PUT("/:id", statusHandler.UpdateStatus)
	statuses.DELETE("/:id", statusHandler.DeleteStatus)

	labels := api.Group("/labels")
	labels.Use(requireAuth)
	labels.GET("", labelHandler.ListLabels)
	labels.POST("", labelHandler.CreateLabel)
	labels.GET("/:id", labelHandler.GetLabel)
	labels.PUT("/:id", labelHandler.UpdateLabel)
	labels.DELETE("/:id", labelHandler.DeleteLabel)

	tasks := api.Group("/tasks")
	tasks.Use(requireAuth)
	tasks.GET("", taskHandler.ListTasks)
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("/:id", taskHandler.GetTask)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)
}

// TearDownTest runs after each test
func (suite *HandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *HandlerTestSuite) createTestUser(email, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
	}
	suite.db.Create(user)
	return user
}

func (suite *HandlerTestSuite) createTestStatus(name string) *models.Status {
	status := &models.Status{Name: name}
	suite.db.Create(status)
	return status
}

func (suite *HandlerTestSuite) createTestLabel(name string) *models.Label {
	label := &models.Label{Name: name}
	suite.db.Create(label)
	return label
}

func (suite *HandlerTestSuite) authHeaderFor(user *models.User) string {
	signed, err := suite.tokens.Issue(user.Email)
	suite.Require().NoError(err)
	return "Bearer " + signed
}

// request performs an HTTP request against the test router. A non-empty
// authHeader is sent as the Authorization header.
func (suite *HandlerTestSuite) request(method, url string, body any, authHeader string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (suite *HandlerTestSuite) decodeList(w *httptest.ResponseRecorder) []map[string]any {
	var out []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
