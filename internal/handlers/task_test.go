package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/castillotomupwork/task/internal/constants"
	"github.com/castillotomupwork/task/internal/i18n"
	"github.com/castillotomupwork/task/internal/models"
	"github.com/castillotomupwork/task/internal/repository"
	"github.com/castillotomupwork/task/internal/services"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db       *gorm.DB
	handler  *TaskHandler
	bundle   *i18n.Bundle
	assignee *models.User
	creator  *models.User
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Task{})
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	suite.handler = NewTaskHandler(services.NewTaskService(taskRepo), userRepo)
	suite.bundle = i18n.MustNewBundle()

	gin.SetMode(gin.TestMode)

	suite.assignee = suite.createUserRow("worker", "Wendy Worker")
	suite.creator = suite.createUserRow("manager", "Mark Manager")
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) createUserRow(username, name string) *models.User {
	user := &models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *TaskHandlerTestSuite) createTaskRow(title, dueDate string) *models.Task {
	due, err := time.Parse(time.DateOnly, dueDate)
	suite.Require().NoError(err)

	task := &models.Task{
		ID:         uuid.NewString(),
		Title:      title,
		Status:     models.TaskStatusPending,
		DueDate:    models.DateOnly(due),
		Priority:   models.TaskPriorityLow,
		AssignedTo: suite.assignee.ID,
		CreatedBy:  suite.creator.ID,
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func (suite *TaskHandlerTestSuite) createContext(method, url string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyTranslator, suite.bundle.Translator("en"))

	return c, w
}

func (suite *TaskHandlerTestSuite) setID(c *gin.Context, id string) {
	c.Params = append(c.Params, gin.Param{Key: "id", Value: id})
}

func (suite *TaskHandlerTestSuite) taskBody(overrides map[string]any) []byte {
	payload := map[string]any{
		"title":      "Write the report",
		"status":     "pending",
		"dueDate":    time.Now().AddDate(0, 0, 7).Format(time.DateOnly),
		"priority":   "medium",
		"assignedTo": suite.assignee.ID,
		"createdBy":  suite.creator.ID,
	}
	for k, v := range overrides {
		payload[k] = v
	}
	body, _ := json.Marshal(payload)
	return body
}

func (suite *TaskHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	c, w := suite.createContext("POST", "/api/tasks", suite.taskBody(nil))

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), true, response["success"])

	data := response["data"].(map[string]any)
	assert.Equal(suite.T(), "Write the report", data["title"])
	assert.Equal(suite.T(), "medium", data["priority"])
}

func (suite *TaskHandlerTestSuite) TestCreateTask_PastDueDate() {
	c, w := suite.createContext("POST", "/api/tasks", suite.taskBody(map[string]any{
		"dueDate": time.Now().AddDate(0, 0, -1).Format(time.DateOnly),
	}))

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	message := response["message"].([]any)
	suite.Require().Len(message, 1)
	assert.Equal(suite.T(), "dueDate", message[0].(map[string]any)["field"])
}

func (suite *TaskHandlerTestSuite) TestCreateTask_UnknownAssignee() {
	c, w := suite.createContext("POST", "/api/tasks", suite.taskBody(map[string]any{
		"assignedTo": uuid.NewString(),
	}))

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	message := response["message"].([]any)
	suite.Require().Len(message, 1)
	fieldErr := message[0].(map[string]any)
	assert.Equal(suite.T(), "assignedTo", fieldErr["field"])
	assert.Equal(suite.T(), "Assigned user does not exist", fieldErr["message"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_InvalidSortFieldFallsBackToDueDate() {
	suite.createTaskRow("second", "2031-06-01")
	suite.createTaskRow("first", "2030-06-01")
	suite.createTaskRow("third", "2032-06-01")

	c, w := suite.createContext("GET", "/api/tasks", nil)
	c.Request.URL.RawQuery = "sortBy=invalidField"

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].([]any)
	suite.Require().Len(data, 3)
	assert.Equal(suite.T(), "first", data[0].(map[string]any)["title"])
	assert.Equal(suite.T(), "second", data[1].(map[string]any)["title"])
	assert.Equal(suite.T(), "third", data[2].(map[string]any)["title"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_TotalIndependentOfWindow() {
	suite.createTaskRow("a", "2030-06-01")
	suite.createTaskRow("b", "2030-06-02")
	suite.createTaskRow("c", "2030-06-03")

	c, w := suite.createContext("GET", "/api/tasks", nil)
	c.Request.URL.RawQuery = "page=2&limit=1"

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.EqualValues(suite.T(), 3, response["total"])

	data := response["data"].([]any)
	suite.Require().Len(data, 1)
	assert.Equal(suite.T(), "b", data[0].(map[string]any)["title"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_NegativePagingClampsToDefaults() {
	suite.createTaskRow("a", "2030-06-01")

	c, w := suite.createContext("GET", "/api/tasks", nil)
	c.Request.URL.RawQuery = "page=-3&limit=-10"

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].([]any)
	assert.Len(suite.T(), data, 1)
}

func (suite *TaskHandlerTestSuite) TestListTasks_DecoratesRows() {
	suite.createTaskRow("a", "2030-06-01")

	c, w := suite.createContext("GET", "/api/tasks", nil)

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].([]any)
	suite.Require().Len(data, 1)

	row := data[0].(map[string]any)
	assert.Equal(suite.T(), "Wendy Worker", row["assignedToName"])
	assert.Equal(suite.T(), "Mark Manager", row["createdByName"])
	assert.Equal(suite.T(), "Pending", row["statusLabel"])
	assert.Equal(suite.T(), "Low", row["priorityLabel"])
	assert.Equal(suite.T(), "06-01-2030", row["dueDateFormatted"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_ExcludesSoftDeleted() {
	kept := suite.createTaskRow("kept", "2030-06-01")
	dropped := suite.createTaskRow("dropped", "2030-06-02")
	suite.db.Model(dropped).Update("is_deleted", true)

	c, w := suite.createContext("GET", "/api/tasks", nil)

	suite.handler.ListTasks(c)

	response := suite.decode(w)
	assert.EqualValues(suite.T(), 1, response["total"])

	data := response["data"].([]any)
	suite.Require().Len(data, 1)
	assert.Equal(suite.T(), kept.Title, data[0].(map[string]any)["title"])
}

func (suite *TaskHandlerTestSuite) TestGetTask_NotFound() {
	c, w := suite.createContext("GET", "/api/tasks/missing", nil)
	suite.setID(c, uuid.NewString())

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "Task not found", response["message"])
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_Success() {
	task := suite.createTaskRow("old title", "2030-06-01")

	c, w := suite.createContext("PUT", "/api/tasks/"+task.ID, suite.taskBody(map[string]any{
		"title":  "new title",
		"status": "completed",
	}))
	suite.setID(c, task.ID)

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].(map[string]any)
	assert.Equal(suite.T(), "new title", data["title"])
	assert.Equal(suite.T(), "completed", data["status"])
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_TwiceReturnsNotFound() {
	task := suite.createTaskRow("doomed", "2030-06-01")

	c, w := suite.createContext("DELETE", "/api/tasks/"+task.ID, nil)
	suite.setID(c, task.ID)
	suite.handler.DeleteTask(c)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	c, w = suite.createContext("DELETE", "/api/tasks/"+task.ID, nil)
	suite.setID(c, task.ID)
	suite.handler.DeleteTask(c)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	// the row itself is retained
	var count int64
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
	assert.EqualValues(suite.T(), 1, count)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
