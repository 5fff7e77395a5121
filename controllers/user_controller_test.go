package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"veggieweek/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func goalRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	ctl := NewUserController(services.NewUserService(db))

	r := gin.New()
	r.GET("/user/goal", asUser(1), ctl.GetGoal)
	r.PUT("/user/goal", asUser(1), ctl.UpdateGoal)
	return r, mock
}

func putGoal(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/user/goal", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateGoalRejectsNegativeGoal(t *testing.T) {
	r, mock := goalRouter(t)

	w := putGoal(r, `{"goal": -1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Nothing reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGoalRejectsMissingGoal(t *testing.T) {
	r, _ := goalRouter(t)

	w := putGoal(r, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoalRoundTrip(t *testing.T) {
	r, mock := goalRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := putGoal(r, `{"goal": 5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"weekly_vegetable_goal":5}`, w.Body.String())

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "username", "password_hash", "full_name", "weekly_vegetable_goal"}).
			AddRow(1, "alice", "x", "Alice A", 5))

	req := httptest.NewRequest(http.MethodGet, "/user/goal", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"weekly_vegetable_goal":5}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
