package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"complaint_system/internal/api"
	"complaint_system/internal/domain"
	"complaint_system/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Complaint{}, &domain.Comment{}, &domain.Notification{}))
	return db
}

func newAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	r := gin.New()
	r.POST("/register", api.RegisterHandler(db))
	r.POST("/login", api.LoginHandler(db, testSecret))
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(t, r, "/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "correct horse",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postJSON(t, r, "/login", gin.H{
		"email":    "alice@example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := utils.ParseJWT(resp.Token, testSecret)
	require.NoError(t, err)
	assert.EqualValues(t, 1, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := newAuthRouter(t)

	w := postJSON(t, r, "/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same email again, different username and case
	w = postJSON(t, r, "/register", gin.H{
		"username": "alice2",
		"email":    "Alice@Example.com",
		"password": "correct horse",
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "no duplicate user row may be created")
}

func TestRegisterRejectsBadInput(t *testing.T) {
	r, _ := newAuthRouter(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{name: "missing fields", body: gin.H{"username": "alice"}},
		{name: "bad email", body: gin.H{"username": "alice", "email": "not-an-email", "password": "correct horse"}},
		{name: "short password", body: gin.H{"username": "alice", "email": "alice@example.com", "password": "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, "/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(t, r, "/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/login", gin.H{
		"email":    "alice@example.com",
		"password": "wrong horse!",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, r, "/login", gin.H{
		"email":    "nobody@example.com",
		"password": "correct horse",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "unknown email gets the same uniform denial")
}
