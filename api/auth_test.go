package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wellness/config"
	"wellness/database"
	"wellness/history"
	"wellness/middleware"
	"wellness/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var userColumns = []string{"id", "username", "password", "email", "status", "created_at", "updated_at", "deleted_at"}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setupTestConfig() (*config.Config, func()) {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	return cfg, func() { config.GlobalConfig = nil }
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	// 检查用户名不存在：SELECT 返回无记录
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("newuser").
		WillReturnRows(sqlmock.NewRows([]string{}))

	// GORM Create 使用事务
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(cfg, history.NewStore(history.DefaultCapacity))
	router.POST("/register", h.Register)

	w := postJSON(router, "/register", `{"username":"newuser","password":"password123","email":"test@example.com"}`)

	assert.Equal(t, 200, w.Code)
	resp := decode(t, w)
	assert.Equal(t, float64(200), resp["code"])
	assert.Equal(t, "注册成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.UserStatusActive, data["status"])
	assert.NotContains(t, data, "password")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_UsernameExists(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("existinguser").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "existinguser", "hash", "e@x.com", models.UserStatusActive, time.Now(), time.Now(), nil))

	router := gin.New()
	h := NewAuthHandler(cfg, history.NewStore(history.DefaultCapacity))
	router.POST("/register", h.Register)

	w := postJSON(router, "/register", `{"username":"existinguser","password":"password123"}`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "用户名已存在", decode(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	cfg, reset := setupTestConfig()
	defer reset()

	router := gin.New()
	router.POST("/register", NewAuthHandler(cfg, history.NewStore(history.DefaultCapacity)).Register)

	w := postJSON(router, "/register", `{"username":"ab","password":"123"}`)
	assert.Equal(t, 400, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// SELECT 用户（username OR email）
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("loginuser", "loginuser").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "loginuser", string(hashed), "login@x.com", models.UserStatusActive, time.Now(), time.Now(), nil))

	router := gin.New()
	h := NewAuthHandler(cfg, history.NewStore(history.DefaultCapacity))
	router.POST("/login", h.Login)

	w := postJSON(router, "/login", `{"username":"loginuser","password":"password123"}`)

	assert.Equal(t, 200, w.Code)
	resp := decode(t, w)
	assert.Equal(t, float64(200), resp["code"])
	data := resp["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)

	claims, err := middleware.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_MergesAnonymousHistory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("erin", "erin").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(5, "erin", string(hashed), "", models.UserStatusActive, time.Now(), time.Now(), nil))

	store := history.NewStore(history.DefaultCapacity)
	anonKey := "anon:" + testSessionID
	store.Append(anonKey, history.Entry{Date: "2024-01-14", Score: 61})
	store.Append(anonKey, history.Entry{Date: "2024-01-15", Score: 66})

	h := NewAuthHandler(cfg, store)
	h.now = func() time.Time { return time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC) }
	router := gin.New()
	router.POST("/login", h.Login)

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{"username":"erin","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: testSessionID})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["history_count"])
	assert.Equal(t, "2024-01-15T10:00:00Z", data["expires_at"])

	assert.Empty(t, store.Entries(anonKey))
	merged := store.Entries(middleware.UserSessionKey(5))
	require.Len(t, merged, 2)
	assert.Equal(t, 66, merged[1].Score)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("loginuser", "loginuser").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "loginuser", string(hashed), "", models.UserStatusActive, time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg, history.NewStore(history.DefaultCapacity)).Login)

	w := postJSON(router, "/login", `{"username":"loginuser","password":"wrong-password"}`)
	assert.Equal(t, 401, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_Locked(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("locked", "locked").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(2, "locked", "hash", "", models.UserStatusLocked, time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg, history.NewStore(history.DefaultCapacity)).Login)

	w := postJSON(router, "/login", `{"username":"locked","password":"password123"}`)
	assert.Equal(t, 403, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("nouser", "nouser").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	h := NewAuthHandler(cfg, history.NewStore(history.DefaultCapacity))
	router.POST("/login", h.Login)

	w := postJSON(router, "/login", `{"username":"nouser","password":"any"}`)

	assert.Equal(t, 401, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_GetProfile(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "carol", "hash", "carol@x.com", models.UserStatusActive, time.Now(), time.Now(), nil))

	router := gin.New()
	router.GET("/profile", func(c *gin.Context) {
		c.Set("userID", uint(3))
		c.Next()
	}, NewAuthHandler(cfg, history.NewStore(history.DefaultCapacity)).GetProfile)

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "carol", data["user"].(map[string]interface{})["username"])
	assert.Equal(t, float64(0), data["history_count"])
	assert.NotContains(t, data, "latest_score")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpassword123"), bcrypt.DefaultCost)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "carol", string(hashed), "", models.UserStatusActive, time.Now(), time.Now(), nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.PUT("/password", func(c *gin.Context) {
		c.Set("userID", uint(3))
		c.Next()
	}, NewAuthHandler(cfg, history.NewStore(history.DefaultCapacity)).ChangePassword)

	req := httptest.NewRequest("PUT", "/password", bytes.NewBufferString(`{"old_password":"oldpassword123","new_password":"newpassword123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_GetProfile_WithHistory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()
	cfg.Email.Enabled = true

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "carol", "hash", "carol@x.com", models.UserStatusActive, time.Now(), time.Now(), nil))

	store := history.NewStore(history.DefaultCapacity)
	store.Append(middleware.UserSessionKey(3), history.Entry{Date: "2024-01-14", Score: 58})
	store.Append(middleware.UserSessionKey(3), history.Entry{Date: "2024-01-15", Score: 72})

	router := gin.New()
	router.GET("/profile", func(c *gin.Context) {
		c.Set("userID", uint(3))
		c.Next()
	}, NewAuthHandler(cfg, store).GetProfile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/profile", nil))

	require.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["history_count"])
	assert.Equal(t, "2024-01-15", data["latest_date"])
	assert.Equal(t, float64(72), data["latest_score"])
	assert.Equal(t, true, data["email_enabled"])
	require.NoError(t, mock.ExpectationsWereMet())
}
