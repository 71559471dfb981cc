package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"motomart-api/middleware"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	require.NoError(t, err)

	ac := NewAuthController(string(hash), "test-secret")

	r := gin.New()
	r.POST("/admin/login", ac.Login)

	protected := r.Group("/admin")
	protected.Use(middleware.AuthMiddleware("test-secret"))
	protected.GET("/check", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func postLogin(t *testing.T, r *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupAuthRouter(t)

	rec := postLogin(t, r, "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMissingPassword(t *testing.T) {
	r := setupAuthRouter(t)

	rec := postLogin(t, r, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginIssuesWorkingToken(t *testing.T) {
	r := setupAuthRouter(t)

	rec := postLogin(t, r, "open-sesame")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	req := httptest.NewRequest(http.MethodGet, "/admin/check", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	check := httptest.NewRecorder()
	r.ServeHTTP(check, req)
	assert.Equal(t, http.StatusOK, check.Code)
}

func TestProtectedRouteRejectsMissingToken(t *testing.T) {
	r := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/check", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRouteRejectsGarbageToken(t *testing.T) {
	r := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/check", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
