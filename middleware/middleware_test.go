package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"abc-retail/models"
	"abc-retail/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func TestFunctionKeyMiddleware(t *testing.T) {
	router := gin.New()
	router.POST("/fn", FunctionKeyMiddleware("s3cret"), okHandler)

	tests := []struct {
		name   string
		target string
		header string
		status int
	}{
		{"missing key", "/fn", "", http.StatusUnauthorized},
		{"wrong key", "/fn", "nope", http.StatusUnauthorized},
		{"header key", "/fn", "s3cret", http.StatusOK},
		{"query key", "/fn?code=s3cret", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(FunctionKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestFunctionKeyMiddlewareDisabledWithoutKey(t *testing.T) {
	router := gin.New()
	router.POST("/fn", FunctionKeyMiddleware(""), okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/fn", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionMiddlewareKeepsSessionID(t *testing.T) {
	store := NewCookieStore("test-secret", time.Minute, false)
	router := gin.New()
	router.GET("/sid", SessionMiddleware(store), func(c *gin.Context) {
		c.String(http.StatusOK, SessionID(c))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sid", nil))
	first := w.Body.String()
	require.NotEmpty(t, first)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/sid", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, first, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sid", nil))
	assert.NotEqual(t, first, w.Body.String())
}

func TestAuthMiddlewareAdmitsEmployeeTokens(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	router := gin.New()
	router.GET("/admin", AuthMiddleware(tokens), EmployeeMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextEmployeeEmail))
	})

	employee, err := tokens.GenerateToken("emp001", "john@abc.com", models.RoleEmployee)
	require.NoError(t, err)
	manager, err := tokens.GenerateToken("emp004", "kim@abc.com", "Manager")
	require.NoError(t, err)
	anonymous, err := tokens.GenerateToken("", "ghost@abc.com", models.RoleEmployee)
	require.NoError(t, err)
	foreign, err := utils.NewTokenIssuer("other-secret", time.Hour).GenerateToken("emp001", "john@abc.com", models.RoleEmployee)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"foreign signature", "Bearer " + foreign, http.StatusUnauthorized},
		{"no employee id", "Bearer " + anonymous, http.StatusForbidden},
		{"other role", "Bearer " + manager, http.StatusOK},
		{"employee", "Bearer " + employee, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
