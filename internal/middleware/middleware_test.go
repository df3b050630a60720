package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/object_dto/internal/middleware"
	"github.com/SscSPs/object_dto/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret-key-that-is-long-enough"

type MiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	logs   *bytes.Buffer
}

func (suite *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(suite.logs, nil))

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(logger))
	protected := suite.router.Group("/", middleware.AuthMiddleware(testSecret))
	protected.GET("/whoami", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("handled")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
}

func (suite *MiddlewareTestSuite) do(authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MiddlewareTestSuite) TestValidToken() {
	token, _, err := utils.GenerateJWT("user-42", testSecret, time.Hour, "test")
	suite.Require().NoError(err)

	w := suite.do("Bearer " + token)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"userID":"user-42"}`, w.Body.String())
	suite.NotEmpty(w.Header().Get("X-Request-ID"))
	suite.Contains(suite.logs.String(), `"user_id":"user-42"`)
	suite.Contains(suite.logs.String(), `"msg":"Request completed"`)
}

func (suite *MiddlewareTestSuite) TestRejectedTokens() {
	expired, _, err := utils.GenerateJWT("user-42", testSecret, -time.Minute, "test")
	suite.Require().NoError(err)
	wrongKey, _, err := utils.GenerateJWT("user-42", "another-secret", time.Hour, "test")
	suite.Require().NoError(err)
	noSubject, _, err := utils.GenerateJWT("", testSecret, time.Hour, "test")
	suite.Require().NoError(err)

	tests := []struct {
		name    string
		header  string
		wantErr string
	}{
		{name: "missing header", header: "", wantErr: "Authorization header required"},
		{name: "wrong scheme", header: "Basic abc", wantErr: "Authorization header format must be Bearer {token}"},
		{name: "expired", header: "Bearer " + expired, wantErr: "Token has expired"},
		{name: "wrong key", header: "Bearer " + wrongKey, wantErr: "Invalid token"},
		{name: "no subject", header: "Bearer " + noSubject, wantErr: "Invalid token claims"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(tt.header)

			suite.Equal(http.StatusUnauthorized, w.Code)
			var body map[string]string
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
			suite.Equal(tt.wantErr, body["error"])
		})
	}
}

func (suite *MiddlewareTestSuite) TestRequestIDIsPropagated() {
	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal("req-123", w.Header().Get("X-Request-ID"))
	suite.Contains(suite.logs.String(), `"request_id":"req-123"`)
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := []int{}
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryLimiter_BadRate(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORS([]string{"http://localhost:3000"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req, _ = http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetLoggerFromCtx_Fallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(req.Context()))
}
