package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/object_dto/internal/adapters/database/memory"
	"github.com/SscSPs/object_dto/internal/core/services"
	"github.com/SscSPs/object_dto/internal/dto"
	"github.com/SscSPs/object_dto/internal/handlers"
	"github.com/SscSPs/object_dto/internal/platform/config"
	"github.com/SscSPs/object_dto/pkg/objectdto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInMemoryAPI(t *testing.T, mapper *objectdto.Mapper) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:         "e2e-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "object-dto",
		LoginRateLimit:    "5-M",
		IsProduction:      true,
	}
	r := gin.New()
	container := services.NewServiceContainer(memory.NewRepositoryProvider())
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container, mapper))
	return r
}

func call(t *testing.T, r *gin.Engine, method, url, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInMemoryAPI_RegisterLoginAndAccounts(t *testing.T) {
	r := newInMemoryAPI(t, objectdto.New(objectdto.WithSink(objectdto.Discard)))

	w := call(t, r, http.MethodPost, "/api/v1/auth/register", "",
		`{"data": {"name": "Ann Lee", "username": "ann", "password": "s3cret"}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var registered map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	userID := registered["userID"].(string)

	w = call(t, r, http.MethodPost, "/api/v1/auth/register", "",
		`{"data": {"name": "Imposter", "username": "ann", "password": "x"}}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(t, r, http.MethodPost, "/api/v1/auth/login", "",
		`{"data": {"username": "ann", "password": "s3cret"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = call(t, r, http.MethodPost, "/api/v1/accounts", login.Token,
		`{"data": {"name": "Wallet", "accountType": "ASSET", "currencyCode": "usd", "openingBalance": "10.50"}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var account map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))
	assert.Equal(t, "USD", account["currencyCode"])
	assert.Equal(t, "10.5", account["balance"])

	w = call(t, r, http.MethodGet, "/api/v1/accounts/"+account["accountID"].(string), login.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, mustJSON(t, account), w.Body.String())

	w = call(t, r, http.MethodGet, "/api/v1/accounts", login.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Accounts []map[string]any `json:"accounts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Accounts, 1)

	w = call(t, r, http.MethodDelete, "/api/v1/users/"+userID, login.Token, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = call(t, r, http.MethodGet, "/api/v1/users/"+userID, login.Token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInMemoryAPI_AcceptZeroValues(t *testing.T) {
	strict := newInMemoryAPI(t, objectdto.New(objectdto.WithSink(objectdto.Discard)))
	relaxed := newInMemoryAPI(t, objectdto.New(objectdto.WithSink(objectdto.Discard), objectdto.WithAcceptZeroValues()))

	for name, r := range map[string]*gin.Engine{"strict": strict, "relaxed": relaxed} {
		w := call(t, r, http.MethodPost, "/api/v1/auth/register", "",
			`{"data": {"name": "Bob", "username": "bob", "password": "pw"}}`)
		require.Equal(t, http.StatusCreated, w.Code, name)
	}

	login := func(r *gin.Engine) string {
		w := call(t, r, http.MethodPost, "/api/v1/auth/login", "", `{"data": {"username": "bob", "password": "pw"}}`)
		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Token
	}
	body := `{"data": {"name": "Empty", "accountType": "EQUITY", "currencyCode": "EUR", "openingBalance": 0}}`

	w := call(t, strict, http.MethodPost, "/api/v1/accounts", login(strict), body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, relaxed, http.MethodPost, "/api/v1/accounts", login(relaxed), body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
