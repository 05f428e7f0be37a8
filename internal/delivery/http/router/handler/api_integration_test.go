package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rolodex/config"
	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/router"
	"rolodex/internal/delivery/http/router/handler"
	httpvalidator "rolodex/internal/delivery/http/validator"
	infraauth "rolodex/internal/infra/auth"
	"rolodex/internal/infra/persistence/memory"
	"rolodex/internal/infra/validation"
	"rolodex/internal/usecase"
	"rolodex/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// webResponse mirrors the response envelope for decoding in tests.
type webResponse struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Paging  *usecase.Paging `json:"paging"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

// newTestServer wires the whole HTTP surface against the in-memory store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validatorSvc := validation.New()

	cfg := &config.Config{}
	cfg.Auth.BcryptCost = bcrypt.MinCost

	txManager := memory.NewTransactionManager(store)
	userRepo := memory.NewUserRepository(store)
	contactRepo := memory.NewContactRepository(store)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		Hasher:      infraauth.NewBcryptHasher(cfg),
		TokenSource: infraauth.NewUUIDTokenSource(),
		Validator:   validatorSvc,
		Config:      cfg,
		Logger:      logger,
	})
	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    infraauth.NewBcryptHasher(cfg),
		Validator: validatorSvc,
		Logger:    logger,
	})
	contactUC := impl.NewContactService(impl.ContactServiceParams{
		ContactRepo: contactRepo,
		Validator:   validatorSvc,
		Logger:      logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpvalidator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC, logger),
		UserHandler:    handler.NewUserHandler(userUC, logger),
		ContactHandler: handler.NewContactHandler(contactUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(authUC),
	})
	r.RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(middleware.HeaderXApiToken, token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) webResponse {
	t.Helper()

	var resp webResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func loginToken(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/api/auth/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var data usecase.TokenOutput
	resp := decodeResponse(t, rec)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)

	return data.Token
}

func TestAPI_RegisterAndLoginFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/users/register", "",
		`{"username":"john","password":"rahasia","name":"John Doe"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/users/register", "",
		`{"username":"john","password":"lain","name":"Imposter"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/users/register", "",
		`{"username":"","password":"","name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/login", "",
		`{"username":"john","password":"salah"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Invalid username or password", resp.Message)

	rec = doJSON(e, http.MethodPost, "/api/auth/login", "",
		`{"username":"ghost","password":"rahasia"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	ghostResp := decodeResponse(t, rec)
	assert.Equal(t, resp.Message, ghostResp.Message)

	token := loginToken(t, e, "john", "rahasia")

	rec = doJSON(e, http.MethodGet, "/api/users/current", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile usecase.UserOutput
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &profile))
	assert.Equal(t, "john", profile.Username)
	assert.Equal(t, "John Doe", profile.Name)

	rec = doJSON(e, http.MethodGet, "/api/users/current", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/users/current", "wrong-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_UpdateCurrentUser(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/users/register", "",
		`{"username":"john","password":"rahasia","name":"John Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	token := loginToken(t, e, "john", "rahasia")

	rec = doJSON(e, http.MethodPatch, "/api/users/current", token, `{"name":"Johnny"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile usecase.UserOutput
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &profile))
	assert.Equal(t, "Johnny", profile.Name)

	rec = doJSON(e, http.MethodPatch, "/api/users/current", token, `{"password":"baru"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// The old password stops working, the new one logs in.
	rec = doJSON(e, http.MethodPost, "/api/auth/login", "",
		`{"username":"john","password":"rahasia"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	loginToken(t, e, "john", "baru")
}

func TestAPI_ContactLifecycle(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/users/register", "",
		`{"username":"john","password":"rahasia","name":"John Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	token := loginToken(t, e, "john", "rahasia")

	rec = doJSON(e, http.MethodPost, "/api/contacts", token,
		`{"firstName":"Eko","lastName":"Khannedy","email":"eko@example.com","phone":"0812345"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created usecase.ContactOutput
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &created))
	require.NotEmpty(t, created.ID)

	rec = doJSON(e, http.MethodPost, "/api/contacts", token,
		`{"firstName":"Eko","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/contacts/"+created.ID, token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got usecase.ContactOutput
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &got))
	assert.Equal(t, created, got)

	rec = doJSON(e, http.MethodPut, "/api/contacts/"+created.ID, token,
		`{"firstName":"Budi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated usecase.ContactOutput
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &updated))
	assert.Equal(t, "Budi", updated.FirstName)
	assert.Empty(t, updated.LastName, "update replaces every field")

	rec = doJSON(e, http.MethodDelete, "/api/contacts/"+created.ID, token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/contacts/"+created.ID, token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_EmptyBodyRequestsAreRejected(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/users/register", "",
		`{"username":"john","password":"rahasia","name":"John Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	token := loginToken(t, e, "john", "rahasia")

	rec = doJSON(e, http.MethodPost, "/api/contacts", token, `{"firstName":"Eko","lastName":"Khannedy"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created usecase.ContactOutput
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &created))

	// An update without a body must fail validation, not crash the handler.
	rec = doJSON(e, http.MethodPut, "/api/contacts/"+created.ID, token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The contact is untouched by the rejected update.
	rec = doJSON(e, http.MethodGet, "/api/contacts/"+created.ID, token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got usecase.ContactOutput
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &got))
	assert.Equal(t, "Eko", got.FirstName)
	assert.Equal(t, "Khannedy", got.LastName)

	rec = doJSON(e, http.MethodPost, "/api/auth/login", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/contacts", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/users/register", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_ContactIsInvisibleToOtherUsers(t *testing.T) {
	e := newTestServer(t)

	for _, body := range []string{
		`{"username":"john","password":"rahasia","name":"John Doe"}`,
		`{"username":"jane","password":"rahasia","name":"Jane Doe"}`,
	} {
		rec := doJSON(e, http.MethodPost, "/api/users/register", "", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	johnToken := loginToken(t, e, "john", "rahasia")
	janeToken := loginToken(t, e, "jane", "rahasia")

	rec := doJSON(e, http.MethodPost, "/api/contacts", johnToken, `{"firstName":"Eko"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created usecase.ContactOutput
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data, &created))

	rec = doJSON(e, http.MethodGet, "/api/contacts/"+created.ID, janeToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/contacts/"+created.ID, janeToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/contacts/"+created.ID, johnToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_SearchContacts(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/users/register", "",
		`{"username":"john","password":"rahasia","name":"John Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	token := loginToken(t, e, "john", "rahasia")

	for _, body := range []string{
		`{"firstName":"John","lastName":"Doe"}`,
		`{"firstName":"Bob","lastName":"Jones"}`,
		`{"firstName":"Alice","lastName":"Smith"}`,
	} {
		rec := doJSON(e, http.MethodPost, "/api/contacts", token, body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/contacts?name=jo", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	var contacts []usecase.ContactOutput
	require.NoError(t, json.Unmarshal(resp.Data, &contacts))
	require.Len(t, contacts, 2)
	require.NotNil(t, resp.Paging)
	assert.Equal(t, 0, resp.Paging.CurrentPage)
	assert.Equal(t, 1, resp.Paging.TotalPages)
	assert.Equal(t, 10, resp.Paging.Size, "size defaults to 10")

	rec = doJSON(e, http.MethodGet, "/api/contacts?email=missing@example.com", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeResponse(t, rec)
	require.NoError(t, json.Unmarshal(resp.Data, &contacts))
	assert.Empty(t, contacts)
	assert.Equal(t, 0, resp.Paging.TotalPages)

	rec = doJSON(e, http.MethodGet, "/api/contacts?page=abc", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/contacts?size=0", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_LogoutInvalidatesToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/users/register", "",
		`{"username":"john","password":"rahasia","name":"John Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	token := loginToken(t, e, "john", "rahasia")

	rec = doJSON(e, http.MethodDelete, "/api/auth/logout", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/users/current", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/auth/logout", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "a cleared token no longer authenticates")
}
