package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/mock"
	"github.com/akarpov/go-dash-sync/internal/service"
	"github.com/akarpov/go-dash-sync/internal/store"
	"github.com/akarpov/go-dash-sync/models"
)

type handlerMocks struct {
	auth      *mock.MockAuthService
	viewState *mock.MockViewStateService
	activity  *mock.MockActivityService
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		auth:      mock.NewMockAuthService(ctrl),
		viewState: mock.NewMockViewStateService(ctrl),
		activity:  mock.NewMockActivityService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:      mocks.auth,
		ViewStateService: mocks.viewState,
		ActivityService:  mocks.activity,
	}, logger.Nop())

	return h, mocks
}

func TestRegister_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		RegisterUser(gomock.Any(), models.User{Login: "alice", Password: "secret"}).
		Return(models.User{UserID: 1, Login: "alice"}, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), models.User{UserID: 1, Login: "alice"}).
		Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"alice","password":"secret"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))
}

func TestRegister_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_LoginTaken(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"alice","password":"secret"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"alice"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		Login(gomock.Any(), models.User{Login: "alice", Password: "secret"}).
		Return(models.User{UserID: 7, Login: "alice"}, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), models.User{UserID: 7, Login: "alice"}).
		Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"alice","password":"secret"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"alice","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
