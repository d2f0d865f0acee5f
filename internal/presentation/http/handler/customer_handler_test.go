package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/branchdesk/customer-intake/internal/application/service"
	"github.com/branchdesk/customer-intake/internal/domain/entity"
	"github.com/branchdesk/customer-intake/internal/domain/repository"
	"github.com/branchdesk/customer-intake/internal/presentation/http/handler"
	"github.com/branchdesk/customer-intake/internal/presentation/http/middleware"
	"github.com/branchdesk/customer-intake/internal/presentation/http/templates"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// --- Mock Repositories ---

type brokenCustomerRepo struct{}

var errStorageDown = errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")

func (m *brokenCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return errStorageDown
}

func (m *brokenCustomerRepo) Find(ctx context.Context, q repository.CustomerQuery) ([]entity.Customer, error) {
	return nil, errStorageDown
}

func (m *brokenCustomerRepo) Count(ctx context.Context) (int64, error) {
	return 0, errStorageDown
}

func newBrokenRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newBrokenRouterWithLogger(t, zap.NewNop())
}

func newBrokenRouterWithLogger(t *testing.T, log *zap.Logger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := templates.Load()
	require.NoError(t, err)

	h := handler.NewCustomerHandler(service.NewCustomerService(&brokenCustomerRepo{}), log)
	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(middleware.SessionMiddleware(middleware.NewCookieStore("test-secret", false), "intake_session"))
	router.POST("/submit", h.Submit)
	router.GET("/view", h.View)
	router.GET("/export", h.Export)
	router.GET("/export.xlsx", h.ExportXLSX)
	return router
}

func TestPersistenceFailureRendersErrorPage(t *testing.T) {
	router := newBrokenRouter(t)

	for _, target := range []string{"/view", "/view?q=ravi", "/export", "/export.xlsx"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code, target)
		assert.Contains(t, w.Body.String(), "Could not access customer records", target)
		assert.NotContains(t, w.Body.String(), "connection refused", target)
		assert.Empty(t, w.Header().Get("Content-Disposition"), target)
	}
}

func TestSubmitPersistenceFailure(t *testing.T) {
	router := newBrokenRouter(t)
	form := url.Values{"customer_mobile": {"9876543210"}}
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestPersistenceFailureLogsCause(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	router := newBrokenRouterWithLogger(t, zap.New(core))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/view", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	entries := logs.FilterMessage("customer records unavailable").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/view", entries[0].ContextMap()["path"])
	assert.Contains(t, entries[0].ContextMap()["error"], "connection refused")
}

func TestInvalidMobileIsNotLoggedAsFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	router := newBrokenRouterWithLogger(t, zap.New(core))
	form := url.Values{"customer_mobile": {"12-34"}}
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Zero(t, logs.Len())
}

func TestSubmitInvalidMobileNeverReachesStorage(t *testing.T) {
	router := newBrokenRouter(t)
	form := url.Values{"customer_mobile": {"12-34"}}
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestFlashHelpersWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handler.AddFlash(c, "ignored")
	assert.Nil(t, handler.PopFlashes(c))
	assert.Nil(t, handler.GetSession(c))
}
