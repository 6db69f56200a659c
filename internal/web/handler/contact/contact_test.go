package contact

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	messagecontroller "github.com/GoFolio/GoFolio/internal/db/controller/message"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/web/handler"
)

type recordingViews struct {
	lastData fiber.Map
}

func (v *recordingViews) Load() error { return nil }

func (v *recordingViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		v.lastData = m
	}

	_, _ = io.WriteString(w, name)

	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}, &models.ContactMessage{}))

	return db
}

func newApp(db *gorm.DB, views *recordingViews) *fiber.App {
	app := fiber.New(fiber.Config{Views: views})
	service := &Service{cfg: &config.Config{}, db: db, validator: validator.New()}
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, service.Get)
		router.Post(handler.RouterRootPath, service.Post)
	})

	return app
}

func postForm(t *testing.T, app *fiber.App, values url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestPost_StoresMessage(t *testing.T) {
	db := setupTestDB(t)
	views := &recordingViews{}
	app := newApp(db, views)

	resp := postForm(t, app, url.Values{
		"name":    {"Alice"},
		"email":   {"alice@example.com"},
		"subject": {"Hello"},
		"message": {"I would like to work with you."},
	})
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, views.lastData["Success"])

	messages, err := messagecontroller.GetAll(db)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Alice", messages[0].Name)
	assert.Equal(t, "alice@example.com", messages[0].Email)
	assert.False(t, messages[0].IsRead)
}

func TestPost_InvalidEmail(t *testing.T) {
	db := setupTestDB(t)
	views := &recordingViews{}
	app := newApp(db, views)

	resp := postForm(t, app, url.Values{
		"name":    {"Alice"},
		"email":   {"not-an-email"},
		"message": {"Hi"},
	})
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, views.lastData["Error"])

	messages, err := messagecontroller.GetAll(db)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestPost_MissingRequiredFields(t *testing.T) {
	db := setupTestDB(t)
	views := &recordingViews{}
	app := newApp(db, views)

	resp := postForm(t, app, url.Values{"subject": {"No body"}})
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	messages, err := messagecontroller.GetAll(db)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
