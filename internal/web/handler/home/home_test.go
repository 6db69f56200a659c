package home

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/web/handler/media"
)

// recordingViews captures the bindings of the last render so tests can
// assert what the handler passed to the template.
type recordingViews struct {
	lastName string
	lastData fiber.Map
}

func (v *recordingViews) Load() error { return nil }

func (v *recordingViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	v.lastName = name
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
	require.NoError(t, db.AutoMigrate(
		&models.Setting{},
		&models.Profile{},
		&models.Project{},
		&models.Experience{},
		&models.Education{},
	))

	return db
}

func newService(db *gorm.DB, views *recordingViews) (*fiber.App, *Service) {
	app := fiber.New(fiber.Config{Views: views})
	service := &Service{cfg: &config.Config{}, db: db}
	app.Get(Path, service.Get)

	return app, service
}

func TestGet_WithCV_ResolvesDownloadLink(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Profile{
		FullName: "Jane Doe",
		Headline: "Engineer",
		Email:    "jane@example.com",
		CVFile:   "cv/resume.pdf",
	}).Error)

	views := &recordingViews{}
	app, _ := newService(db, views)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, TemplateName, views.lastName)
	assert.Equal(t, media.CVDownloadPath, views.lastData["CVDownloadURL"])
}

func TestGet_WithoutCV_NoDownloadLink(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Profile{
		FullName: "Jane Doe",
		Headline: "Engineer",
		Email:    "jane@example.com",
	}).Error)

	views := &recordingViews{}
	app, _ := newService(db, views)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	_, hasCV := views.lastData["CVDownloadURL"]
	assert.False(t, hasCV)
}

func TestGet_FeaturedProjectsOnly(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Profile{
		FullName: "Jane Doe",
		Headline: "Engineer",
		Email:    "jane@example.com",
	}).Error)
	require.NoError(t, db.Create(&models.Project{Title: "Plain", Slug: "plain", ShortDescription: "x"}).Error)
	require.NoError(t, db.Create(&models.Project{Title: "Starred", Slug: "starred", ShortDescription: "x", IsFeatured: true}).Error)

	views := &recordingViews{}
	app, _ := newService(db, views)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	featured, ok := views.lastData["FeaturedProjects"].([]models.Project)
	require.True(t, ok)
	require.Len(t, featured, 1)
	assert.Equal(t, "Starred", featured[0].Title)
}

func TestGet_MissingProfile_ReturnsError(t *testing.T) {
	db := setupTestDB(t)

	views := &recordingViews{}
	app, _ := newService(db, views)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
