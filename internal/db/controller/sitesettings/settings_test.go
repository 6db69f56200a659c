package sitesettings

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/controller/setting"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/themes"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	saved := &Settings{
		SiteTitle: "Dark Red Portfolio",
		Theme:     "dark_blue",
	}
	require.NoError(t, saved.Save(db))

	loaded := &Settings{}
	require.NoError(t, loaded.Load(db))

	assert.Equal(t, "Dark Red Portfolio", loaded.SiteTitle)
	assert.Equal(t, "dark_blue", loaded.Theme)
}

func TestLoadWithoutRecord(t *testing.T) {
	db := setupTestDB(t)

	s := &Settings{}
	assert.ErrorIs(t, s.Load(db), setting.ErrSettingNotFound)
}

func TestLoadAppliesDefaults(t *testing.T) {
	db := setupTestDB(t)

	// store a record with empty defaulted fields
	require.NoError(t, (&Settings{}).Save(db))

	loaded := &Settings{}
	require.NoError(t, loaded.Load(db))

	assert.Equal(t, DefaultSiteTitle, loaded.SiteTitle)
	assert.Equal(t, themes.DefaultName, loaded.Theme)
	assert.NotEmpty(t, loaded.AboutPageTitle)
	assert.NotEmpty(t, loaded.ExperiencePageTitle)
	assert.NotEmpty(t, loaded.ProjectsPageTitle)
	assert.NotEmpty(t, loaded.ContactPageTitle)
}

func TestLoadOrDefault(t *testing.T) {
	db := setupTestDB(t)

	// no record stored yet
	s := LoadOrDefault(db)
	assert.Equal(t, DefaultSiteTitle, s.SiteTitle)
	assert.Equal(t, themes.DefaultName, s.Theme)

	// stored record wins
	require.NoError(t, (&Settings{SiteTitle: "GoFolio", Theme: "ocean"}).Save(db))

	s = LoadOrDefault(db)
	assert.Equal(t, "GoFolio", s.SiteTitle)
	assert.Equal(t, "ocean", s.Theme)
}

func TestLoadSurfacesDBErrors(t *testing.T) {
	// a genuine database failure is not the same as a missing record
	err := (&Settings{}).Load(nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, setting.ErrSettingNotFound)
	assert.ErrorIs(t, err, setting.ErrDBNil)

	// LoadOrDefault still yields a renderable record on failure
	s := LoadOrDefault(nil)
	assert.Equal(t, DefaultSiteTitle, s.SiteTitle)
	assert.Equal(t, themes.DefaultName, s.Theme)
}

func TestPaletteResolution(t *testing.T) {
	s := &Settings{Theme: "cyberpunk"}

	palette := s.Palette()
	assert.Equal(t, "#00ff88", palette.Primary)
	assert.Equal(t, "#0a0a0a", palette.Bg0)

	// unknown theme falls back to the default palette
	s = &Settings{Theme: "nonexistent_theme"}
	assert.Equal(t, themes.ByName(themes.DefaultName).Palette, s.Palette())

	// per-site color overrides win over the theme palette
	s = &Settings{Theme: "cyberpunk", PrimaryColor: "#112233"}
	assert.Equal(t, "#112233", s.Palette().Primary)
	assert.Equal(t, "#0a0a0a", s.Palette().Bg0)
}
