// Package sitesettings stores the site-wide settings record: the site title,
// the selected color theme and the per-page copy. The record is created once,
// edited through the dashboard and read on every page render.
package sitesettings

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/controller/setting"
	"github.com/GoFolio/GoFolio/internal/themes"
)

const (
	// SettingKeySiteSettings is the key used to store the site settings in the database.
	SettingKeySiteSettings = "site_settings"

	// DefaultSiteTitle is used whenever no site title has been configured.
	DefaultSiteTitle = "My Portfolio"
)

type (
	// Settings represents the persisted site configuration.
	Settings struct {
		SiteTitle string `form:"site_title" json:"siteTitle" validate:"omitempty,max=150"`

		// Theme must be one of the enumerated theme names.
		Theme string `form:"theme" json:"theme" validate:"omitempty,oneof=dark_red dark_blue dark_green dark_purple cyberpunk midnight crimson ocean forest monochrome"`

		// Optional per-site color overrides applied on top of the theme palette.
		PrimaryColor   string `form:"primary_color"   json:"primaryColor"   validate:"omitempty,hexcolor"`
		SecondaryColor string `form:"secondary_color" json:"secondaryColor" validate:"omitempty,hexcolor"`
		AccentColor    string `form:"accent_color"    json:"accentColor"    validate:"omitempty,hexcolor"`

		AboutPageTitle    string `form:"about_page_title"    json:"aboutPageTitle"    validate:"omitempty,max=200"`
		AboutPageSubtitle string `form:"about_page_subtitle" json:"aboutPageSubtitle" validate:"omitempty,max=200"`
		AboutPageContent  string `form:"about_page_content"  json:"aboutPageContent"`

		ExperiencePageTitle   string `form:"experience_page_title"   json:"experiencePageTitle" validate:"omitempty,max=200"`
		ExperiencePageContent string `form:"experience_page_content" json:"experiencePageContent"`

		ProjectsPageTitle   string `form:"projects_page_title"   json:"projectsPageTitle" validate:"omitempty,max=200"`
		ProjectsPageContent string `form:"projects_page_content" json:"projectsPageContent"`

		ContactPageTitle   string `form:"contact_page_title"   json:"contactPageTitle" validate:"omitempty,max=200"`
		ContactPageContent string `form:"contact_page_content" json:"contactPageContent"`
	}
)

// Load loads the site settings from the database and fills in defaults so
// that no defaulted field is empty at render time.
func (s *Settings) Load(db *gorm.DB) error {
	row, err := setting.Get(db, SettingKeySiteSettings)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(row.Value, s); err != nil {
		return err
	}

	s.ApplyDefaults()

	return nil
}

// Save saves the site settings to the database.
func (s *Settings) Save(db *gorm.DB) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	_, err = setting.Set(db, SettingKeySiteSettings, data)

	return err
}

// ApplyDefaults fills every empty defaulted field so templates never render
// an empty title or an unknown theme.
func (s *Settings) ApplyDefaults() {
	if s.SiteTitle == "" {
		s.SiteTitle = DefaultSiteTitle
	}

	if !themes.IsValid(s.Theme) {
		s.Theme = themes.DefaultName
	}

	if s.AboutPageTitle == "" {
		s.AboutPageTitle = "About Me"
	}

	if s.ExperiencePageTitle == "" {
		s.ExperiencePageTitle = "Experience"
	}

	if s.ProjectsPageTitle == "" {
		s.ProjectsPageTitle = "Projects"
	}

	if s.ContactPageTitle == "" {
		s.ContactPageTitle = "Get In Touch"
	}
}

// Palette resolves the selected theme (falling back to the default for
// unknown names) and applies the per-site color overrides.
func (s *Settings) Palette() themes.Palette {
	return themes.ByName(s.Theme).Palette.
		WithOverrides(s.PrimaryColor, s.SecondaryColor, s.AccentColor)
}

// LoadOrDefault returns the stored settings, or a defaulted record when none
// has been saved yet. Page renders use this so a fresh install works without
// a settings row. Any other load failure is logged before defaulting so a
// broken database does not pass silently.
func LoadOrDefault(db *gorm.DB) *Settings {
	s := &Settings{}

	err := s.Load(db)
	if err == nil {
		return s
	}

	if !errors.Is(err, setting.ErrSettingNotFound) {
		log.Error().Err(err).Msg("failed to load site settings, rendering defaults")
	}

	s = &Settings{}
	s.ApplyDefaults()

	return s
}
