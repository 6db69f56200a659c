// Package sitesettings provides the dashboard site settings form: the site
// title, the theme selection and the per-page copy.
package sitesettings

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/controller/setting"
	controller "github.com/GoFolio/GoFolio/internal/db/controller/sitesettings"
	"github.com/GoFolio/GoFolio/internal/themes"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the site settings page.
	Path = "/dashboard/site-settings"

	// TemplateName is the name of the site settings template.
	TemplateName = "dashboard/site_settings"
)

// Service is the site settings handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the site settings handler.
var Handler = Service{}

// Init initializes the site settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

func (s *Service) nav() *navigation.Context {
	return navigation.NewContext("Site Settings", "dashboard", "site-settings").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Site Settings", Path, true)
}

// Get handles the site settings page rendering. Empty stored fields are
// shown with their defaults filled in so the form never renders blank.
func (s *Service) Get(c *fiber.Ctx) error {
	settings := &controller.Settings{}
	if err := settings.Load(s.db); err != nil {
		// If settings don't exist yet, render form with defaulted values
		if errors.Is(err, setting.ErrSettingNotFound) {
			log.Debug().Msg("site settings not found, rendering defaulted form")

			settings.ApplyDefaults()

			return s.render(c, settings)
		}

		log.Error().Err(err).Msg("failed to load site settings")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
	}

	return s.render(c, settings)
}

// Post handles the site settings form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	settings := &controller.Settings{}
	if err := c.BodyParser(settings); err != nil {
		log.Error().Err(err).Msg("failed to parse site settings form")

		return s.renderError(c, settings, fiber.StatusBadRequest, "Invalid form data")
	}

	if err := s.validator.Struct(settings); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)

		errorMessages := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
		}

		log.Error().Err(err).Msg("validation failed for site settings")

		return s.renderError(c, settings, fiber.StatusBadRequest, errorMessages)
	}

	if err := settings.Save(s.db); err != nil {
		log.Error().Err(err).Msg("failed to save site settings")

		return s.renderError(c, settings, fiber.StatusInternalServerError, "Failed to save settings")
	}

	log.Info().Str("theme", settings.Theme).Msg("site settings saved")

	settings.ApplyDefaults()

	data := s.bindings(settings)
	data["Success"] = "Settings saved"

	return c.Render(TemplateName, data, handler.BaseLayout)
}

func (s *Service) render(c *fiber.Ctx, settings *controller.Settings) error {
	return c.Render(TemplateName, s.bindings(settings), handler.BaseLayout)
}

func (s *Service) renderError(c *fiber.Ctx, settings *controller.Settings, status int, message any) error {
	data := s.bindings(settings)
	data["Error"] = message

	return c.Status(status).Render(TemplateName, data, handler.BaseLayout)
}

// bindings builds the form bindings: the settings under edit, the theme
// catalogue for the select box and the resolved palette for the preview.
func (s *Service) bindings(settings *controller.Settings) fiber.Map {
	data := handler.SiteData(s.db, s.nav())
	data["FormSettings"] = settings
	data["Themes"] = themes.All()
	data["PreviewCSS"] = settings.Palette().CSS(".theme-preview")

	return data
}
