// Package experience provides the public experience page handler.
package experience

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	experiencecontroller "github.com/GoFolio/GoFolio/internal/db/controller/experience"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the experience page.
	Path = handler.RootPath + "experience"

	// TemplateName is the name of the experience page template.
	TemplateName = "experience"
)

// Service is the experience page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the experience page handler.
var Handler = Service{}

// Init initializes the experience page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get handles the experience page rendering, ongoing roles first.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Experience", "public", "experience")

	data := handler.SiteData(s.db, nav)

	entries, err := experiencecontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load experience entries")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load experience")
	}

	data["Experiences"] = entries

	return c.Render(TemplateName, data, handler.BaseLayout)
}
