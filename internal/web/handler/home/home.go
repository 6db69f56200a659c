// Package home provides the public homepage handler.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	educationcontroller "github.com/GoFolio/GoFolio/internal/db/controller/education"
	experiencecontroller "github.com/GoFolio/GoFolio/internal/db/controller/experience"
	profilecontroller "github.com/GoFolio/GoFolio/internal/db/controller/profile"
	projectcontroller "github.com/GoFolio/GoFolio/internal/db/controller/project"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/handler/media"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the homepage.
	Path = handler.RootPath

	// TemplateName is the name of the homepage template.
	TemplateName = "home"
)

// Service is the homepage handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the homepage handler.
var Handler = Service{}

// Init initializes the homepage handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get handles the homepage rendering. The hero section shows the owner
// profile and, when a CV file reference is stored, its download link.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Home", "public", "home")

	data := handler.SiteData(s.db, nav)

	p, err := profilecontroller.Get(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load profile for homepage")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load profile")
	}

	data["Profile"] = p

	if p.HasCV() {
		data["CVDownloadURL"] = media.CVDownloadPath
	}

	featured, err := projectcontroller.GetFeatured(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load featured projects")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load projects")
	}

	data["FeaturedProjects"] = featured

	projects, err := projectcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load projects")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load projects")
	}

	data["Projects"] = projects

	experiences, err := experiencecontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load experiences")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load experiences")
	}

	data["Experiences"] = experiences

	educations, err := educationcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load educations")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load educations")
	}

	data["Educations"] = educations

	return c.Render(TemplateName, data, handler.BaseLayout)
}
