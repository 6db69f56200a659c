// Package projects provides the public project list and detail handlers.
package projects

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	projectcontroller "github.com/GoFolio/GoFolio/internal/db/controller/project"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the project list page.
	Path = handler.RootPath + "projects"

	// TemplateName is the name of the project list template.
	TemplateName = "projects"

	// DetailTemplateName is the name of the project detail template.
	DetailTemplateName = "project_detail"
)

// Service is the projects page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the projects page handler.
var Handler = Service{}

// Init initializes the projects page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
	app.Get(Path+"/:slug", s.GetDetail)
}

// Get handles the project list page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Projects", "public", "projects")

	data := handler.SiteData(s.db, nav)

	projects, err := projectcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load projects")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load projects")
	}

	data["Projects"] = projects

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// GetDetail handles a single project page, looked up by slug.
func (s *Service) GetDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	project, err := projectcontroller.GetBySlug(s.db, slug)
	if err != nil {
		if errors.Is(err, projectcontroller.ErrProjectNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		log.Error().Err(err).Str("slug", slug).Msg("failed to load project")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load project")
	}

	nav := navigation.NewContext(project.Title, "public", "projects").
		AddBreadcrumb("Projects", Path, false).
		AddBreadcrumb(project.Title, Path+"/"+project.Slug, true)

	data := handler.SiteData(s.db, nav)
	data["Project"] = project

	return c.Render(DetailTemplateName, data, handler.BaseLayout)
}
