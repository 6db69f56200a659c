// Package about provides the public about page handler.
package about

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	educationcontroller "github.com/GoFolio/GoFolio/internal/db/controller/education"
	profilecontroller "github.com/GoFolio/GoFolio/internal/db/controller/profile"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the about page.
	Path = handler.RootPath + "about"

	// TemplateName is the name of the about page template.
	TemplateName = "about"
)

// Service is the about page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the about page handler.
var Handler = Service{}

// Init initializes the about page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get handles the about page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("About", "public", "about")

	data := handler.SiteData(s.db, nav)

	p, err := profilecontroller.Get(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load profile for about page")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load profile")
	}

	data["Profile"] = p
	data["SkillList"] = splitSkills(p.Skills)

	educations, err := educationcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load education entries")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load education")
	}

	data["Educations"] = educations

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// splitSkills turns the comma separated skills field into a clean list.
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
