// Package dashboard provides the dashboard overview handler.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	messagecontroller "github.com/GoFolio/GoFolio/internal/db/controller/message"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"

	// RecentMessageCount is the number of latest messages shown on the overview.
	RecentMessageCount = 5
)

// Stats represents the entity counts shown on the overview.
type Stats struct {
	Projects    int64
	Experiences int64
	Educations  int64
	Messages    int64
	Unread      int64
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get handles the dashboard overview rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Dashboard", "dashboard", "overview").
		AddBreadcrumb("Home", Path, false).
		AddBreadcrumb("Dashboard", Path, true)

	stats, err := s.collectStats()
	if err != nil {
		log.Error().Err(err).Msg("failed to collect dashboard stats")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load dashboard")
	}

	messages, err := messagecontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load messages for dashboard")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load dashboard")
	}

	if len(messages) > RecentMessageCount {
		messages = messages[:RecentMessageCount]
	}

	data := handler.SiteData(s.db, nav)
	data["Stats"] = stats
	data["RecentMessages"] = messages

	return c.Render(TemplateName, data, handler.BaseLayout)
}

func (s *Service) collectStats() (*Stats, error) {
	stats := &Stats{}

	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.Project{}, &stats.Projects},
		{&models.Experience{}, &stats.Experiences},
		{&models.Education{}, &stats.Educations},
		{&models.ContactMessage{}, &stats.Messages},
	}

	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	unread, err := messagecontroller.CountUnread(s.db)
	if err != nil {
		return nil, err
	}

	stats.Unread = unread

	return stats, nil
}
