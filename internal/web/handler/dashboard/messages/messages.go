// Package messages provides the dashboard contact message inbox handlers.
package messages

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	messagecontroller "github.com/GoFolio/GoFolio/internal/db/controller/message"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the message inbox page.
	Path = "/dashboard/messages"

	// ListTemplateName is the name of the message inbox template.
	ListTemplateName = "dashboard/messages"

	// DetailTemplateName is the name of the message detail template.
	DetailTemplateName = "dashboard/message_detail"
)

// Service is the dashboard messages handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard messages handler.
var Handler = Service{}

// Init initializes the dashboard messages handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.GetDetail)
	app.Post(Path+"/:id/delete", s.Delete)
}

// List handles the message inbox rendering.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Messages", "dashboard", "messages").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Messages", Path, true)

	messages, err := messagecontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load messages")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load messages")
	}

	unread, err := messagecontroller.CountUnread(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread messages")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load messages")
	}

	data := handler.SiteData(s.db, nav)
	data["Messages"] = messages
	data["UnreadCount"] = unread

	return c.Render(ListTemplateName, data, handler.BaseLayout)
}

// GetDetail handles a single message view. Opening a message marks it read.
func (s *Service) GetDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}

	msg, err := messagecontroller.GetByID(s.db, uint64(id))
	if err != nil {
		if errors.Is(err, messagecontroller.ErrMessageNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		log.Error().Err(err).Int("id", id).Msg("failed to load message")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load message")
	}

	if !msg.IsRead {
		if err = messagecontroller.MarkRead(s.db, msg.ID); err != nil {
			log.Error().Err(err).Int("id", id).Msg("failed to mark message read")
		} else {
			msg.IsRead = true
		}
	}

	nav := navigation.NewContext("Message", "dashboard", "messages").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Messages", Path, false).
		AddBreadcrumb(msg.Subject, "#", true)

	data := handler.SiteData(s.db, nav)
	data["Message"] = msg

	return c.Render(DetailTemplateName, data, handler.BaseLayout)
}

// Delete handles message deletion.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := messagecontroller.Delete(s.db, uint64(id)); err != nil {
		if errors.Is(err, messagecontroller.ErrMessageNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		log.Error().Err(err).Int("id", id).Msg("failed to delete message")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete message")
	}

	return c.Redirect(Path)
}
