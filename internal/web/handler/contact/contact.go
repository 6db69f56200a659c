// Package contact provides the public contact page: the form and the
// submission endpoint that stores a message for the dashboard inbox.
package contact

import (
	"errors"

	"github.com/go-playground/validator/v10"
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
	// Path is the path to the contact page.
	Path = handler.RootPath + "contact"

	// TemplateName is the name of the contact page template.
	TemplateName = "contact"
)

// Form is the contact form payload.
type Form struct {
	Name    string `form:"name"    validate:"required,max=100"`
	Email   string `form:"email"   validate:"required,email,max=255"`
	Subject string `form:"subject" validate:"omitempty,max=200"`
	Message string `form:"message" validate:"required,max=5000"`
}

// Service is the contact page handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the contact page handler.
var Handler = Service{}

// Init initializes the contact page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})
}

// Get handles the contact page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Contact", "public", "contact")

	return c.Render(TemplateName, handler.SiteData(s.db, nav), handler.BaseLayout)
}

// Post handles the contact form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	nav := navigation.NewContext("Contact", "public", "contact")

	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse contact form")

		data := handler.SiteData(s.db, nav)
		data["Error"] = "Invalid form data"

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, data, handler.BaseLayout)
	}

	if err := s.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)

		errorMessages := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
		}

		data := handler.SiteData(s.db, nav)
		data["Error"] = errorMessages
		data["Form"] = form

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, data, handler.BaseLayout)
	}

	msg := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	}

	if err := messagecontroller.Create(s.db, msg); err != nil {
		log.Error().Err(err).Msg("failed to store contact message")

		data := handler.SiteData(s.db, nav)
		data["Error"] = "Failed to send message, please try again later"
		data["Form"] = form

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, data, handler.BaseLayout)
	}

	log.Info().Str("email", form.Email).Msg("contact message received")

	data := handler.SiteData(s.db, nav)
	data["Success"] = "Thanks for reaching out! I will get back to you soon."

	return c.Render(TemplateName, data, handler.BaseLayout)
}
