// Package experience provides the dashboard experience management handlers.
package experience

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	experiencecontroller "github.com/GoFolio/GoFolio/internal/db/controller/experience"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the experience list page.
	Path = "/dashboard/experience"

	// ListTemplateName is the name of the experience list template.
	ListTemplateName = "dashboard/experience"

	// FormTemplateName is the name of the experience form template.
	FormTemplateName = "dashboard/experience_form"

	// DateFormat is the expected format of the date form fields.
	DateFormat = "2006-01-02"
)

// Form carries the editable experience fields. Dates arrive as strings in
// DateFormat and are parsed by the handler.
type Form struct {
	Role         string `form:"role"         validate:"required,max=150"`
	Organization string `form:"organization" validate:"required,max=150"`
	Location     string `form:"location"     validate:"omitempty,max=150"`
	StartDate    string `form:"start_date"   validate:"required"`
	EndDate      string `form:"end_date"     validate:"omitempty"`
	IsCurrent    bool   `form:"is_current"`
	Description  string `form:"description"`
}

// Service is the dashboard experience handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the dashboard experience handler.
var Handler = Service{}

// Init initializes the dashboard experience handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Get(Path+"/add", s.GetAdd)
	app.Post(Path+"/add", s.PostAdd)
	app.Get(Path+"/:id/edit", s.GetEdit)
	app.Post(Path+"/:id/edit", s.PostEdit)
	app.Post(Path+"/:id/delete", s.Delete)
}

func (s *Service) nav(page, title string) *navigation.Context {
	nav := navigation.NewContext(title, "dashboard", page).
		AddBreadcrumb("Dashboard", "/dashboard", false)

	if page == "experience" {
		return nav.AddBreadcrumb("Experience", Path, true)
	}

	return nav.
		AddBreadcrumb("Experience", Path, false).
		AddBreadcrumb(title, "#", true)
}

// List handles the experience list page rendering.
func (s *Service) List(c *fiber.Ctx) error {
	entries, err := experiencecontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load experience entries")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load experience")
	}

	data := handler.SiteData(s.db, s.nav("experience", "Experience"))
	data["Experiences"] = entries

	return c.Render(ListTemplateName, data, handler.BaseLayout)
}

// GetAdd handles the empty experience form rendering.
func (s *Service) GetAdd(c *fiber.Ctx) error {
	data := handler.SiteData(s.db, s.nav("experience-add", "Add Experience"))
	data["Experience"] = &models.Experience{}

	return c.Render(FormTemplateName, data, handler.BaseLayout)
}

// PostAdd handles the new experience form submission.
func (s *Service) PostAdd(c *fiber.Ctx) error {
	return s.save(c, &models.Experience{}, "experience-add", "Add Experience")
}

// GetEdit handles the pre-filled experience form rendering.
func (s *Service) GetEdit(c *fiber.Ctx) error {
	entry, err := s.lookup(c)
	if err != nil {
		return s.lookupError(c, err)
	}

	data := handler.SiteData(s.db, s.nav("experience-edit", "Edit Experience"))
	data["Experience"] = entry

	return c.Render(FormTemplateName, data, handler.BaseLayout)
}

// PostEdit handles the edited experience form submission.
func (s *Service) PostEdit(c *fiber.Ctx) error {
	entry, err := s.lookup(c)
	if err != nil {
		return s.lookupError(c, err)
	}

	return s.save(c, entry, "experience-edit", "Edit Experience")
}

// Delete handles experience deletion.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := experiencecontroller.Delete(s.db, uint64(id)); err != nil {
		if errors.Is(err, experiencecontroller.ErrExperienceNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		log.Error().Err(err).Int("id", id).Msg("failed to delete experience")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete experience")
	}

	return c.Redirect(Path)
}

func (s *Service) lookup(c *fiber.Ctx) (*models.Experience, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, experiencecontroller.ErrExperienceNotFound
	}

	return experiencecontroller.GetByID(s.db, uint64(id))
}

func (s *Service) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, experiencecontroller.ErrExperienceNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}

	log.Error().Err(err).Msg("failed to load experience")

	return c.Status(fiber.StatusInternalServerError).SendString("Failed to load experience")
}

func (s *Service) save(c *fiber.Ctx, entry *models.Experience, page, title string) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse experience form")
		return s.renderError(c, entry, page, title, fiber.StatusBadRequest, "Invalid form data")
	}

	if err := s.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)

		errorMessages := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
		}

		return s.renderError(c, entry, page, title, fiber.StatusBadRequest, errorMessages)
	}

	startDate, err := time.Parse(DateFormat, form.StartDate)
	if err != nil {
		return s.renderError(c, entry, page, title, fiber.StatusBadRequest, "Invalid start date")
	}

	var endDate *time.Time

	if form.EndDate != "" {
		parsed, parseErr := time.Parse(DateFormat, form.EndDate)
		if parseErr != nil {
			return s.renderError(c, entry, page, title, fiber.StatusBadRequest, "Invalid end date")
		}

		endDate = &parsed
	}

	entry.Role = form.Role
	entry.Organization = form.Organization
	entry.Location = form.Location
	entry.StartDate = startDate
	entry.EndDate = endDate
	entry.IsCurrent = form.IsCurrent
	entry.Description = form.Description

	if err = experiencecontroller.Save(s.db, entry); err != nil {
		if errors.Is(err, models.ErrCurrentWithEndDate) || errors.Is(err, models.ErrEndBeforeStart) {
			return s.renderError(c, entry, page, title, fiber.StatusBadRequest, err.Error())
		}

		log.Error().Err(err).Msg("failed to save experience")

		return s.renderError(c, entry, page, title, fiber.StatusInternalServerError, "Failed to save experience")
	}

	return c.Redirect(Path)
}

func (s *Service) renderError(c *fiber.Ctx, entry *models.Experience, page, title string, status int, message any) error {
	data := handler.SiteData(s.db, s.nav(page, title))
	data["Experience"] = entry
	data["Error"] = message

	return c.Status(status).Render(FormTemplateName, data, handler.BaseLayout)
}
