// Package education provides the dashboard education management handlers.
package education

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	educationcontroller "github.com/GoFolio/GoFolio/internal/db/controller/education"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the education list page.
	Path = "/dashboard/education"

	// ListTemplateName is the name of the education list template.
	ListTemplateName = "dashboard/education"

	// FormTemplateName is the name of the education form template.
	FormTemplateName = "dashboard/education_form"
)

// Form carries the editable education fields. EndYear of zero means the
// program is still running.
type Form struct {
	Institution  string `form:"institution"    validate:"required,max=150"`
	Degree       string `form:"degree"         validate:"required,max=150"`
	FieldOfStudy string `form:"field_of_study" validate:"omitempty,max=150"`
	StartYear    uint   `form:"start_year"     validate:"required,min=1900,max=2100"`
	EndYear      uint   `form:"end_year"       validate:"omitempty,min=1900,max=2100"`
	ResultOrCGPA string `form:"result_or_cgpa" validate:"omitempty,max=50"`
	Description  string `form:"description"`
}

// Service is the dashboard education handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the dashboard education handler.
var Handler = Service{}

// Init initializes the dashboard education handler.
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

	if page == "education" {
		return nav.AddBreadcrumb("Education", Path, true)
	}

	return nav.
		AddBreadcrumb("Education", Path, false).
		AddBreadcrumb(title, "#", true)
}

// List handles the education list page rendering.
func (s *Service) List(c *fiber.Ctx) error {
	entries, err := educationcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load education entries")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load education")
	}

	data := handler.SiteData(s.db, s.nav("education", "Education"))
	data["Educations"] = entries

	return c.Render(ListTemplateName, data, handler.BaseLayout)
}

// GetAdd handles the empty education form rendering.
func (s *Service) GetAdd(c *fiber.Ctx) error {
	data := handler.SiteData(s.db, s.nav("education-add", "Add Education"))
	data["Education"] = &models.Education{}

	return c.Render(FormTemplateName, data, handler.BaseLayout)
}

// PostAdd handles the new education form submission.
func (s *Service) PostAdd(c *fiber.Ctx) error {
	return s.save(c, &models.Education{}, "education-add", "Add Education")
}

// GetEdit handles the pre-filled education form rendering.
func (s *Service) GetEdit(c *fiber.Ctx) error {
	entry, err := s.lookup(c)
	if err != nil {
		return s.lookupError(c, err)
	}

	data := handler.SiteData(s.db, s.nav("education-edit", "Edit Education"))
	data["Education"] = entry

	return c.Render(FormTemplateName, data, handler.BaseLayout)
}

// PostEdit handles the edited education form submission.
func (s *Service) PostEdit(c *fiber.Ctx) error {
	entry, err := s.lookup(c)
	if err != nil {
		return s.lookupError(c, err)
	}

	return s.save(c, entry, "education-edit", "Edit Education")
}

// Delete handles education deletion.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := educationcontroller.Delete(s.db, uint64(id)); err != nil {
		if errors.Is(err, educationcontroller.ErrEducationNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		log.Error().Err(err).Int("id", id).Msg("failed to delete education")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete education")
	}

	return c.Redirect(Path)
}

func (s *Service) lookup(c *fiber.Ctx) (*models.Education, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, educationcontroller.ErrEducationNotFound
	}

	return educationcontroller.GetByID(s.db, uint64(id))
}

func (s *Service) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, educationcontroller.ErrEducationNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}

	log.Error().Err(err).Msg("failed to load education")

	return c.Status(fiber.StatusInternalServerError).SendString("Failed to load education")
}

func (s *Service) save(c *fiber.Ctx, entry *models.Education, page, title string) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse education form")
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

	entry.Institution = form.Institution
	entry.Degree = form.Degree
	entry.FieldOfStudy = form.FieldOfStudy
	entry.StartYear = form.StartYear
	entry.ResultOrCGPA = form.ResultOrCGPA
	entry.Description = form.Description

	if form.EndYear > 0 {
		endYear := form.EndYear
		entry.EndYear = &endYear
	} else {
		entry.EndYear = nil
	}

	if err := educationcontroller.Save(s.db, entry); err != nil {
		if errors.Is(err, models.ErrEndYearBeforeStartYear) {
			return s.renderError(c, entry, page, title, fiber.StatusBadRequest, err.Error())
		}

		log.Error().Err(err).Msg("failed to save education")

		return s.renderError(c, entry, page, title, fiber.StatusInternalServerError, "Failed to save education")
	}

	return c.Redirect(Path)
}

func (s *Service) renderError(c *fiber.Ctx, entry *models.Education, page, title string, status int, message any) error {
	data := handler.SiteData(s.db, s.nav(page, title))
	data["Education"] = entry
	data["Error"] = message

	return c.Status(status).Render(FormTemplateName, data, handler.BaseLayout)
}
