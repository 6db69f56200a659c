// Package projects provides the dashboard project management handlers.
package projects

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	projectcontroller "github.com/GoFolio/GoFolio/internal/db/controller/project"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the project list page.
	Path = "/dashboard/projects"

	// ListTemplateName is the name of the project list template.
	ListTemplateName = "dashboard/projects"

	// FormTemplateName is the name of the project form template.
	FormTemplateName = "dashboard/project_form"
)

// Form carries the editable project fields.
type Form struct {
	Title            string `form:"title"             validate:"required,max=150"`
	Slug             string `form:"slug"              validate:"omitempty,max=160"`
	ShortDescription string `form:"short_description" validate:"required,max=255"`
	LongDescription  string `form:"long_description"`
	TechStack        string `form:"tech_stack"        validate:"omitempty,max=255"`
	GithubURL        string `form:"github_url"        validate:"omitempty,url,max=255"`
	LiveURL          string `form:"live_url"          validate:"omitempty,url,max=255"`
	IsFeatured       bool   `form:"is_featured"`
}

// Service is the dashboard projects handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the dashboard projects handler.
var Handler = Service{}

// Init initializes the dashboard projects handler.
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

	if page == "projects" {
		return nav.AddBreadcrumb("Projects", Path, true)
	}

	return nav.
		AddBreadcrumb("Projects", Path, false).
		AddBreadcrumb(title, "#", true)
}

// List handles the project list page rendering.
func (s *Service) List(c *fiber.Ctx) error {
	projects, err := projectcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load projects")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load projects")
	}

	data := handler.SiteData(s.db, s.nav("projects", "Projects"))
	data["Projects"] = projects

	return c.Render(ListTemplateName, data, handler.BaseLayout)
}

// GetAdd handles the empty project form rendering.
func (s *Service) GetAdd(c *fiber.Ctx) error {
	data := handler.SiteData(s.db, s.nav("project-add", "Add Project"))
	data["Project"] = &models.Project{}

	return c.Render(FormTemplateName, data, handler.BaseLayout)
}

// PostAdd handles the new project form submission.
func (s *Service) PostAdd(c *fiber.Ctx) error {
	return s.save(c, &models.Project{}, "project-add", "Add Project")
}

// GetEdit handles the pre-filled project form rendering.
func (s *Service) GetEdit(c *fiber.Ctx) error {
	project, err := s.lookup(c)
	if err != nil {
		return s.lookupError(c, err)
	}

	data := handler.SiteData(s.db, s.nav("project-edit", "Edit Project"))
	data["Project"] = project

	return c.Render(FormTemplateName, data, handler.BaseLayout)
}

// PostEdit handles the edited project form submission.
func (s *Service) PostEdit(c *fiber.Ctx) error {
	project, err := s.lookup(c)
	if err != nil {
		return s.lookupError(c, err)
	}

	return s.save(c, project, "project-edit", "Edit Project")
}

// Delete handles project deletion.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := projectcontroller.Delete(s.db, uint64(id)); err != nil {
		if errors.Is(err, projectcontroller.ErrProjectNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		log.Error().Err(err).Int("id", id).Msg("failed to delete project")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete project")
	}

	return c.Redirect(Path)
}

func (s *Service) lookup(c *fiber.Ctx) (*models.Project, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, projectcontroller.ErrProjectNotFound
	}

	return projectcontroller.GetByID(s.db, uint64(id))
}

func (s *Service) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, projectcontroller.ErrProjectNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}

	log.Error().Err(err).Msg("failed to load project")

	return c.Status(fiber.StatusInternalServerError).SendString("Failed to load project")
}

func (s *Service) save(c *fiber.Ctx, project *models.Project, page, title string) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse project form")
		return s.renderError(c, project, page, title, fiber.StatusBadRequest, "Invalid form data")
	}

	if err := s.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)

		errorMessages := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
		}

		return s.renderError(c, project, page, title, fiber.StatusBadRequest, errorMessages)
	}

	project.Title = form.Title
	project.Slug = form.Slug
	project.ShortDescription = form.ShortDescription
	project.LongDescription = form.LongDescription
	project.TechStack = form.TechStack
	project.GithubURL = form.GithubURL
	project.LiveURL = form.LiveURL
	project.IsFeatured = form.IsFeatured

	if rel, uploadErr := handler.SaveUpload(c, s.cfg.Media, "image", "projects", handler.ImageExtensions); uploadErr != nil {
		return s.renderError(c, project, page, title, fiber.StatusBadRequest, uploadErr.Error())
	} else if rel != "" {
		project.Image = rel
	}

	if err := projectcontroller.Save(s.db, project); err != nil {
		log.Error().Err(err).Msg("failed to save project")
		return s.renderError(c, project, page, title, fiber.StatusInternalServerError, "Failed to save project")
	}

	log.Info().Str("slug", project.Slug).Msg("project saved")

	return c.Redirect(Path)
}

func (s *Service) renderError(c *fiber.Ctx, project *models.Project, page, title string, status int, message any) error {
	data := handler.SiteData(s.db, s.nav(page, title))
	data["Project"] = project
	data["Error"] = message

	return c.Status(status).Render(FormTemplateName, data, handler.BaseLayout)
}
