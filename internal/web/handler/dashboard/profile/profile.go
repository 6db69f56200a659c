// Package profile provides the dashboard profile edit handler, including
// the CV and profile image uploads.
package profile

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	profilecontroller "github.com/GoFolio/GoFolio/internal/db/controller/profile"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the profile edit page.
	Path = "/dashboard/profile"

	// TemplateName is the name of the profile edit template.
	TemplateName = "dashboard/profile"
)

// Form carries the editable profile fields.
type Form struct {
	FullName string `form:"full_name" validate:"required,max=150"`
	Headline string `form:"headline"  validate:"required,max=200"`
	Location string `form:"location"  validate:"omitempty,max=150"`
	Email    string `form:"email"     validate:"required,email,max=255"`
	Phone    string `form:"phone"     validate:"omitempty,max=30"`

	LinkedinURL  string `form:"linkedin_url"  validate:"omitempty,url,max=255"`
	GithubURL    string `form:"github_url"    validate:"omitempty,url,max=255"`
	FacebookURL  string `form:"facebook_url"  validate:"omitempty,url,max=255"`
	InstagramURL string `form:"instagram_url" validate:"omitempty,url,max=255"`

	About  string `form:"about"`
	Skills string `form:"skills" validate:"omitempty,max=500"`
}

// Service is the profile edit handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the profile edit handler.
var Handler = Service{}

// Init initializes the profile edit handler.
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

func (s *Service) nav() *navigation.Context {
	return navigation.NewContext("Profile", "dashboard", "profile").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Profile", Path, true)
}

// Get handles the profile edit page rendering. A missing profile row is
// created with placeholder values first.
func (s *Service) Get(c *fiber.Ctx) error {
	p, err := profilecontroller.GetOrCreate(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load profile")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load profile")
	}

	data := handler.SiteData(s.db, s.nav())
	data["Profile"] = p

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Post handles the profile form submission, including the optional CV and
// profile image uploads.
func (s *Service) Post(c *fiber.Ctx) error {
	p, err := profilecontroller.GetOrCreate(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load profile")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load profile")
	}

	form := new(Form)
	if err = c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse profile form")
		return s.renderError(c, p, fiber.StatusBadRequest, "Invalid form data")
	}

	if err = s.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)

		errorMessages := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
		}

		return s.renderError(c, p, fiber.StatusBadRequest, errorMessages)
	}

	p.FullName = form.FullName
	p.Headline = form.Headline
	p.Location = form.Location
	p.Email = form.Email
	p.Phone = form.Phone
	p.LinkedinURL = form.LinkedinURL
	p.GithubURL = form.GithubURL
	p.FacebookURL = form.FacebookURL
	p.InstagramURL = form.InstagramURL
	p.About = form.About
	p.Skills = form.Skills

	if rel, uploadErr := handler.SaveUpload(c, s.cfg.Media, "cv_file", "cv", handler.CVExtensions); uploadErr != nil {
		return s.renderError(c, p, fiber.StatusBadRequest, uploadErr.Error())
	} else if rel != "" {
		p.CVFile = rel
	}

	if rel, uploadErr := handler.SaveUpload(c, s.cfg.Media, "profile_image", "images", handler.ImageExtensions); uploadErr != nil {
		return s.renderError(c, p, fiber.StatusBadRequest, uploadErr.Error())
	} else if rel != "" {
		p.ProfileImage = rel
	}

	if err = profilecontroller.Save(s.db, p); err != nil {
		log.Error().Err(err).Msg("failed to save profile")
		return s.renderError(c, p, fiber.StatusInternalServerError, "Failed to save profile")
	}

	log.Info().Str("email", p.Email).Msg("profile updated")

	data := handler.SiteData(s.db, s.nav())
	data["Profile"] = p
	data["Success"] = "Profile updated"

	return c.Render(TemplateName, data, handler.BaseLayout)
}

func (s *Service) renderError(c *fiber.Ctx, p any, status int, message any) error {
	data := handler.SiteData(s.db, s.nav())
	data["Profile"] = p
	data["Error"] = message

	return c.Status(status).Render(TemplateName, data, handler.BaseLayout)
}
