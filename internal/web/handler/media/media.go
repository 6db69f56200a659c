// Package media serves uploaded files (profile image, project images, CV)
// from the media root and exposes the CV download route.
package media

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	profilecontroller "github.com/GoFolio/GoFolio/internal/db/controller/profile"
	"github.com/GoFolio/GoFolio/internal/web/handler"
)

const (
	// Path is the path prefix for serving uploaded media files.
	Path = handler.RootPath + "media"

	// CVDownloadPath is the path that serves the stored CV as an attachment.
	CVDownloadPath = handler.RootPath + "download/cv"
)

// Service is the media handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the media handler.
var Handler = Service{}

// Init initializes the media handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path+"/*", s.Get)
	app.Get(CVDownloadPath, s.DownloadCV)
}

// Get serves a file below the media root. Path traversal outside the root
// is rejected. Files under cv/ are served as attachments.
func (s *Service) Get(c *fiber.Ctx) error {
	rel := c.Params("*")

	name, err := s.resolve(rel)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if strings.HasPrefix(rel, "cv/") {
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filepath.Base(name)+`"`)
	}

	return c.SendFile(name)
}

// DownloadCV resolves the CV file reference stored on the profile and
// serves it with an attachment disposition so browsers download it.
func (s *Service) DownloadCV(c *fiber.Ctx) error {
	p, err := profilecontroller.Get(s.db)
	if err != nil || !p.HasCV() {
		return c.SendStatus(fiber.StatusNotFound)
	}

	name, err := s.resolve(p.CVFile)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filepath.Base(name)+`"`)

	return c.SendFile(name)
}

// resolve maps a media-relative reference onto the media root.
func (s *Service) resolve(rel string) (string, error) {
	root, err := filepath.Abs(s.cfg.Media.Root)
	if err != nil {
		return "", err
	}

	name := filepath.Join(root, filepath.Clean("/"+rel))
	if !strings.HasPrefix(name, root+string(filepath.Separator)) {
		return "", fiber.ErrNotFound
	}

	return name, nil
}
