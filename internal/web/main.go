// Package web wires the fiber application: templates, static assets,
// middleware and every page handler of the public site and the dashboard.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	fiberlogger "github.com/GoFolio/GoFolio/internal/logger/adapter/fiber"
	"github.com/GoFolio/GoFolio/internal/web/handler/about"
	"github.com/GoFolio/GoFolio/internal/web/handler/contact"
	"github.com/GoFolio/GoFolio/internal/web/handler/dashboard"
	dasheducation "github.com/GoFolio/GoFolio/internal/web/handler/dashboard/education"
	dashexperience "github.com/GoFolio/GoFolio/internal/web/handler/dashboard/experience"
	"github.com/GoFolio/GoFolio/internal/web/handler/dashboard/messages"
	dashprofile "github.com/GoFolio/GoFolio/internal/web/handler/dashboard/profile"
	dashprojects "github.com/GoFolio/GoFolio/internal/web/handler/dashboard/projects"
	dashsitesettings "github.com/GoFolio/GoFolio/internal/web/handler/dashboard/sitesettings"
	"github.com/GoFolio/GoFolio/internal/web/handler/experience"
	"github.com/GoFolio/GoFolio/internal/web/handler/home"
	"github.com/GoFolio/GoFolio/internal/web/handler/login"
	"github.com/GoFolio/GoFolio/internal/web/handler/logout"
	"github.com/GoFolio/GoFolio/internal/web/handler/media"
	"github.com/GoFolio/GoFolio/internal/web/handler/projects"
)

// CheckAlivePath is the liveness endpoint used by load balancers.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	s.alive.Store(true)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("iterate", func(count int) []int {
		result := make([]int, count)
		for i := range result {
			result[i] = i
		}

		return result
	})
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("sub", func(a, b int) int {
		return a - b
	})
	templateEngine.AddFunc("year", func(t time.Time) int {
		return t.Year()
	})
	templateEngine.AddFunc("monthYear", func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format("Jan 2006")
		case *time.Time:
			if t != nil {
				return t.Format("Jan 2006")
			}
		}

		return ""
	})
	templateEngine.AddFunc("split", func(s, sep string) []string {
		parts := strings.Split(s, sep)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}

		return out
	})

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "GoFolio",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// access log middleware
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	// session auth middleware for the dashboard
	app.Use(AuthMiddleware)

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	// liveness endpoint for load balancers
	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("ok")
	})

	// prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes)
	home.Handler.Init(app, cfg, db)
	about.Handler.Init(app, cfg, db)
	experience.Handler.Init(app, cfg, db)
	projects.Handler.Init(app, cfg, db)
	contact.Handler.Init(app, cfg, db)
	media.Handler.Init(app, cfg, db)

	if err := login.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init login handler")
	}

	logout.Handler.Init(app, cfg)

	dashboard.Handler.Init(app, cfg, db)
	dashprofile.Handler.Init(app, cfg, db)
	dashprojects.Handler.Init(app, cfg, db)
	dashexperience.Handler.Init(app, cfg, db)
	dasheducation.Handler.Init(app, cfg, db)
	messages.Handler.Init(app, cfg, db)

	if err := dashsitesettings.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init site settings handler")
	}

	return service
}
