package daemon

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	profilecontroller "github.com/GoFolio/GoFolio/internal/db/controller/profile"
	"github.com/GoFolio/GoFolio/internal/db/controller/setting"
	"github.com/GoFolio/GoFolio/internal/db/controller/sitesettings"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/uniuri"
)

// seedPasswordLength is the length of the generated admin password.
const seedPasswordLength = 16

// seed creates the first-boot data: the admin account, the placeholder
// profile and the default site settings.
func seed(cfg *config.Config, db *gorm.DB) {
	seedAdmin(db)
	seedProfile(db)
	seedSiteSettings(cfg, db)
}

func seedAdmin(db *gorm.DB) {
	var count int64

	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	password := uniuri.NewLen(seedPasswordLength)

	result := db.Create(
		&models.User{
			Username: "admin",
			Password: models.HashPassword(password),
			Active:   true,
		},
	)
	if result.Error != nil {
		log.Fatal().Err(result.Error).Msg("failed to seed admin user")
		return
	}

	// the generated password is shown once, change it after first login
	log.Warn().
		Str("username", "admin").
		Str("password", password).
		Msg("created initial admin user")
}

func seedProfile(db *gorm.DB) {
	if _, err := profilecontroller.GetOrCreate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed profile")
	}
}

func seedSiteSettings(cfg *config.Config, db *gorm.DB) {
	if _, err := setting.Get(db, sitesettings.SettingKeySiteSettings); err == nil {
		return
	} else if !errors.Is(err, setting.ErrSettingNotFound) {
		log.Fatal().Err(err).Msg("failed to read site settings")
		return
	}

	settings := &sitesettings.Settings{SiteTitle: cfg.Title}
	settings.ApplyDefaults()

	if err := settings.Save(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed site settings")
	}
}
