// Package handler holds the shared pieces of the web handlers: route
// constants, the handler service interface and the bindings every page
// render starts from.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profilecontroller "github.com/GoFolio/GoFolio/internal/db/controller/profile"
	"github.com/GoFolio/GoFolio/internal/db/controller/sitesettings"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

// SiteData builds the render bindings shared by every page: the navigation
// context, the site settings record and the resolved theme variables the
// base layout injects as CSS custom properties.
func SiteData(db *gorm.DB, nav *navigation.Context) fiber.Map {
	settings := sitesettings.LoadOrDefault(db)

	data := fiber.Map{
		"Navigation": nav,
		"Settings":   settings,
		"ThemeCSS":   settings.Palette().CSS(":root"),
	}

	if p, err := profilecontroller.Get(db); err == nil {
		data["Profile"] = p
	}

	return data
}
