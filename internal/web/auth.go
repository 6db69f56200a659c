package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GoFolio/GoFolio/internal/web/handler/login"
	"github.com/GoFolio/GoFolio/internal/web/session"
)

// AuthMiddleware gates the dashboard behind a valid session. The public
// site, the login page and static assets stay open.
func AuthMiddleware(c *fiber.Ctx) error {
	var (
		isLoginPage     = IsLoginPage(c)
		isDashboardPage = IsDashboardPage(c)
		sessDataValid   bool
	)

	if !isLoginPage && !isDashboardPage {
		return c.Next()
	}

	// get session cookie
	loginCookie := c.Cookies("session")

	// if no session cookie, redirect to login page
	if loginCookie == "" && !isLoginPage {
		return c.Redirect(login.Path)
	}

	// check session validity
	sessData := new(session.Data)
	_ = sessData.Read(loginCookie)

	// valid data in session
	if sessData.User.ID > 0 {
		sessDataValid = true
	}

	if sessDataValid && isLoginPage {
		return c.Redirect("/dashboard")
	}

	if !sessDataValid && isDashboardPage {
		return c.Redirect(login.Path)
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, login.Path)
}

// IsDashboardPage checks if the current request is for a dashboard page.
func IsDashboardPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, "/dashboard")
}
