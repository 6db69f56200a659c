package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1")

	assert.Equal(t, "Test Page", ctx.PageTitle)
	assert.Equal(t, "section1", ctx.ActiveSection)
	assert.Equal(t, "page1", ctx.ActivePage)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
}

func TestContext_AddBreadcrumb(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1")

	// Add first breadcrumb
	ctx.AddBreadcrumb("Home", "/", false)
	assert.Len(t, ctx.Breadcrumbs, 1)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "/", ctx.Breadcrumbs[0].URL)
	assert.False(t, ctx.Breadcrumbs[0].Active)

	// Add active breadcrumb
	ctx.AddBreadcrumb("Projects", "/dashboard/projects", true)
	assert.Len(t, ctx.Breadcrumbs, 2)
	assert.True(t, ctx.Breadcrumbs[1].Active)
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Test Page", "dashboard", "projects").
		AddBreadcrumb("Home", "/dashboard", false).
		AddBreadcrumb("Projects", "/dashboard/projects", false).
		AddBreadcrumb("Edit", "/dashboard/projects/1/edit", true)

	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "Projects", ctx.Breadcrumbs[1].Title)
	assert.Equal(t, "Edit", ctx.Breadcrumbs[2].Title)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Test Page", "dashboard", "site-settings")

	assert.True(t, ctx.IsActive("dashboard", "site-settings"))
	assert.False(t, ctx.IsActive("public", "site-settings"))
	assert.False(t, ctx.IsActive("dashboard", "profile"))
	assert.False(t, ctx.IsActive("public", "home"))
}

func TestContext_IsSectionActive(t *testing.T) {
	ctx := NewContext("Test Page", "dashboard", "site-settings")

	assert.True(t, ctx.IsSectionActive("dashboard"))
	assert.False(t, ctx.IsSectionActive("public"))
}

func TestContext_PublicMenu(t *testing.T) {
	ctx := NewContext("Projects", "public", "projects")

	menu := ctx.PublicMenu()
	assert.Len(t, menu, 5)
	assert.Equal(t, "Home", menu[0].Title)
	assert.Equal(t, "/", menu[0].URL)
	assert.False(t, menu[0].Active)
	assert.Equal(t, "Projects", menu[3].Title)
	assert.True(t, menu[3].Active)
}

func TestContext_PublicMenu_Home(t *testing.T) {
	ctx := NewContext("Welcome", "public", "home")

	menu := ctx.PublicMenu()
	assert.True(t, menu[0].Active)
	for _, item := range menu[1:] {
		assert.False(t, item.Active)
	}
}
