// Package themes defines the named color palettes applied to the site via
// CSS variables. Every theme expands to the full Palette; unknown theme
// names fall back to the default.
package themes

import (
	"html/template"
	"sort"
	"strings"
)

// DefaultName is the theme used when no or an unknown theme is configured.
const DefaultName = "dark_red"

// Theme is a named, selectable color palette.
type Theme struct {
	Name    string
	Label   string
	Palette Palette
}

// Palette holds the full set of named color properties a theme provides.
// Values are CSS color values: hex codes, rgba() or linear-gradient().
type Palette struct {
	Primary      string
	PrimaryHover string
	Secondary    string
	Accent       string
	AccentHover  string

	Bg0  string
	Bg1  string
	Card string

	Text        string
	TextInverse string
	Muted       string
	Border      string

	NavBg      string
	NavText    string
	NavActive  string
	FooterBg   string
	FooterText string

	LinkColor string
	LinkHover string

	ButtonBg    string
	ButtonText  string
	ButtonHover string

	InputBg     string
	InputBorder string
	InputText   string

	Success string
	Warning string
	Danger  string
	Info    string

	Shadow  string
	Overlay string

	HeroGradient string
	CardGradient string

	ScrollThumb string
	TagBg       string
	TagText     string
}

// registry holds the selectable themes in display order.
var registry = []Theme{
	{Name: "dark_red", Label: "Dark Red", Palette: darkRed},
	{Name: "dark_blue", Label: "Dark Blue", Palette: darkBlue},
	{Name: "dark_green", Label: "Dark Green", Palette: darkGreen},
	{Name: "dark_purple", Label: "Dark Purple", Palette: darkPurple},
	{Name: "cyberpunk", Label: "Cyberpunk", Palette: cyberpunk},
	{Name: "midnight", Label: "Midnight", Palette: midnight},
	{Name: "crimson", Label: "Crimson", Palette: crimson},
	{Name: "ocean", Label: "Ocean", Palette: ocean},
	{Name: "forest", Label: "Forest", Palette: forest},
	{Name: "monochrome", Label: "Monochrome", Palette: monochrome},
}

// All returns the selectable themes in display order.
func All() []Theme {
	out := make([]Theme, len(registry))
	copy(out, registry)

	return out
}

// Names returns the valid theme names in display order.
func Names() []string {
	names := make([]string, len(registry))
	for i, t := range registry {
		names[i] = t.Name
	}

	return names
}

// IsValid reports whether name is one of the selectable themes.
func IsValid(name string) bool {
	for _, t := range registry {
		if t.Name == name {
			return true
		}
	}

	return false
}

// ByName returns the theme with the given name, falling back to the
// default theme for unknown names.
func ByName(name string) Theme {
	for _, t := range registry {
		if t.Name == name {
			return t
		}
	}

	return ByName(DefaultName)
}

// WithOverrides returns a copy of the palette with the primary, secondary
// and accent colors replaced where an override is set.
func (p Palette) WithOverrides(primary, secondary, accent string) Palette {
	if primary != "" {
		p.Primary = primary
	}

	if secondary != "" {
		p.Secondary = secondary
	}

	if accent != "" {
		p.Accent = accent
	}

	return p
}

// Vars returns the palette as a CSS variable map, keyed by variable name
// without the leading dashes. The base layout writes these into :root.
func (p Palette) Vars() map[string]string {
	return map[string]string{
		"primary":       p.Primary,
		"primary-hover": p.PrimaryHover,
		"secondary":     p.Secondary,
		"accent":        p.Accent,
		"accent-hover":  p.AccentHover,
		"bg0":           p.Bg0,
		"bg1":           p.Bg1,
		"card":          p.Card,
		"text":          p.Text,
		"text-inverse":  p.TextInverse,
		"muted":         p.Muted,
		"border":        p.Border,
		"nav-bg":        p.NavBg,
		"nav-text":      p.NavText,
		"nav-active":    p.NavActive,
		"footer-bg":     p.FooterBg,
		"footer-text":   p.FooterText,
		"link":          p.LinkColor,
		"link-hover":    p.LinkHover,
		"button-bg":     p.ButtonBg,
		"button-text":   p.ButtonText,
		"button-hover":  p.ButtonHover,
		"input-bg":      p.InputBg,
		"input-border":  p.InputBorder,
		"input-text":    p.InputText,
		"success":       p.Success,
		"warning":       p.Warning,
		"danger":        p.Danger,
		"info":          p.Info,
		"shadow":        p.Shadow,
		"overlay":       p.Overlay,
		"hero-gradient": p.HeroGradient,
		"card-gradient": p.CardGradient,
		"scroll-thumb":  p.ScrollThumb,
		"tag-bg":        p.TagBg,
		"tag-text":      p.TagText,
	}
}

// CSS renders the palette as a custom property block for the given CSS
// selector, typed so html/template injects it into <style> unescaped.
// The rgba() and linear-gradient() values would otherwise be filtered.
func (p Palette) CSS(selector string) template.CSS {
	vars := p.Vars()

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}

	sort.Strings(names)

	var b strings.Builder

	b.WriteString(selector)
	b.WriteString("{")

	for _, name := range names {
		b.WriteString("--")
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(vars[name])
		b.WriteString(";")
	}

	b.WriteString("}")

	return template.CSS(b.String())
}
