// Package main provides the entry point for the GoFolio portfolio site.
// It initializes and runs a web server using the Fiber framework that renders
// a single-owner portfolio (profile, experience, education, projects) from a
// database and offers an authenticated dashboard for editing the content and
// the site settings, including the color theme applied via CSS variables.
package main
