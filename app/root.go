// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofolio",
	Short: "GoFolio is a personal portfolio site with a built-in dashboard",
	Long: `GoFolio is a single-owner portfolio website that renders profile,
experience, education and project content from a database and provides a
password-protected dashboard for editing the content and the site settings.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
