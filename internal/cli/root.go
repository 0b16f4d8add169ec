// Package cli holds the showreel command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command and its subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "showreel",
		Short: "Showreel serves a video editor portfolio",
		Long: `Showreel serves a single page video editor portfolio: a hero, category galleries
of platform-hosted videos and local thumbnails, a video modal and an about page.
Configuration comes from SHOWREEL_* environment variables (a .env file is loaded if present).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setenvIfSet lets a flag override its environment variable.
func setenvIfSet(key, value string) error {
	if value == "" {
		return nil
	}
	return os.Setenv(key, value)
}
