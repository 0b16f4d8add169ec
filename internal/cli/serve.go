package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/showreel/internal/app"
	"github.com/MrSnakeDoc/showreel/internal/config"
)

type serveFlags struct {
	port        string
	catalogFile string
	aboutFile   string
	assetsDir   string
}

func newServeCmd() *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server. Flags override the matching SHOWREEL_* environment variables.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.apply(); err != nil {
				return err
			}

			a, err := app.New(config.Load())
			if err != nil {
				return err
			}
			return a.Run()
		},
	}

	cmd.Flags().StringVarP(&f.port, "port", "p", "", "listen port (overrides SHOWREEL_LISTEN_PORT)")
	cmd.Flags().StringVarP(&f.catalogFile, "catalog", "c", "", "catalog YAML file (overrides SHOWREEL_CATALOG_FILE)")
	cmd.Flags().StringVar(&f.aboutFile, "about", "", "about Markdown file (overrides SHOWREEL_ABOUT_FILE)")
	cmd.Flags().StringVar(&f.assetsDir, "assets", "", "assets directory (overrides SHOWREEL_ASSETS_DIR)")

	return cmd
}

func (f serveFlags) apply() error {
	for key, value := range map[string]string{
		"SHOWREEL_LISTEN_PORT":  f.port,
		"SHOWREEL_CATALOG_FILE": f.catalogFile,
		"SHOWREEL_ABOUT_FILE":   f.aboutFile,
		"SHOWREEL_ASSETS_DIR":   f.assetsDir,
	} {
		if err := setenvIfSet(key, value); err != nil {
			return err
		}
	}
	return nil
}
