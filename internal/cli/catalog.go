package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/showreel/internal/domain"
	catalogsrc "github.com/MrSnakeDoc/showreel/internal/sources/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect portfolio catalogs",
	}
	cmd.AddCommand(newCatalogListCmd())
	cmd.AddCommand(newCatalogValidateCmd())
	return cmd
}

func newCatalogListCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the categories of a catalog",
		Long:  `List the categories of a catalog in display order. Without --file the bundled catalog is listed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(file)
			if err != nil {
				return err
			}
			return listCategories(cmd.OutOrStdout(), cat)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file (default: bundled catalog)")
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog file without starting the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(file)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid: %d categories, %d entries\n",
				file, len(cat.Categories), cat.EntryCount())
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func loadCatalog(file string) (*domain.Catalog, error) {
	props, err := catalogsrc.NewLoader(file).Load()
	if err != nil {
		return nil, err
	}
	cat, err := catalogsrc.NewMapper().Map(props)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return cat, nil
}

func listCategories(out io.Writer, cat *domain.Catalog) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tNAV\tKIND\tENTRIES\tTITLE")
	for _, c := range cat.Categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", c.Slug, c.NavLabel, c.Kind, c.Len(), c.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\nTotal: %d categories, %d entries\n", len(cat.Categories), cat.EntryCount())
	return err
}
