package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docview/internal/route"
	"github.com/ziadkadry99/docview/internal/walker"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the configured route table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		table, err := cfg.Table()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "HASH\tDOCUMENT")
		for _, e := range table.Entries() {
			fmt.Fprintf(tw, "%s\t%s\n", route.Href(e.Key), e.Path)
		}
		return tw.Flush()
	},
}

var routesScanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Scan a docs directory and print a route list for the config file",
	Long: `Walks the docs root (or dir) for Markdown documents, honouring the include and
exclude patterns of the config, and prints a routes: block to paste into
.docview.yml. The running viewer only ever uses the configured routes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		root := cfg.DocsRoot
		if len(args) == 1 {
			root = args[0]
		}

		docs, err := walker.Walk(walker.WalkerConfig{
			RootDir: root,
			Include: cfg.Include,
			Exclude: cfg.Exclude,
		})
		if err != nil {
			return err
		}

		out := struct {
			Routes []route.Entry `yaml:"routes"`
		}{Routes: walker.Routes(docs, route.DocumentPath(cfg.Index))}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding routes: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	routesCmd.AddCommand(routesScanCmd)
	rootCmd.AddCommand(routesCmd)
}
