package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docview/internal/resolve"
	"github.com/ziadkadry99/docview/internal/route"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <current> <href>",
	Short: "Show how a link in a document is rewritten",
	Example: `  docview resolve architecture/overview.md ../storage.md
  docview resolve index.md deployment/BACKUP_INTEGRATION`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		table, err := cfg.Table()
		if err != nil {
			return err
		}

		r := resolve.New(table)
		res := r.Link(route.DocumentPath(args[0]), args[1])

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "kind:     %s\n", res.Kind)
		if !res.Rewritten() {
			fmt.Fprintf(out, "href:     %s (unchanged)\n", res.Href)
			return nil
		}
		fmt.Fprintf(out, "target:   %s\n", res.Target)
		fmt.Fprintf(out, "href:     %s\n", res.NewHref)
		fmt.Fprintf(out, "routed:   %t\n", r.Known(res))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
