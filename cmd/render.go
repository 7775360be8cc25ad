package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docview/internal/nav"
)

var renderJSON bool

var renderCmd = &cobra.Command{
	Use:   "render [route]",
	Short: "Render one page the way the viewer shows it",
	Long: `Navigates to route (a key such as architecture/overview or a hash such as
#/architecture/overview) from a fresh page and prints the rendered HTML.
Unknown routes show the index, as in the viewer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := newViewer()
		if err != nil {
			return err
		}
		hash := ""
		if len(args) == 1 {
			hash = args[0]
		}

		view := nav.Visit(cmd.Context(), v.table, v.loader, v.renderer,
			nav.RouteChanged{Hash: hash},
			nav.WithExpanded(v.cfg.Expanded),
			nav.WithLogger(v.log),
		)

		out := cmd.OutOrStdout()
		if renderJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		}
		if view.Error != nil {
			return fmt.Errorf("%s: %s", view.Error.Message, view.Error.Detail)
		}
		fmt.Fprint(out, view.Document.HTML)
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "print the full view (path, sidebar state, document or error) as JSON")
	rootCmd.AddCommand(renderCmd)
}
