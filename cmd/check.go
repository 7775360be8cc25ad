package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docview/internal/linkcheck"
	"github.com/ziadkadry99/docview/internal/progress"
)

var (
	checkStrict bool
	checkQuiet  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every route loads and every internal link resolves",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := newViewer()
		if err != nil {
			return err
		}

		var reporter progress.Reporter = progress.Nop{}
		if !checkQuiet {
			reporter = progress.NewReporter(os.Stderr)
		}

		report, err := linkcheck.New(v.table, v.loader, v.renderer, reporter).Run(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, f := range report.Findings {
			if f.Href != "" {
				fmt.Fprintf(out, "%-7s %s: %s -> %s: %s\n", f.Severity, f.Source, f.Href, f.Target, f.Message)
			} else {
				fmt.Fprintf(out, "%-7s %s: %s\n", f.Severity, f.Source, f.Message)
			}
		}
		fmt.Fprintf(out, "%d documents, %d internal links, %d errors, %d warnings\n",
			report.Documents, report.Links, report.Errors(), report.Warnings())

		if report.Errors() > 0 || (checkStrict && report.Warnings() > 0) {
			return fmt.Errorf("check failed")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "treat warnings as errors")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "no progress output")
	rootCmd.AddCommand(checkCmd)
}
