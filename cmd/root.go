package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docview",
	Short: "Hash-routed Markdown documentation viewer",
	Long: `docview serves a directory of Markdown documents as a single-page
documentation viewer. Pages are addressed by hash routes (#/architecture/overview)
from a hand-maintained route table, relative links between documents are
rewritten to those routes, and the sidebar follows the page being read.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docview.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
