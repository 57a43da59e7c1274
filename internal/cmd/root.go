package cmd

import (
	"os"

	"github.com/pthm/postcheck/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	format      string
	profileName string
	profileFile string
)

// RootCmd is the root command for postcheck
var RootCmd = &cobra.Command{
	Use:   "postcheck",
	Short: "Pre-evaluate social posts before publishing",
	Long: `postcheck scores short post text against a simulated content-ranking
heuristic before you publish, and tells you what would get the post
buried: toxic or spammy phrasing, NSFW terms, untrusted links, shouty
formatting, and missed engagement signals.

It runs entirely offline against fixed lexical heuristics; nothing is
ever posted or sent anywhere.`,
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// GetUI returns a UI configured from the global format flag
func GetUI() *ui.UI {
	return ui.New(os.Stdout, os.Stderr, format)
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVar(&profileName, "profile", "default", "Builtin heuristic profile to score against")
	RootCmd.PersistentFlags().StringVar(&profileFile, "profile-file", "", "Load a custom heuristic profile from a YAML file")
}
