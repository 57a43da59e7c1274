package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pthm/postcheck/internal/compose"
	"github.com/pthm/postcheck/internal/heuristic"
	"github.com/pthm/postcheck/internal/reporter"
	"github.com/pthm/postcheck/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	hasMedia   bool
	mediaType  string
	isReply    bool
	draftFile  string
	exportPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Analyze post text before publishing",
	Long: `Score a post against the ranking heuristic and report penalties,
boosts, warnings, and recommendations.

Text can come from arguments, a draft file, or an interactive prompt
when neither is given.

Examples:
  postcheck analyze "Shipping a new release today. What should we build next?"
  postcheck analyze --media --media-type video "Launch day!"
  postcheck analyze --file draft.md
  postcheck analyze --format json "hello" > result.json`,
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func init() {
	analyzeCmd.Flags().BoolVar(&hasMedia, "media", false, "Post has a media attachment")
	analyzeCmd.Flags().StringVar(&mediaType, "media-type", "", "Media type (image, video, gif)")
	analyzeCmd.Flags().BoolVar(&isReply, "reply", false, "Post is a reply")
	analyzeCmd.Flags().StringVar(&draftFile, "file", "", "Read post text from a draft file (markdown is stripped to plain text)")
	analyzeCmd.Flags().StringVar(&exportPath, "export", "", "Also write the full result JSON to this file")
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	post, err := gatherPost(args)
	if err != nil {
		return err
	}

	engine := scoring.NewEngine(profile)
	result := engine.Analyze(post)

	u := GetUI()
	if verbose {
		fmt.Fprintf(u.ErrWriter, "Profile: %s\n", profile.Name)
		fmt.Fprintf(u.ErrWriter, "Analyzing %d characters\n", result.Features.TextLength)
	}

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout)
	default:
		rep = reporter.NewTerminalReporter(u)
	}

	if err := rep.Report(result); err != nil {
		return err
	}

	if exportPath != "" {
		if err := reporter.Export(exportPath, result); err != nil {
			return err
		}
		if format != "json" {
			fmt.Fprintln(u.Writer, u.Styles.Success.Render(u.Styles.IconSuccess+" Saved to "+exportPath))
		}
	}

	return nil
}

// loadProfile resolves the heuristic profile from the global flags; an
// explicit file takes precedence over the builtin profile name.
func loadProfile() (*heuristic.Profile, error) {
	if profileFile != "" {
		profile, err := heuristic.LoadFromFile(profileFile)
		if err != nil {
			return nil, err
		}
		return profile, nil
	}

	profile, err := heuristic.Load(profileName)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(heuristic.Available(), ", "))
	}
	return profile, nil
}

// gatherPost builds the post from arguments, a draft file, or the
// interactive composer. Argument text is joined with spaces.
func gatherPost(args []string) (scoring.Post, error) {
	if draftFile != "" {
		text, err := compose.ReadDraft(draftFile)
		if err != nil {
			return scoring.Post{}, err
		}
		return scoring.Post{Text: text, HasMedia: hasMedia, MediaType: mediaType, IsReply: isReply}, nil
	}

	if len(args) > 0 {
		return scoring.Post{
			Text:      strings.Join(args, " "),
			HasMedia:  hasMedia,
			MediaType: mediaType,
			IsReply:   isReply,
		}, nil
	}

	return compose.Run()
}
