package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	gogit "github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/friis-dev/hopp/internal/git"
	"github.com/friis-dev/hopp/internal/models"
	"github.com/friis-dev/hopp/internal/ui"
)

var version = "dev"

// errCheckoutFailed signals a non-zero exit after the controller has already
// printed the failure and its remediation hint.
var errCheckoutFailed = errors.New("checkout failed")

var (
	directory string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:           "hopp",
	Short:         "Switch between recent local branches",
	Long:          `Hopp lists local branches ranked by commit recency and checks out the one you pick.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			With().Timestamp().Logger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "C", ".", "run as if hopp was started in <path>")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics")
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckoutFailed) {
			fmt.Fprintln(os.Stderr, "hopp:", err)
		}
		os.Exit(1)
	}
}

func run(out, errOut io.Writer) error {
	repo, err := git.Open(directory)
	if err != nil {
		return err
	}

	if !git.IsClean(repo) {
		return errors.New("repository is not in a clean state (in the middle of a merge?), aborting")
	}

	records, err := git.ExtractLocalBranches(repo)
	if err != nil {
		return err
	}
	records = git.Rank(records)

	// The program owns the terminal session: raw mode and the alternate
	// screen are released on every exit path, errors included.
	switcher := ui.NewSwitcher(records)
	p := tea.NewProgram(switcher, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error rendering branch selection: %w", err)
	}

	return handleSelection(repo, switcher.SelectedRecord(), out, errOut)
}

// handleSelection turns the switcher's terminal state into output and, for a
// non-current selection, the checkout call. The repository is only mutated
// here, after the selection loop has finished.
func handleSelection(repo *gogit.Repository, rec *models.BranchRecord, out, errOut io.Writer) error {
	if rec == nil {
		fmt.Fprintln(out, "Nothing to do")
		return nil
	}

	if rec.IsCurrentBranch {
		fmt.Fprintf(out, "Already on '%s'\n", rec.Name)
		return nil
	}

	fmt.Fprintf(out, "Switching to branch '%s'\n", rec.Name)
	if err := git.CheckoutBranch(repo, *rec); err != nil {
		fmt.Fprintf(errOut, "Failed to checkout branch: %v\n", err)
		fmt.Fprintln(errOut, "Please commit your changes or stash them before you switch branches.")
		return errCheckoutFailed
	}
	fmt.Fprintf(out, "Switched to branch '%s'\n", rec.Name)
	return nil
}
