package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mazurov/claude-token-refresh/internal/config"
	"github.com/mazurov/claude-token-refresh/internal/oauth"
	"github.com/mazurov/claude-token-refresh/internal/output"
	"github.com/mazurov/claude-token-refresh/internal/refresher"
)

// rootCmd represents the base command. Invoking the tool with no
// arguments runs the check-and-refresh operation.
var rootCmd = &cobra.Command{
	Use:   "claude-token-refresh",
	Short: "Keep the Claude CLI OAuth token fresh",
	Long: `claude-token-refresh renews the OAuth access token stored in
~/.claude/.credentials.json before it expires.

The token is refreshed proactively when less than 2 hours of validity
remain; a run that finds enough time left is a no-op. Intended to be
invoked periodically, e.g. from cron. Exit code 0 on success (including
the no-op path), 1 on any failure.`,
	Args:          cobra.NoArgs,
	Run:           runRefresh,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func runRefresh(cmd *cobra.Command, args []string) {
	rep := output.New()

	cfg, err := config.Load()
	if err != nil {
		rep.Errorf("Cannot read credentials: %v", err)
		os.Exit(1)
	}

	client := oauth.NewClient(cfg.TokenEndpoint, cfg.ClientID, cfg.RequestTimeout)
	outcome, err := refresher.New(cfg, client, rep).Run(context.Background())
	if err != nil {
		rep.Errorf("%v", err)
		os.Exit(1)
	}

	if outcome.Refreshed {
		rep.Okf("Token refreshed, valid for %.1fh", outcome.Valid.Hours())
	} else {
		rep.Okf("Token valid for %.1fh, no refresh needed", outcome.Valid.Hours())
	}
}
