package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mazurov/claude-token-refresh/internal/config"
	"github.com/mazurov/claude-token-refresh/internal/credentials"
	"github.com/mazurov/claude-token-refresh/internal/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored token state without refreshing",
	Long: `Report the remaining validity of the stored access token and whether
the next run would refresh it. Reads the credentials file only; no
network call, no write.`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	rep := output.New()

	cfg, err := config.Load()
	if err != nil {
		rep.Errorf("Cannot read credentials: %v", err)
		os.Exit(1)
	}

	record, err := credentials.Load(cfg.CredentialsPath)
	if err != nil {
		rep.Errorf("Cannot read credentials: %v", err)
		os.Exit(1)
	}

	state, err := record.OAuth()
	if err != nil {
		rep.Errorf("Cannot read credentials: %v", err)
		os.Exit(1)
	}

	remaining := state.Remaining(time.Now())
	switch {
	case remaining > cfg.RefreshThreshold:
		rep.Okf("Token valid for %.1fh, refresh not yet due", remaining.Hours())
	case remaining > 0:
		rep.Infof("Token expires in %.1fh, next run will refresh it", remaining.Hours())
	default:
		rep.Warnf("Token EXPIRED %.1fh ago, next run will refresh it", -remaining.Hours())
	}

	if !state.HasRefreshToken() {
		rep.Warnf("No refresh token in credentials, refresh will fail")
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
