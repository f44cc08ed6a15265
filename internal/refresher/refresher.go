package refresher

import (
	"context"
	"errors"
	"time"

	"golang.org/x/oauth2"

	"github.com/mazurov/claude-token-refresh/internal/config"
	"github.com/mazurov/claude-token-refresh/internal/credentials"
	"github.com/mazurov/claude-token-refresh/internal/oauth"
	"github.com/mazurov/claude-token-refresh/internal/output"
)

// TokenClient performs the refresh exchange against the token endpoint
type TokenClient interface {
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

// Outcome describes a completed run
type Outcome struct {
	Refreshed bool          // false on the no-op fast path
	Valid     time.Duration // remaining validity (no-op) or the new window (refreshed)
}

// Refresher checks the stored access token and renews it when less than
// the configured threshold remains. One linear pass per Run.
type Refresher struct {
	cfg    *config.Config
	client TokenClient
	rep    *output.Reporter
}

// New creates a refresher
func New(cfg *config.Config, client TokenClient, rep *output.Reporter) *Refresher {
	return &Refresher{
		cfg:    cfg,
		client: client,
		rep:    rep,
	}
}

// Run loads the credentials, decides whether a refresh is due, and if so
// performs the exchange and persists the updated document atomically. The
// on-disk file is either untouched or fully updated, never in between.
func (r *Refresher) Run(ctx context.Context) (Outcome, error) {
	record, err := credentials.Load(r.cfg.CredentialsPath)
	if err != nil {
		return Outcome{}, newError(KindCredentialsUnreadable, err)
	}

	state, err := record.OAuth()
	if err != nil {
		return Outcome{}, newError(KindCredentialsUnreadable, err)
	}

	remaining := state.Remaining(time.Now())
	if remaining > r.cfg.RefreshThreshold {
		return Outcome{Refreshed: false, Valid: remaining}, nil
	}

	if remaining <= 0 {
		r.rep.Warnf("Token EXPIRED %.1fh ago, trying refresh", -remaining.Hours())
	} else {
		r.rep.Infof("Token expires in %.1fh, refreshing proactively", remaining.Hours())
	}

	if !state.HasRefreshToken() {
		return Outcome{}, newError(KindMissingRefreshToken, nil)
	}

	token, err := r.client.Refresh(ctx, state.RefreshToken)
	if err != nil {
		var respErr *oauth.ResponseError
		if errors.As(err, &respErr) {
			return Outcome{}, newError(KindInvalidRefreshResponse, err)
		}
		return Outcome{}, newError(KindRefreshRequestFailed, err)
	}

	state.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		state.RefreshToken = token.RefreshToken
	}
	expiresIn := token.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = int64(r.cfg.DefaultExpiresIn.Seconds())
	}
	state.ExpiresAt = time.Now().UnixMilli() + expiresIn*1000

	if err := record.SetOAuth(state); err != nil {
		return Outcome{}, newError(KindPersistFailed, err)
	}
	if err := record.Save(r.cfg.CredentialsPath); err != nil {
		return Outcome{}, newError(KindPersistFailed, err)
	}

	return Outcome{Refreshed: true, Valid: time.Duration(expiresIn) * time.Second}, nil
}
