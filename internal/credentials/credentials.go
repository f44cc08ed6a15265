package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// oauthKey is the document section this tool maintains
const oauthKey = "claudeAiOauth"

// OAuthState is the typed view of the OAuth section. The document is
// created by an external login flow; only these three fields are ever
// touched here.
type OAuthState struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"` // absolute expiry, milliseconds since epoch
}

// HasRefreshToken reports whether a refresh exchange is possible at all
func (s OAuthState) HasRefreshToken() bool {
	return s.RefreshToken != ""
}

// Remaining returns the validity left relative to now, negative once expired
func (s OAuthState) Remaining(now time.Time) time.Duration {
	return time.Duration(s.ExpiresAt-now.UnixMilli()) * time.Millisecond
}

// Record is the full credentials document. Everything outside the OAuth
// section is carried as raw JSON so it round-trips unmodified.
type Record struct {
	fields map[string]json.RawMessage
}

// Load reads and parses the credentials document
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	return &Record{fields: fields}, nil
}

// OAuth extracts the OAuth section. A missing section or missing fields
// yield zero values; an ExpiresAt of 0 reads as already expired.
func (r *Record) OAuth() (OAuthState, error) {
	raw, ok := r.fields[oauthKey]
	if !ok {
		return OAuthState{}, nil
	}

	var state OAuthState
	if err := json.Unmarshal(raw, &state); err != nil {
		return OAuthState{}, fmt.Errorf("failed to parse %s section: %w", oauthKey, err)
	}

	return state, nil
}

// SetOAuth writes the managed fields back into the OAuth section,
// preserving any other fields stored inside it
func (r *Record) SetOAuth(state OAuthState) error {
	section := make(map[string]json.RawMessage)
	if raw, ok := r.fields[oauthKey]; ok {
		if err := json.Unmarshal(raw, &section); err != nil {
			return fmt.Errorf("failed to parse %s section: %w", oauthKey, err)
		}
	}

	encoded, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal oauth state: %w", err)
	}
	var managed map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &managed); err != nil {
		return fmt.Errorf("failed to remarshal oauth state: %w", err)
	}
	for key, value := range managed {
		section[key] = value
	}

	merged, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("failed to marshal %s section: %w", oauthKey, err)
	}
	r.fields[oauthKey] = merged

	return nil
}

// Save writes the document atomically (temp file + rename). The previous
// file content stays intact on every failure path.
func (r *Record) Save(path string) error {
	jsonData, err := json.MarshalIndent(r.fields, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	// Create temp file in same directory
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".credentials-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure temp file cleanup on error
	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	// Write to temp file
	if _, err := tempFile.Write(jsonData); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	// Sync to disk
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	// Close temp file
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tempFile = nil // Prevent deferred cleanup

	// Atomic rename
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
