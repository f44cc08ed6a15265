package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_Prefixes(t *testing.T) {
	var out, errOut bytes.Buffer
	rep := NewWriters(&out, &errOut)

	rep.Okf("Token refreshed, valid for %.1fh", 8.0)
	rep.Infof("Token expires in %.1fh, refreshing proactively", 1.4)
	rep.Warnf("Token EXPIRED %.1fh ago, trying refresh", 0.3)

	want := "OK: Token refreshed, valid for 8.0h\n" +
		"INFO: Token expires in 1.4h, refreshing proactively\n" +
		"WARN: Token EXPIRED 0.3h ago, trying refresh\n"
	assert.Equal(t, want, out.String())
	assert.Empty(t, errOut.String())
}

func TestReporter_ErrorStream(t *testing.T) {
	var out, errOut bytes.Buffer
	rep := NewWriters(&out, &errOut)

	rep.Errorf("Refresh request failed: %v", "connection refused")

	assert.Empty(t, out.String())
	assert.Equal(t, "ERROR: Refresh request failed: connection refused\n", errOut.String())
}
