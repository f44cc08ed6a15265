package output

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Reporter writes the user-visible outcome lines. Informational lines
// (OK/INFO/WARN) go to the out stream, errors to the err stream.
type Reporter struct {
	out *logrus.Logger
	err *logrus.Logger
}

// lineFormatter renders every entry as a single "PREFIX: message" line
type lineFormatter struct{}

func (lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	prefix := "INFO"
	switch {
	case entry.Level == logrus.ErrorLevel:
		prefix = "ERROR"
	case entry.Level == logrus.WarnLevel:
		prefix = "WARN"
	case entry.Data["ok"] == true:
		prefix = "OK"
	}
	return []byte(prefix + ": " + entry.Message + "\n"), nil
}

// New creates a reporter on the process standard streams
func New() *Reporter {
	return NewWriters(os.Stdout, os.Stderr)
}

// NewWriters creates a reporter with explicit streams
func NewWriters(out, err io.Writer) *Reporter {
	return &Reporter{
		out: newLogger(out),
		err: newLogger(err),
	}
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(lineFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Okf reports a successful outcome
func (r *Reporter) Okf(format string, args ...interface{}) {
	r.out.WithField("ok", true).Infof(format, args...)
}

// Infof reports progress
func (r *Reporter) Infof(format string, args ...interface{}) {
	r.out.Infof(format, args...)
}

// Warnf reports an abnormal condition that does not stop the operation
func (r *Reporter) Warnf(format string, args ...interface{}) {
	r.out.Warnf(format, args...)
}

// Errorf reports a fatal error
func (r *Reporter) Errorf(format string, args ...interface{}) {
	r.err.Errorf(format, args...)
}
