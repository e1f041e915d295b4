package logger

import (
	"io"
	"regexp"
)

// Redactor redacts sensitive information from logs
type Redactor struct {
	patterns []*regexp.Regexp
}

// NewRedactor creates a new redactor with default patterns
func NewRedactor() *Redactor {
	return &Redactor{
		patterns: []*regexp.Regexp{
			// Bearer credentials, however they got into a message
			regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._~+/-]+=*`),

			// Authorization header dumps
			regexp.MustCompile(`(?i)authorization["\s:=]+[^\s",]+`),

			// Auth token assignments (AUTH_TOKEN=..., token: "...")
			regexp.MustCompile(`(?i)auth_token["\s:=]+[^\s"]+`),
			regexp.MustCompile(`(?i)token["\s:=]+[a-zA-Z0-9._-]{8,}`),

			// Generic secrets
			regexp.MustCompile(`(?i)secret["\s:=]+[^\s"]+`),
			regexp.MustCompile(`(?i)password["\s:=]+[^\s"]+`),

			// API keys
			regexp.MustCompile(`sk-[a-zA-Z0-9_-]{20,}`),
		},
	}
}

// AddPattern adds a custom redaction pattern
func (r *Redactor) AddPattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	r.patterns = append(r.patterns, re)
	return nil
}

// Redact redacts sensitive information from a string
func (r *Redactor) Redact(s string) string {
	result := s
	for _, pattern := range r.patterns {
		result = pattern.ReplaceAllString(result, "[REDACTED]")
	}
	return result
}

// Wrap returns a writer that redacts everything written through it
func (r *Redactor) Wrap(w io.Writer) io.Writer {
	return &redactingWriter{redactor: r, out: w}
}

type redactingWriter struct {
	redactor *Redactor
	out      io.Writer
}

func (w *redactingWriter) Write(p []byte) (int, error) {
	redacted := w.redactor.Redact(string(p))
	if _, err := w.out.Write([]byte(redacted)); err != nil {
		return 0, err
	}
	// Report the original length so callers never see a short write.
	return len(p), nil
}
