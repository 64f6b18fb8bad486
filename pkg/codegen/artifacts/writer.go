// Package artifacts writes rendered artifacts with per-extension line ending policies
// and content hashes.
package artifacts

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var trailingBlanks = regexp.MustCompile(`(?m)[ \t]+$`)

// Writer persists rendered artifacts. It keeps no state between writes and
// takes no locks; callers write sequentially.
type Writer struct {
	config *Config
}

// NewWriter creates a writer. A nil config uses DefaultConfig.
func NewWriter(config *Config) *Writer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Writer{config: config}
}

// PolicyFor returns the policy applied to a path
func (w *Writer) PolicyFor(path string) Policy {
	if p, ok := w.config.Policies[filepath.Ext(path)]; ok {
		return p
	}
	return PolicyPlatform
}

// Write normalizes content, substitutes the content hash for every hash
// placeholder and writes it to path, creating parent directories as needed.
func (w *Writer) Write(path, content string, mode Mode) (*WriteResult, error) {
	var flags int
	switch mode {
	case ModeOverwrite:
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	case ModeAppend:
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, mode)
	}

	policy := w.PolicyFor(path)
	normalized := Normalize(content, policy)
	hash := ContentHash(normalized)
	final := strings.ReplaceAll(normalized, HashPlaceholder, hash)
	if policy == PolicyPlatform && w.config.LineSeparator != "\n" {
		final = strings.ReplaceAll(final, "\n", w.config.LineSeparator)
	}

	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(w.config.DirMode)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	f, err := os.OpenFile(path, flags, os.FileMode(w.config.FileMode))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}
	n, err := f.WriteString(final)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	return &WriteResult{
		Path:  path,
		Mode:  mode,
		Hash:  hash,
		Bytes: n,
	}, nil
}

// Normalize applies a policy's content rules. Line separator conversion happens
// on write and is not part of normalization.
func Normalize(content string, policy Policy) string {
	if policy != PolicyStrict {
		return content
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = trailingBlanks.ReplaceAllString(content, "")
	return strings.TrimRight(content, "\n") + "\n"
}

// ContentHash returns the MD5 hex digest of content with every hash
// placeholder removed
func ContentHash(content string) string {
	sum := md5.Sum([]byte(strings.ReplaceAll(content, HashPlaceholder, "")))
	return hex.EncodeToString(sum[:])
}

// VerifyHash checks that hash is the content hash of an artifact written with
// it substituted. Content must use LF line endings.
func VerifyHash(content, hash string) error {
	if !strings.Contains(content, hash) {
		return fmt.Errorf("%w: hash %s not present", ErrChecksumMismatch, hash)
	}
	if got := ContentHash(strings.ReplaceAll(content, hash, "")); got != hash {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksumMismatch, hash, got)
	}
	return nil
}
