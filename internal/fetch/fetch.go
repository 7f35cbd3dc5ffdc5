// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads remote source documents over HTTP, so the
// converter can accept http(s) URLs as input.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/wordmark/pkg/types"
)

// docxMIME is the content type of .docx files.
const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// IsRemote reports whether the input names an HTTP(S) resource rather
// than a local file.
func IsRemote(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// Filename derives a local filename from a document URL, falling back
// to "document.docx" when the URL path has no usable basename.
func Filename(url string) string {
	base := filepath.Base(strings.TrimSuffix(url, "/"))
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	if base == "" || base == "." || base == "/" || !strings.Contains(base, ".") {
		return "document.docx"
	}
	return base
}

// Download fetches url into destPath. The download goes through a
// temp file and an atomic rename, so a partial transfer never leaves a
// truncated document behind. Rate-limited responses are retried with
// exponential backoff.
func Download(ctx context.Context, client *http.Client, url, destPath string, cfg types.FetchConfig) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", docxMIME)

	resp, err := DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
