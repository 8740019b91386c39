package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultFontURL serves a TrueType font with Hangul coverage.
const DefaultFontURL = "https://github.com/google/fonts/raw/main/ofl/nanumgothic/NanumGothic-Regular.ttf"

// maxResourceSize caps the download so a misconfigured URL cannot exhaust
// memory.
const maxResourceSize = 32 << 20

// FetchFunc retrieves the raw resource bytes for url.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// HTTPFetch returns a FetchFunc issuing a single GET with client. Any
// status other than 200 is an error. A nil client means
// http.DefaultClient, so the request is bounded only by ctx.
func HTTPFetch(client *http.Client) FetchFunc {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context, url string) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceSize+1))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", url, err)
		}
		if len(data) > maxResourceSize {
			return nil, fmt.Errorf("resource at %s exceeds %d bytes", url, maxResourceSize)
		}
		return data, nil
	}
}

// DefaultFetch serves http(s) URLs over the network and anything else
// (a plain path or a file:// URL) from the local filesystem.
func DefaultFetch() FetchFunc {
	httpFetch := HTTPFetch(nil)
	return func(ctx context.Context, url string) ([]byte, error) {
		if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
			return httpFetch(ctx, url)
		}
		return os.ReadFile(strings.TrimPrefix(url, "file://"))
	}
}

// verifyChecksum compares the SHA-256 of data against a hex digest.
func verifyChecksum(data []byte, expected string) error {
	sum := sha256.Sum256(data)
	actual := hex.EncodeToString(sum[:])
	if !strings.EqualFold(actual, strings.TrimSpace(expected)) {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expected, actual)
	}
	return nil
}
