package dictgen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const jmdictURL = "https://gitlab.com/jgrind/jmdict/-/raw/main/jmdict.jsonl?ref_type=heads"

var downloadClient = &http.Client{Timeout: 5 * time.Minute}

// EnsureJMdict returns the path to jmdict.jsonl inside dir, downloading it
// first when it is missing or refresh is set.
func EnsureJMdict(ctx context.Context, dir string, refresh bool) (string, error) {
	path := filepath.Join(dir, "jmdict.jsonl")
	if _, err := os.Stat(path); err == nil && !refresh {
		return path, nil
	}
	if err := downloadJMdict(ctx, path); err != nil {
		return "", err
	}
	return path, nil
}

func downloadJMdict(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jmdictURL, nil)
	if err != nil {
		return err
	}
	resp, err := downloadClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading jmdict: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading jmdict: unexpected status %s", resp.Status)
	}

	// Write to a temp file first so a failed download never clobbers a
	// usable cached copy.
	tmp, err := os.CreateTemp(filepath.Dir(path), "jmdict-*.jsonl")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("saving jmdict: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
