package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const (
	DefaultBaseURL   = "https://picsum.photos"
	DefaultUserAgent = "Mozilla/5.0"
	DefaultTimeout   = 30 * time.Second
	DefaultDelay     = 500 * time.Millisecond

	// URLPrefix is where the backend serves the upload directory.
	URLPrefix = "/uploads"
)

// Filename is the on-disk name of the image for the 1-based index i.
func Filename(i int) string {
	return fmt.Sprintf("product_%03d.jpg", i)
}

// CoverURL is the path stored on the product row that owns image i.
func CoverURL(i int) string {
	return path.Join(URLPrefix, Filename(i))
}

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Reporter receives per-image progress. Implementations must not block.
type Reporter interface {
	Downloading(name string)
	Skipped(name string)
	Failed(name string, err error)
}

type Summary struct {
	Downloaded int
	Skipped    int
	Failed     int
}

type Fetcher struct {
	fs        afero.Fs
	client    Doer
	baseURL   string
	userAgent string
	timeout   time.Duration
	delay     time.Duration
	sleep     func(time.Duration)
	reporter  Reporter
}

type Option func(*Fetcher)

func WithClient(c Doer) Option               { return func(f *Fetcher) { f.client = c } }
func WithBaseURL(u string) Option            { return func(f *Fetcher) { f.baseURL = strings.TrimRight(u, "/") } }
func WithTimeout(d time.Duration) Option     { return func(f *Fetcher) { f.timeout = d } }
func WithDelay(d time.Duration) Option       { return func(f *Fetcher) { f.delay = d } }
func WithSleep(s func(time.Duration)) Option { return func(f *Fetcher) { f.sleep = s } }
func WithReporter(r Reporter) Option         { return func(f *Fetcher) { f.reporter = r } }

func NewFetcher(fs afero.Fs, opts ...Option) *Fetcher {
	f := &Fetcher{
		fs:        fs,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		delay:     DefaultDelay,
		sleep:     time.Sleep,
		reporter:  nopReporter{},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	return f
}

// URL is the random-image endpoint for index i. The index is passed as the
// random parameter so every product gets a different picture.
func (f *Fetcher) URL(i int) string {
	return fmt.Sprintf("%s/400/300?random=%d", f.baseURL, i)
}

// Fetch downloads images 1..n into dir one at a time. Existing files are left
// untouched and failed downloads are reported and skipped; only a failure to
// create dir is returned as an error.
func (f *Fetcher) Fetch(ctx context.Context, dir string, n int) (Summary, error) {
	var summary Summary

	if err := f.fs.MkdirAll(dir, 0755); err != nil {
		return summary, fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}

	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		name := Filename(i)
		target := filepath.Join(dir, name)

		exists, err := afero.Exists(f.fs, target)
		if err == nil && exists {
			f.reporter.Skipped(name)
			summary.Skipped++
			continue
		}

		f.reporter.Downloading(name)
		if err := f.download(ctx, f.URL(i), target); err != nil {
			f.reporter.Failed(name, err)
			summary.Failed++
		} else {
			summary.Downloaded++
		}

		if i < n && f.delay > 0 {
			f.sleep(f.delay)
		}
	}

	return summary, nil
}

func (f *Fetcher) download(ctx context.Context, url, target string) error {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	// Buffer the body so a broken transfer never leaves a truncated image behind.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := afero.WriteFile(f.fs, target, body, 0644); err != nil {
		f.fs.Remove(target)
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	return nil
}

type nopReporter struct{}

func (nopReporter) Downloading(string)   {}
func (nopReporter) Skipped(string)       {}
func (nopReporter) Failed(string, error) {}
