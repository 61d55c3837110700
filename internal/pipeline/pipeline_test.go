package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Rana718/mockseed/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type failingClient struct{ calls int }

func (c *failingClient) Do(*http.Request) (*http.Response, error) {
	c.calls++
	return nil, errors.New("network unreachable")
}

type recorder struct {
	lines []string
}

func (r *recorder) Downloading(name string)     { r.add("download " + name) }
func (r *recorder) Skipped(name string)         { r.add("skip " + name) }
func (r *recorder) Failed(name string, _ error) { r.add("fail " + name) }
func (r *recorder) Phase(f string, a ...interface{}) {
	r.add("phase " + fmt.Sprintf(f, a...))
}
func (r *recorder) Done(f string, a ...interface{}) { r.add("done " + fmt.Sprintf(f, a...)) }
func (r *recorder) Warn(f string, a ...interface{}) { r.add("warn " + fmt.Sprintf(f, a...)) }

func (r *recorder) add(line string) { r.lines = append(r.lines, line) }

func (r *recorder) count(prefix string) int {
	n := 0
	for _, l := range r.lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func testConfig(t *testing.T, count int) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	cfg.Count = count
	cfg.ImageDir = "uploads"
	cfg.Output = "mock_data.sql"
	cfg.Seed = 1
	return cfg
}

func readOutput(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestRunWritesNPlusTwoInserts(t *testing.T) {
	for _, n := range []int{1, 7, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			fs := afero.NewMemMapFs()
			cfg := testConfig(t, n)
			cfg.SkipImages = true

			p, err := New(cfg, WithFS(fs), WithClock(func() time.Time { return fixedNow }))
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			result, err := p.Run(context.Background())
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			out := readOutput(t, fs, "mock_data.sql")
			if got := strings.Count(out, "INSERT INTO"); got != n+2 {
				t.Errorf("expected %d INSERT statements, got %d", n+2, got)
			}
			if result.Statements != n+2 || result.Products != n {
				t.Errorf("unexpected result: %+v", result)
			}
		})
	}
}

func TestRunSurvivesNetworkFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := testConfig(t, 4)
	client := &failingClient{}
	rec := &recorder{}

	p, err := New(cfg,
		WithFS(fs),
		WithHTTPClient(client),
		WithSleep(func(time.Duration) {}),
		WithReporter(rec),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run should not fail on image errors: %v", err)
	}

	if client.calls != 4 {
		t.Errorf("expected 4 download attempts, got %d", client.calls)
	}
	if result.Images.Failed != 4 || rec.count("fail ") != 4 {
		t.Errorf("expected 4 reported failures, got %+v / %d", result.Images, rec.count("fail "))
	}

	entries, err := afero.ReadDir(fs, "uploads")
	if err != nil {
		t.Fatalf("image dir should exist: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("image dir should stay empty, found %d files", len(entries))
	}

	out := readOutput(t, fs, "mock_data.sql")
	if strings.Count(out, "INSERT INTO") != 6 {
		t.Errorf("SQL file should still be generated:\n%s", out)
	}
	if !strings.Contains(out, "'/uploads/product_004.jpg'") {
		t.Error("cover urls are kept even when the image is missing")
	}
}

func TestRunSkipsExistingImages(t *testing.T) {
	fs := afero.NewMemMapFs()
	for i := 1; i <= 5; i++ {
		afero.WriteFile(fs, fmt.Sprintf("uploads/product_%03d.jpg", i), []byte("jpg"), 0644)
	}

	client := &failingClient{}
	rec := &recorder{}
	p, err := New(testConfig(t, 5), WithFS(fs), WithHTTPClient(client), WithReporter(rec))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if client.calls != 0 {
		t.Errorf("expected zero network requests, got %d", client.calls)
	}
	if rec.count("skip ") != 5 {
		t.Errorf("expected 5 skip notices, got %d", rec.count("skip "))
	}
}

func TestSingleRecordScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := testConfig(t, 1)
	cfg.SkipImages = true
	cfg.Seed = 2024

	p, err := New(cfg, WithFS(fs))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := readOutput(t, fs, "mock_data.sql")
	if strings.Count(out, "INSERT INTO products") != 1 {
		t.Fatalf("expected one product insert:\n%s", out)
	}
	if !strings.Contains(out, "'/uploads/product_001.jpg'") {
		t.Error("product should reference /uploads/product_001.jpg")
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	render := func() string {
		fs := afero.NewMemMapFs()
		cfg := testConfig(t, 10)
		cfg.SkipImages = true
		p, err := New(cfg, WithFS(fs), WithClock(func() time.Time { return fixedNow }))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if _, err := p.Run(context.Background()); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return readOutput(t, fs, "mock_data.sql")
	}

	if render() != render() {
		t.Error("same seed and clock should produce the same file")
	}
}

func TestWriteFailureIsFatal(t *testing.T) {
	cfg := testConfig(t, 3)
	cfg.SkipImages = true
	cfg.Output = "readonly/mock_data.sql"

	p, err := New(cfg, WithFS(afero.NewReadOnlyFs(afero.NewMemMapFs())))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = p.Run(context.Background())
	if err == nil {
		t.Fatal("expected write failure")
	}
	if !strings.Contains(err.Error(), "readonly/mock_data.sql") {
		t.Errorf("error should identify the output path: %v", err)
	}
}

func TestDialectAndCatalogFromConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "catalog.yaml", []byte(`templates:
  - name: "Kindle Paperwhite"
    category_id: 1
    price_range: [500, 900]
    keywords: [阅读器]
`), 0644)

	cfg := testConfig(t, 3)
	cfg.SkipImages = true
	cfg.Dialect = "sqlite"
	cfg.Catalog = "catalog.yaml"

	p, err := New(cfg, WithFS(fs))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.Dialect().Name() != "sqlite" {
		t.Errorf("expected sqlite dialect, got %s", p.Dialect().Name())
	}

	doc := p.Document()
	for _, stmt := range doc.Products {
		if !strings.Contains(stmt, "'Kindle Paperwhite'") {
			t.Errorf("product should come from the catalog file:\n%s", stmt)
		}
		if !strings.Contains(stmt, "datetime('now')") {
			t.Errorf("expected sqlite timestamps:\n%s", stmt)
		}
	}
	if !strings.HasPrefix(doc.Bootstrap[0], "INSERT OR IGNORE INTO user_accounts") {
		t.Errorf("unexpected sqlite bootstrap: %s", doc.Bootstrap[0])
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t, 0)
	if _, err := New(cfg); err == nil {
		t.Error("expected error for zero count")
	}

	cfg = testConfig(t, 1)
	cfg.Catalog = "missing.yaml"
	if _, err := New(cfg, WithFS(afero.NewMemMapFs())); err == nil {
		t.Error("expected error for missing catalog file")
	}
}
