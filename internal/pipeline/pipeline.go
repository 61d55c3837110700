package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/Rana718/mockseed/internal/catalog"
	"github.com/Rana718/mockseed/internal/config"
	"github.com/Rana718/mockseed/internal/dialect"
	"github.com/Rana718/mockseed/internal/generator"
	"github.com/Rana718/mockseed/internal/images"
	"github.com/Rana718/mockseed/internal/sqlfile"
	"github.com/spf13/afero"
)

const ToolName = "mockseed"

// Reporter receives the console output of a run.
type Reporter interface {
	images.Reporter
	Phase(format string, args ...interface{})
	Done(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

type Result struct {
	Images     images.Summary
	Products   int
	Statements int
	Output     string
}

type Pipeline struct {
	cfg      *config.Config
	fs       afero.Fs
	client   images.Doer
	sleep    func(time.Duration)
	now      func() time.Time
	reporter Reporter
	seller   dialect.Seller

	catalog   *catalog.Catalog
	dialect   dialect.Dialect
	generator *generator.Generator
}

type Option func(*Pipeline)

func WithFS(fs afero.Fs) Option              { return func(p *Pipeline) { p.fs = fs } }
func WithHTTPClient(c images.Doer) Option    { return func(p *Pipeline) { p.client = c } }
func WithSleep(s func(time.Duration)) Option { return func(p *Pipeline) { p.sleep = s } }
func WithClock(now func() time.Time) Option  { return func(p *Pipeline) { p.now = now } }
func WithReporter(r Reporter) Option         { return func(p *Pipeline) { p.reporter = r } }
func WithSeller(s dialect.Seller) Option     { return func(p *Pipeline) { p.seller = s } }

// New resolves the catalog, dialect and generator described by cfg.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	p := &Pipeline{
		cfg:      cfg,
		fs:       afero.NewOsFs(),
		sleep:    time.Sleep,
		now:      time.Now,
		reporter: nopReporter{},
		seller:   dialect.DefaultSeller(),
	}
	for _, opt := range opts {
		opt(p)
	}

	cat := catalog.Default()
	if cfg.Catalog != "" {
		loaded, err := catalog.LoadFile(p.fs, cfg.Catalog)
		if err != nil {
			return nil, err
		}
		cat = loaded
	}
	p.catalog = cat

	d, err := cfg.GetDialect()
	if err != nil {
		return nil, err
	}
	p.dialect = d

	genOpts := []generator.Option{generator.WithClock(p.now)}
	if cfg.Seed != 0 {
		genOpts = append(genOpts, generator.WithSeed(cfg.Seed))
	}
	p.generator = generator.New(cat, genOpts...)

	return p, nil
}

// Run downloads the images, then renders and writes the SQL file.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	var result Result

	if p.cfg.SkipImages {
		p.reporter.Warn("skipping image download")
	} else {
		summary, err := p.FetchImages(ctx)
		if err != nil {
			return result, err
		}
		result.Images = summary
	}

	written, err := p.WriteSQL()
	if err != nil {
		return result, err
	}
	written.Images = result.Images

	return written, nil
}

func (p *Pipeline) FetchImages(ctx context.Context) (images.Summary, error) {
	p.reporter.Phase("downloading %d test images to %s...", p.cfg.Count, p.cfg.ImageDir)

	opts := []images.Option{
		images.WithBaseURL(p.cfg.Images.BaseURL),
		images.WithTimeout(p.cfg.Images.Timeout),
		images.WithDelay(p.cfg.Images.Delay),
		images.WithSleep(p.sleep),
		images.WithReporter(p.reporter),
	}
	if p.client != nil {
		opts = append(opts, images.WithClient(p.client))
	}

	summary, err := images.NewFetcher(p.fs, opts...).Fetch(ctx, p.cfg.ImageDir, p.cfg.Count)
	if err != nil {
		return summary, err
	}

	p.reporter.Done("images done: %d downloaded, %d skipped, %d failed", summary.Downloaded, summary.Skipped, summary.Failed)
	return summary, nil
}

// Document generates the records and renders them with the configured dialect.
func (p *Pipeline) Document() sqlfile.Document {
	records := p.generator.Generate(p.cfg.Count)

	products := make([]string, 0, len(records))
	for _, r := range records {
		products = append(products, p.dialect.Product(r, p.seller.ID))
	}

	return sqlfile.Document{
		Tool:        ToolName,
		GeneratedAt: p.now(),
		SellerID:    p.seller.ID,
		Bootstrap:   p.dialect.Bootstrap(p.seller),
		Products:    products,
	}
}

func (p *Pipeline) WriteSQL() (Result, error) {
	p.reporter.Phase("generating %s SQL for %d products...", p.dialect.Name(), p.cfg.Count)

	doc := p.Document()
	if err := sqlfile.Write(p.fs, p.cfg.Output, doc); err != nil {
		return Result{}, err
	}

	p.reporter.Done("SQL file written: %s", p.cfg.Output)

	return Result{
		Products:   len(doc.Products),
		Statements: len(doc.Bootstrap) + len(doc.Products),
		Output:     p.cfg.Output,
	}, nil
}

func (p *Pipeline) Catalog() *catalog.Catalog { return p.catalog }
func (p *Pipeline) Dialect() dialect.Dialect  { return p.dialect }

type nopReporter struct{}

func (nopReporter) Downloading(string)           {}
func (nopReporter) Skipped(string)               {}
func (nopReporter) Failed(string, error)         {}
func (nopReporter) Phase(string, ...interface{}) {}
func (nopReporter) Done(string, ...interface{})  {}
func (nopReporter) Warn(string, ...interface{})  {}
