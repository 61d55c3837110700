package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/Rana718/mockseed/internal/catalog"
	"github.com/Rana718/mockseed/internal/images"
)

// Conditions is the set of condition scores a listing can carry (10 = brand new).
var Conditions = []int{7, 8, 9, 10}

const (
	minMarkup = 1.1
	maxMarkup = 1.5

	minPurchaseDaysAgo = 30
	maxPurchaseDaysAgo = 730

	minCreatedDaysAgo = 1
	maxCreatedDaysAgo = 30

	maxViewCount = 500
)

// Record is one synthetic product listing.
type Record struct {
	Index          int
	Template       catalog.Template
	Price          float64
	OriginalPrice  float64
	Condition      int
	Description    string
	CoverURL       string
	Location       string
	ViewCount      int
	CreatedDaysAgo int
	PurchaseDate   time.Time
}

func (r Record) Title() string   { return r.Template.Name }
func (r Record) CategoryID() int { return r.Template.CategoryID }

type Generator struct {
	rand    *rand.Rand
	now     func() time.Time
	catalog *catalog.Catalog
}

type Option func(*Generator)

// WithSeed makes the generated records reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rand = rand.New(rand.NewSource(seed)) }
}

func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rand = r }
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func New(cat *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
		catalog: cat,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns n records indexed 1..n.
func (g *Generator) Generate(n int) []Record {
	records := make([]Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, g.Next(i))
	}
	return records
}

// Next builds the record for the 1-based index. The order of random draws is
// fixed so a seeded generator always yields the same sequence.
func (g *Generator) Next(index int) Record {
	tmpl := g.catalog.Templates[g.rand.Intn(len(g.catalog.Templates))]

	price := round2(g.uniform(tmpl.PriceRange.Low(), tmpl.PriceRange.High()))
	original := round2(price * g.uniform(minMarkup, maxMarkup))
	if original < price {
		original = price
	}

	condition := Conditions[g.rand.Intn(len(Conditions))]

	purchased := g.now().AddDate(0, 0, -g.between(minPurchaseDaysAgo, maxPurchaseDaysAgo))
	description := renderDescription(descriptionFields{
		ProductName:  tmpl.Name,
		TimeUsed:     g.pick(g.catalog.TimeUsed),
		Condition:    g.pick(g.catalog.Conditions),
		Brand:        tmpl.Brand(),
		Channel:      g.pick(g.catalog.Channels),
		PurchaseDate: purchased.Format(purchaseDateLayout),
		Frequency:    g.pick(g.catalog.Frequencies),
		StatusDetail: g.pick(g.catalog.StatusDetails),
		SellReason:   g.pick(g.catalog.SellReasons),
		ExtraInfo:    g.pick(g.catalog.ExtraInfos),
	})

	return Record{
		Index:          index,
		Template:       tmpl,
		Price:          price,
		OriginalPrice:  original,
		Condition:      condition,
		Description:    description,
		CoverURL:       images.CoverURL(index),
		Location:       g.pick(g.catalog.Locations),
		ViewCount:      g.rand.Intn(maxViewCount + 1),
		CreatedDaysAgo: g.between(minCreatedDaysAgo, maxCreatedDaysAgo),
		PurchaseDate:   purchased,
	}
}

func (g *Generator) pick(values []string) string {
	return values[g.rand.Intn(len(values))]
}

func (g *Generator) uniform(low, high float64) float64 {
	return low + (high-low)*g.rand.Float64()
}

// between returns an int in [low, high].
func (g *Generator) between(low, high int) int {
	return low + g.rand.Intn(high-low+1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
