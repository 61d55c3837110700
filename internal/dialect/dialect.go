package dialect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rana718/mockseed/internal/generator"
	"github.com/lib/pq"
)

// StatusActive is the products.status value of a listing that is on sale.
const StatusActive = 1

// searchExcerptRunes is how much of the description goes into search_text.
const searchExcerptRunes = 100

// Seller is the account every generated product belongs to.
type Seller struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	PasswordAlgo string
	Status       int
	Nickname     string
}

func DefaultSeller() Seller {
	return Seller{
		ID:           1,
		Username:     "test_seller",
		Email:        "seller@test.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=1$test",
		PasswordAlgo: "argon2",
		Status:       1,
		Nickname:     "测试卖家",
	}
}

// Dialect renders seed statements for one database engine.
type Dialect interface {
	Name() string
	Quote(s string) string
	Bootstrap(s Seller) []string
	Product(r generator.Record, sellerID int64) string
}

type flavor struct {
	name string
	// quote turns a Go string into a SQL string literal.
	quote func(string) string
	// column quotes identifiers the engine reserves.
	column func(string) string
	insert string
	// conflict is appended to bootstrap inserts, keyed by the unique column.
	conflict  func(key string) string
	createdAt func(daysAgo int) string
	now       string
}

var (
	Postgres Dialect = &flavor{
		name:      "postgres",
		quote:     pq.QuoteLiteral,
		column:    func(c string) string { return c },
		insert:    "INSERT INTO",
		conflict:  func(key string) string { return fmt.Sprintf("\nON CONFLICT (%s) DO NOTHING", key) },
		createdAt: func(days int) string { return fmt.Sprintf("NOW() - INTERVAL '%d days'", days) },
		now:       "NOW()",
	}

	MySQL Dialect = &flavor{
		name:  "mysql",
		quote: mysqlQuote,
		column: func(c string) string {
			if c == "condition" || c == "status" {
				return "`" + c + "`"
			}
			return c
		},
		insert:    "INSERT IGNORE INTO",
		conflict:  func(string) string { return "" },
		createdAt: func(days int) string { return fmt.Sprintf("NOW() - INTERVAL %d DAY", days) },
		now:       "NOW()",
	}

	SQLite Dialect = &flavor{
		name:      "sqlite",
		quote:     Escape,
		column:    func(c string) string { return c },
		insert:    "INSERT OR IGNORE INTO",
		conflict:  func(string) string { return "" },
		createdAt: func(days int) string { return fmt.Sprintf("datetime('now', '-%d days')", days) },
		now:       "datetime('now')",
	}
)

var byName = map[string]Dialect{
	"postgres":   Postgres,
	"postgresql": Postgres,
	"mysql":      MySQL,
	"sqlite":     SQLite,
	"sqlite3":    SQLite,
}

// Names lists the canonical dialect names.
func Names() []string {
	return []string{"postgres", "mysql", "sqlite"}
}

func Lookup(name string) (Dialect, error) {
	d, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect: %s. Supported dialects: %v", name, Names())
	}
	return d, nil
}

// Escape wraps s in single quotes, doubling every quote inside it.
func Escape(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func mysqlQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return Escape(s)
}

func (f *flavor) Name() string          { return f.name }
func (f *flavor) Quote(s string) string { return f.quote(s) }

func (f *flavor) Bootstrap(s Seller) []string {
	account := fmt.Sprintf("%s user_accounts (id, username, email, password_hash, password_algo, %s)\nVALUES (%d, %s, %s, %s, %s, %d)%s;",
		f.insert, f.column("status"),
		s.ID, f.quote(s.Username), f.quote(s.Email), f.quote(s.PasswordHash), f.quote(s.PasswordAlgo), s.Status,
		f.conflict("id"),
	)

	profile := fmt.Sprintf("%s user_profiles (user_id, nickname)\nVALUES (%d, %s)%s;",
		f.insert, s.ID, f.quote(s.Nickname), f.conflict("user_id"),
	)

	return []string{account, profile}
}

func (f *flavor) Product(r generator.Record, sellerID int64) string {
	columns := []string{
		"seller_id", "title", "cover_url", "description", "price", "original_price", "category_id",
		f.column("condition"), f.column("status"), "location", "view_count", "search_text", "created_at", "updated_at",
	}

	values := []string{
		strconv.FormatInt(sellerID, 10),
		f.quote(r.Title()),
		f.quote(r.CoverURL),
		f.quote(r.Description),
		FormatPrice(r.Price),
		FormatPrice(r.OriginalPrice),
		strconv.Itoa(r.CategoryID()),
		strconv.Itoa(r.Condition),
		strconv.Itoa(StatusActive),
		f.quote(r.Location),
		strconv.Itoa(r.ViewCount),
		f.quote(SearchText(r)),
		f.createdAt(r.CreatedDaysAgo),
		f.now,
	}

	return fmt.Sprintf("INSERT INTO products (%s)\nVALUES (%s);", strings.Join(columns, ", "), strings.Join(values, ", "))
}

// SearchText is the unquoted search_text value: the title followed by the
// start of the description. The excerpt is cut before quoting so an escaped
// quote pair is never split.
func SearchText(r generator.Record) string {
	excerpt := r.Description
	if runes := []rune(excerpt); len(runes) > searchExcerptRunes {
		excerpt = string(runes[:searchExcerptRunes])
	}
	return r.Title() + " " + excerpt
}

func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
