package database

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Rana718/mockseed/internal/catalog"
	"github.com/Rana718/mockseed/internal/dialect"
	"github.com/Rana718/mockseed/internal/generator"
	"github.com/Rana718/mockseed/internal/sqlfile"
)

const testSchema = `
CREATE TABLE user_accounts (
	id INTEGER PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	password_algo TEXT NOT NULL,
	status INTEGER NOT NULL
);
CREATE TABLE user_profiles (
	user_id INTEGER PRIMARY KEY,
	nickname TEXT NOT NULL
);
CREATE TABLE products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	seller_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	cover_url TEXT NOT NULL,
	description TEXT NOT NULL,
	price REAL NOT NULL,
	original_price REAL NOT NULL,
	category_id INTEGER NOT NULL,
	condition INTEGER NOT NULL,
	status INTEGER NOT NULL,
	location TEXT NOT NULL,
	view_count INTEGER NOT NULL,
	search_text TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

func seedScript(n int) string {
	gen := generator.New(catalog.Default(), generator.WithSeed(3))
	seller := dialect.DefaultSeller()

	doc := sqlfile.Document{
		Tool:        "mockseed",
		GeneratedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		SellerID:    seller.ID,
		Bootstrap:   dialect.SQLite.Bootstrap(seller),
	}
	for _, r := range gen.Generate(n) {
		doc.Products = append(doc.Products, dialect.SQLite.Product(r, seller.ID))
	}
	return doc.Render()
}

func openSQLite(t *testing.T) Adapter {
	t.Helper()
	adapter, err := NewAdapter("sqlite")
	if err != nil {
		t.Fatalf("NewAdapter() error = %v", err)
	}

	ctx := context.Background()
	url := "sqlite://" + filepath.Join(t.TempDir(), "seed.db")
	if err := adapter.Connect(ctx, url); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { adapter.Close() })

	if _, err := Apply(ctx, adapter, testSchema, nil); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return adapter
}

func TestApplySeedScriptToSQLite(t *testing.T) {
	ctx := context.Background()
	adapter := openSQLite(t)

	const n = 12
	var calls int
	executed, err := Apply(ctx, adapter, seedScript(n), func(index, total int) {
		calls++
		if total != n+2 {
			t.Errorf("progress total = %d, want %d", total, n+2)
		}
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if executed != n+2 {
		t.Errorf("executed = %d, want %d", executed, n+2)
	}
	if calls != n+2 {
		t.Errorf("progress called %d times, want %d", calls, n+2)
	}

	count, err := adapter.CountProducts(ctx, dialect.DefaultSeller().ID)
	if err != nil {
		t.Fatalf("CountProducts() error = %v", err)
	}
	if count != n {
		t.Errorf("CountProducts() = %d, want %d", count, n)
	}
}

func TestApplyTwiceKeepsSingleSeller(t *testing.T) {
	ctx := context.Background()
	adapter := openSQLite(t)
	script := seedScript(3)

	for i := 0; i < 2; i++ {
		if _, err := Apply(ctx, adapter, script, nil); err != nil {
			t.Fatalf("Apply() run %d error = %v", i+1, err)
		}
	}

	count, err := adapter.CountProducts(ctx, dialect.DefaultSeller().ID)
	if err != nil {
		t.Fatalf("CountProducts() error = %v", err)
	}
	if count != 6 {
		t.Errorf("CountProducts() = %d, want 6", count)
	}
}

type stubAdapter struct {
	failAt   int
	executed []string
}

func (s *stubAdapter) Connect(context.Context, string) error { return nil }
func (s *stubAdapter) Close() error                          { return nil }
func (s *stubAdapter) Ping(context.Context) error            { return nil }

func (s *stubAdapter) Exec(_ context.Context, statement string) error {
	if len(s.executed)+1 == s.failAt {
		return errors.New("boom")
	}
	s.executed = append(s.executed, statement)
	return nil
}

func (s *stubAdapter) CountProducts(context.Context, int64) (int64, error) {
	return int64(len(s.executed)), nil
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	stub := &stubAdapter{failAt: 2}
	executed, err := Apply(context.Background(), stub, "SELECT 1; SELECT 2; SELECT 3;", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "statement 2") {
		t.Errorf("error = %v, want mention of statement 2", err)
	}
	if executed != 1 {
		t.Errorf("executed = %d, want 1", executed)
	}
	if len(stub.executed) != 1 {
		t.Errorf("adapter ran %d statements, want 1", len(stub.executed))
	}
}

func TestApplyRejectsEmptyScript(t *testing.T) {
	if _, err := Apply(context.Background(), &stubAdapter{}, "-- empty\n", nil); err == nil {
		t.Error("expected error for script without statements")
	}
}

func TestNewAdapter(t *testing.T) {
	for _, provider := range []string{"postgres", "postgresql", "mysql", "sqlite", "SQLite3"} {
		if _, err := NewAdapter(provider); err != nil {
			t.Errorf("NewAdapter(%q) error = %v", provider, err)
		}
	}
	if _, err := NewAdapter("mongodb"); err == nil {
		t.Error("expected error for unsupported provider")
	}
}
