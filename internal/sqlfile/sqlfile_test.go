package sqlfile

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func testDocument() Document {
	return Document{
		Tool:        "mockseed",
		GeneratedAt: time.Date(2025, 6, 15, 9, 30, 5, 0, time.UTC),
		SellerID:    1,
		Bootstrap:   []string{"INSERT INTO user_accounts VALUES (1);", "INSERT INTO user_profiles VALUES (1);"},
		Products:    []string{"INSERT INTO products VALUES (1);", "INSERT INTO products VALUES (2);", "INSERT INTO products VALUES (3);"},
	}
}

func TestRender(t *testing.T) {
	out := testDocument().Render()

	if !strings.HasPrefix(out, "-- mockseed: generated marketplace mock data\n-- generated at: 2025-06-15 09:30:05\n\n") {
		t.Errorf("unexpected header:\n%s", out)
	}

	if got := strings.Count(out, "INSERT INTO"); got != 5 {
		t.Errorf("expected 5 INSERT statements, got %d", got)
	}

	if !strings.Contains(out, "INSERT INTO products VALUES (1);\n\nINSERT INTO products VALUES (2);\n\n") {
		t.Errorf("statements should be separated by a blank line:\n%s", out)
	}

	accounts := strings.Index(out, "user_accounts")
	profiles := strings.Index(out, "user_profiles")
	products := strings.Index(out, "INSERT INTO products")
	if !(accounts < profiles && profiles < products) {
		t.Error("bootstrap statements must precede product statements")
	}
}

func TestWriteOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "mock_data.sql", []byte(strings.Repeat("stale\n", 10000)), 0644)

	if err := Write(fs, "mock_data.sql", testDocument()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := afero.ReadFile(fs, "mock_data.sql")
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("existing file content should be replaced")
	}
	if string(data) != testDocument().Render() {
		t.Error("written content differs from Render()")
	}
}

func TestWriteFailureNamesPath(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := Write(fs, "out/mock_data.sql", testDocument())
	if err == nil {
		t.Fatal("expected write error on read-only filesystem")
	}
	if !strings.Contains(err.Error(), "out/mock_data.sql") {
		t.Errorf("error should name the output path, got %v", err)
	}
}
