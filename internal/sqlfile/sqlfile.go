package sqlfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const timestampLayout = "2006-01-02 15:04:05"

// Document is the content of one generated seed file.
type Document struct {
	Tool        string
	GeneratedAt time.Time
	SellerID    int64
	Bootstrap   []string
	Products    []string
}

// Render joins the header, bootstrap and product statements with a blank
// line between statements.
func (d Document) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "-- %s: generated marketplace mock data\n", d.Tool)
	fmt.Fprintf(&b, "-- generated at: %s\n\n", d.GeneratedAt.Format(timestampLayout))

	fmt.Fprintf(&b, "-- make sure the test seller exists (seller_id = %d)\n", d.SellerID)
	for _, stmt := range d.Bootstrap {
		b.WriteString(stmt)
		b.WriteString("\n\n")
	}

	b.WriteString("-- products\n")
	for _, stmt := range d.Products {
		b.WriteString(stmt)
		b.WriteString("\n\n")
	}

	return b.String()
}

// Write renders d to path, replacing any existing file.
func Write(fs afero.Fs, path string, d Document) error {
	if err := afero.WriteFile(fs, path, []byte(d.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write SQL file %s: %w", path, err)
	}
	return nil
}
