package database

import (
	"context"
	"fmt"
)

// Adapter runs seed statements against one database engine.
type Adapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// Exec runs a single statement without parameters.
	Exec(ctx context.Context, statement string) error

	// CountProducts returns how many products the seller owns.
	CountProducts(ctx context.Context, sellerID int64) (int64, error)
}

// Progress is called before each statement is executed.
type Progress func(index, total int)

// Apply splits content into statements and executes them in order, stopping
// at the first failure. It returns the number of executed statements.
func Apply(ctx context.Context, adapter Adapter, content string, progress Progress) (int, error) {
	statements := SplitStatements(content)
	if len(statements) == 0 {
		return 0, fmt.Errorf("no SQL statements found")
	}

	for i, statement := range statements {
		if progress != nil {
			progress(i+1, len(statements))
		}
		if err := adapter.Exec(ctx, statement); err != nil {
			return i, fmt.Errorf("failed to execute statement %d: %w", i+1, err)
		}
	}

	return len(statements), nil
}
