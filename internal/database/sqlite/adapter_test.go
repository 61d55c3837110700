package sqlite

import "testing"

func TestPath(t *testing.T) {
	tests := map[string]string{
		"sqlite://./dev.db":       "./dev.db?_journal_mode=WAL",
		"./dev.db":                "./dev.db?_journal_mode=WAL",
		"sqlite://:memory:":       ":memory:",
		"sqlite://dev.db?mode=ro": "dev.db?mode=ro",
	}
	for in, want := range tests {
		if got := Path(in); got != want {
			t.Errorf("Path(%q) = %q, want %q", in, got, want)
		}
	}
}
