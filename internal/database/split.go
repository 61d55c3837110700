package database

import "strings"

// SplitStatements breaks a SQL script into statements at semicolons that are
// outside string literals and quoted identifiers. Full-line and trailing "--"
// comments are dropped.
func SplitStatements(content string) []string {
	var (
		statements []string
		current    strings.Builder
		quote      rune
		inComment  bool
	)

	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if inComment {
			if r == '\n' {
				inComment = false
				current.WriteRune(r)
			}
			continue
		}

		if quote != 0 {
			current.WriteRune(r)
			// a doubled quote is an escaped quote and keeps the literal open
			if r == quote {
				if i+1 < len(runes) && runes[i+1] == quote {
					current.WriteRune(runes[i+1])
					i++
				} else {
					quote = 0
				}
			}
			continue
		}

		switch {
		case r == '\'' || r == '"' || r == '`':
			quote = r
			current.WriteRune(r)
		case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
			inComment = true
			i++
		case r == ';':
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}

	return statements
}
