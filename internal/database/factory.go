package database

import (
	"fmt"
	"strings"

	"github.com/Rana718/mockseed/internal/database/mysql"
	"github.com/Rana718/mockseed/internal/database/postgres"
	"github.com/Rana718/mockseed/internal/database/sqlite"
)

func NewAdapter(provider string) (Adapter, error) {
	switch strings.ToLower(provider) {
	case "postgresql", "postgres":
		return postgres.New(), nil
	case "mysql":
		return mysql.New(), nil
	case "sqlite", "sqlite3":
		return sqlite.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}
