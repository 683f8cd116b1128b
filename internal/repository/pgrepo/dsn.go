package pgrepo

import "strings"

// migrateDSN переводит postgres:// DSN на схему драйвера pgx/v5 для golang-migrate.
// DSN в формате key=value возвращается как есть.
func migrateDSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
