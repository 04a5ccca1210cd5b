package database

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DialectConfig carries the connection target: a file path for SQLite, a URL otherwise
type DialectConfig struct {
	Path string
	URL  string
}

// Dialect captures what differs between the journal's backends.
// Name doubles as the migrations subdirectory.
type Dialect struct {
	Name   string
	Driver string

	// dollarBinds means the driver wants $1..$n instead of ?
	dollarBinds bool
	// returningID means inserts report their key via RETURNING id, not LastInsertId
	returningID bool

	migrationsTable string
	dsn             func(DialectConfig) string
	configure       func(*sql.DB) error
}

var (
	SQLite = Dialect{
		Name:   "sqlite",
		Driver: "sqlite3",
		migrationsTable: `CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			filename TEXT UNIQUE NOT NULL,
			executed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		dsn:       func(c DialectConfig) string { return c.Path },
		configure: configureSQLite,
	}

	Postgres = Dialect{
		Name:        "postgres",
		Driver:      "postgres",
		dollarBinds: true,
		returningID: true,
		migrationsTable: `CREATE TABLE IF NOT EXISTS migrations (
			id BIGSERIAL PRIMARY KEY,
			filename TEXT UNIQUE NOT NULL,
			executed_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,
		dsn:       func(c DialectConfig) string { return c.URL },
		configure: configurePool,
	}

	MySQL = Dialect{
		Name:   "mysql",
		Driver: "mysql",
		migrationsTable: `CREATE TABLE IF NOT EXISTS migrations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			filename VARCHAR(255) UNIQUE NOT NULL,
			executed_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
		)`,
		dsn:       mysqlDSN,
		configure: configurePool,
	}
)

// DSN returns the data source name handed to sql.Open
func (d Dialect) DSN(c DialectConfig) string {
	return d.dsn(c)
}

// Rebind rewrites ? placeholders into the backend's bind syntax
func (d Dialect) Rebind(query string) string {
	if !d.dollarBinds || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// insertReturningID shapes an INSERT so the new key can be scanned back
func (d Dialect) insertReturningID(query string) string {
	query = d.Rebind(query)
	if !d.returningID {
		return query
	}
	return strings.TrimSuffix(strings.TrimSpace(query), ";") + " RETURNING id"
}

// mysqlDSN forces parseTime so DATETIME columns scan into time.Time
func mysqlDSN(c DialectConfig) string {
	switch {
	case strings.Contains(c.URL, "parseTime="):
		return c.URL
	case strings.Contains(c.URL, "?"):
		return c.URL + "&parseTime=true"
	default:
		return c.URL + "?parseTime=true"
	}
}

func configurePool(db *sql.DB) error {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(time.Minute)
	return nil
}

// configureSQLite keeps a single writer and waits on locks rather than failing journal appends
func configureSQLite(db *sql.DB) error {
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.Exec(pragma); err != nil {
			return err
		}
	}
	return nil
}
