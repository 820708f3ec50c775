package sink

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"

	"staygen/internal/dataset"
)

// PostgresSink loads tables into a live database via COPY. Tables are
// created on first write and truncated before loading, so a run is
// repeatable against the same database.
type PostgresSink struct {
	conn *pgx.Conn
}

// OpenPostgres connects and verifies the target database is reachable.
func OpenPostgres(ctx context.Context, connString string) (*PostgresSink, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresSink{conn: conn}, nil
}

func (s *PostgresSink) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

func (s *PostgresSink) Write(ctx context.Context, t dataset.Table) error {
	if _, err := s.conn.Exec(ctx, createTableDDL(t)); err != nil {
		return fmt.Errorf("create table %s: %w", t.Name, err)
	}
	if _, err := s.conn.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", pgIdentifier(t.Name))); err != nil {
		return fmt.Errorf("truncate %s: %w", t.Name, err)
	}

	_, err := s.conn.CopyFrom(ctx, pgx.Identifier{t.Name}, t.ColumnNames(), pgx.CopyFromRows(t.Rows))
	if err != nil {
		return fmt.Errorf("copy into %s: %w", t.Name, err)
	}

	if serialTable(t) {
		seqName := t.Name + "_id_seq"
		// Link tables have no sequence with this name — ignore failures.
		_, _ = s.conn.Exec(ctx, fmt.Sprintf("SELECT setval('%s', %d, true)", seqName, len(t.Rows)))
	}
	return nil
}

// createTableDDL renders the CREATE TABLE statement with inline foreign
// key constraints.
func createTableDDL(t dataset.Table) string {
	var cols []string
	for _, c := range t.Columns {
		cols = append(cols, fmt.Sprintf("  %s %s", pgIdentifier(c.Name), c.Type))
	}
	for _, fk := range t.ForeignKeys {
		cols = append(cols, fmt.Sprintf("  FOREIGN KEY (%s) REFERENCES %s(%s)",
			pgIdentifier(fk.Column),
			pgIdentifier(fk.RefTable),
			pgIdentifier(fk.RefColumn),
		))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)",
		pgIdentifier(t.Name),
		strings.Join(cols, ",\n"),
	)
}

func serialTable(t dataset.Table) bool {
	return len(t.Columns) > 0 &&
		t.Columns[0].Name == "id" &&
		strings.Contains(strings.ToUpper(t.Columns[0].Type), "SERIAL")
}

func pgIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"`
}

// BuildConnString assembles a postgres URL from discrete settings.
func BuildConnString(host string, port int, user, password, db, sslMode string) string {
	hostPort := host
	if port > 0 {
		hostPort = fmt.Sprintf("%s:%d", host, port)
	}
	u := &url.URL{
		Scheme:   "postgres",
		Host:     hostPort,
		Path:     "/" + db,
		RawQuery: "sslmode=" + sslMode,
	}
	if password != "" {
		u.User = url.UserPassword(user, password)
	} else if user != "" {
		u.User = url.User(user)
	}
	return u.String()
}
