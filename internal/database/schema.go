package database

import (
	"context"
	"log/slog"

	"github.com/surrealdb/surrealdb.go"
)

// schema is idempotent; it is applied at startup and by the seed command.
const schema = `
DEFINE TABLE IF NOT EXISTS user SCHEMALESS;
DEFINE INDEX IF NOT EXISTS user_email ON TABLE user COLUMNS email UNIQUE;

DEFINE TABLE IF NOT EXISTS session SCHEMALESS;
DEFINE INDEX IF NOT EXISTS session_token ON TABLE session COLUMNS token UNIQUE;

DEFINE TABLE IF NOT EXISTS course SCHEMALESS;
DEFINE INDEX IF NOT EXISTS course_creator ON TABLE course COLUMNS creator;

DEFINE TABLE IF NOT EXISTS course_on_user SCHEMALESS;
DEFINE INDEX IF NOT EXISTS course_on_user_unique ON TABLE course_on_user COLUMNS course, user UNIQUE;

DEFINE TABLE IF NOT EXISTS lesson SCHEMALESS;
DEFINE INDEX IF NOT EXISTS lesson_course ON TABLE lesson COLUMNS course;
`

// ApplySchema defines the tables and indexes the stores rely on.
func ApplySchema(ctx context.Context, conn DBConnection) error {
	ctx, cancel := getTimeoutFromContext(ctx, conn.GetDBExecuteTimeout(), ContextKeyExecuteTimeout)
	defer cancel()

	err := conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		_, err := surrealdb.Query[any](ctx, db, schema, nil)
		return err
	})
	if err != nil {
		return NewDBError(err, "failed to apply schema")
	}
	slog.DebugContext(ctx, "Database schema applied")
	return nil
}
