package sqlite

import "database/sql"

// schema is applied on every open. The seq column carries insertion order,
// which listing relies on; ingredients hold a JSON array of strings.
const schema = `
CREATE TABLE IF NOT EXISTS shopping_items (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    due_date TEXT NOT NULL DEFAULT '',
    checked INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS recipes (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    ingredients TEXT NOT NULL DEFAULT '[]'
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
