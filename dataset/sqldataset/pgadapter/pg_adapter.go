/*
Package pgadapter opens PostgreSQL databases for use
with the sqldataset package.
*/
package pgadapter

import (
	"context"
	"database/sql"
	"fmt"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

/*
Open takes a context and a PostgreSQL database connection URL and returns
an *sql.DB that works on the database or an error if it fails to connect to it.
*/
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database: %v", err)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgresql database: %v", err)
	}
	return db, nil
}
