// SPDX-License-Identifier: Apache-2.0

package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/go-sql-driver/mysql"
)

const (
	pingInitialInterval = 500 * time.Millisecond
	pingMaxRetries      = 5
)

// Connect opens a MySQL pool for the given DSN and verifies connectivity,
// retrying the initial ping with exponential backoff to ride out slow
// database startup.
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening mysql connection: %w", err)
	}

	ping := func() error {
		return db.PingContext(ctx)
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(pingInitialInterval),
		), pingMaxRetries),
		ctx)

	if err := backoff.Retry(ping, bo); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging mysql: %w", err)
	}

	return db, nil
}

// Session returns a single connection from the pool. Trace filter
// materializations are session scoped temporary objects, so every statement
// of a run must go through the same connection.
func Session(ctx context.Context, db *sql.DB) (*sql.Conn, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring mysql session: %w", err)
	}
	return conn, nil
}
