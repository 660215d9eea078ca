// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/cride/circle-service/internal/logging"
)

var errBeginRefused = errors.New("begin refused")

// recordingConn refuses to open transactions and records any statement that
// reaches the connection directly, i.e. in autocommit.
type recordingConn struct {
	executed []string
}

func (c *recordingConn) Prepare(query string) (driver.Stmt, error) {
	c.executed = append(c.executed, query)
	return nil, errors.New("statement reached the connection")
}

func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) Begin() (driver.Tx, error) { return nil, errBeginRefused }

func (c *recordingConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return nil, errBeginRefused
}

func (c *recordingConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.executed = append(c.executed, query)
	return nil, errors.New("statement reached the connection")
}

func (c *recordingConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.executed = append(c.executed, query)
	return nil, errors.New("statement reached the connection")
}

type recordingDriver struct {
	conn *recordingConn
}

func (d *recordingDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

func newTestClient(t *testing.T, conn *recordingConn) *DBClient {
	t.Helper()

	name := "recording-" + t.Name()
	sql.Register(name, &recordingDriver{conn: conn})
	database, err := sql.Open(name, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return &DBClient{
		db:       database,
		dbRunner: database,
		logger:   logging.NewNoopLogger(),
	}
}

func TestWithSerializableTxBeginFailureFailsStatements(t *testing.T) {
	conn := &recordingConn{}
	client := newTestClient(t, conn)

	err := client.WithSerializableTx(context.Background(), func(ctx context.Context) error {
		_, err := client.Statement(ctx).
			Update("invitations").
			Set("used", true).
			Where("code = ?", "ZZZZZZZZZZZZZZZZ").
			ExecContext(ctx)
		return err
	})
	if !errors.Is(err, errBeginRefused) {
		t.Fatalf("expected %v, got %v", errBeginRefused, err)
	}
	if len(conn.executed) != 0 {
		t.Fatalf("statements ran in autocommit: %v", conn.executed)
	}
}

func TestWithSerializableTxBeginFailureAbortsSwallowedUnit(t *testing.T) {
	conn := &recordingConn{}
	client := newTestClient(t, conn)

	err := client.WithSerializableTx(context.Background(), func(ctx context.Context) error {
		// Even a closure that drops its statement errors must not commit.
		_, _ = client.Statement(ctx).Select("1").QueryContext(ctx)
		return nil
	})
	if !errors.Is(err, errBeginRefused) {
		t.Fatalf("expected %v, got %v", errBeginRefused, err)
	}
	if len(conn.executed) != 0 {
		t.Fatalf("statements ran in autocommit: %v", conn.executed)
	}
}
