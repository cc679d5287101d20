package analytics

import (
    "context"
    "database/sql"
    "database/sql/driver"
    "errors"
    "io"
    "sync"
    "testing"
)

// Stub database/sql driver. Each test installs a handler that decides,
// per query text, whether to fail or return canned rows — enough to
// exercise the engine's scanning, parameter binding, and the zone
// schema fallback without a live PostgreSQL.

type stubResult struct {
    columns []string
    rows    [][]driver.Value
}

type stubHandler func(query string, args []driver.NamedValue) (*stubResult, error)

type stubDriver struct {
    mu      sync.Mutex
    handler stubHandler
}

var testDriver = &stubDriver{}

func init() {
    sql.Register("analytics-stub", testDriver)
}

func (d *stubDriver) Open(name string) (driver.Conn, error) {
    return &stubConn{d: d}, nil
}

func (d *stubDriver) setHandler(h stubHandler) {
    d.mu.Lock()
    d.handler = h
    d.mu.Unlock()
}

type stubConn struct {
    d *stubDriver
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
    return nil, errors.New("prepare not supported")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
    return nil, errors.New("transactions not supported")
}

func (c *stubConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
    c.d.mu.Lock()
    handler := c.d.handler
    c.d.mu.Unlock()
    if handler == nil {
        return nil, errors.New("no stub handler installed")
    }
    result, err := handler(query, args)
    if err != nil {
        return nil, err
    }
    return &stubRows{result: result}, nil
}

type stubRows struct {
    result *stubResult
    idx    int
}

func (r *stubRows) Columns() []string { return r.result.columns }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
    if r.idx >= len(r.result.rows) {
        return io.EOF
    }
    copy(dest, r.result.rows[r.idx])
    r.idx++
    return nil
}

func newStubDB(t *testing.T, handler stubHandler) *sql.DB {
    t.Helper()
    testDriver.setHandler(handler)

    db, err := sql.Open("analytics-stub", "")
    if err != nil {
        t.Fatalf("opening stub database: %v", err)
    }
    t.Cleanup(func() {
        db.Close()
        testDriver.setHandler(nil)
    })
    return db
}
