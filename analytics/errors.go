package analytics

import (
    "errors"
    "fmt"
)

// ErrNoData marks a query that ran fine but matched zero trips. Callers
// that treat emptiness as a normal outcome (the fare estimator) check
// for it with errors.Is.
var ErrNoData = errors.New("no matching trips")

// DataAccessError wraps any failure reaching or querying a backing
// store: connection loss, malformed query, schema mismatch. Engine
// views return it unmodified to the caller.
type DataAccessError struct {
    Op  string
    Err error
}

func (e *DataAccessError) Error() string {
    return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
    return e.Err
}

// IsDataAccessError reports whether err is (or wraps) a store failure.
func IsDataAccessError(err error) bool {
    var dae *DataAccessError
    return errors.As(err, &dae)
}
