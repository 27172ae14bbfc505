// SPDX-License-Identifier: Apache-2.0

package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTableEmpty marks a table with zero rows. Callers treat it as "nothing
// to export", not as a failure.
var ErrTableEmpty = errors.New("table has no rows")

// ColumnNotFoundError is a configuration error: a transform or an order
// column names a column the table does not have. The message carries the
// full known column list to make the config fixable without a round trip to
// the database.
type ColumnNotFoundError struct {
	Database     string
	Table        string
	Column       string
	KnownColumns []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in %s.%s, known columns: [%s]",
		e.Column, e.Database, e.Table, strings.Join(e.KnownColumns, ", "))
}
