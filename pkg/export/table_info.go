// SPDX-License-Identifier: Apache-2.0

package export

import (
	"context"
	"database/sql"
	"fmt"
)

// TableInfo is the introspected schema of one table: column names in result
// order, their declared types, and a name index. Column positions are
// stable for the lifetime of one table's export.
type TableInfo struct {
	Database    string
	Table       string
	ColumnNames []string
	ColumnTypes []string
	RowCount    int64

	columnIndex map[string]int
}

// Introspect discovers a table's columns from a single sample row. A table
// with zero rows returns ErrTableEmpty. Column order and declared types
// come from the result metadata, independent of any configured filter.
func Introspect(ctx context.Context, conn *sql.Conn, database, table string) (*TableInfo, error) {
	query := fmt.Sprintf("SELECT `%s`.* FROM `%s`.`%s` LIMIT 1", table, database, table)

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sampling %s.%s: %w", database, table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns of %s.%s: %w", database, table, err)
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("reading column types of %s.%s: %w", database, table, err)
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("sampling %s.%s: %w", database, table, err)
		}
		return nil, fmt.Errorf("%s.%s: %w", database, table, ErrTableEmpty)
	}

	info := &TableInfo{
		Database:    database,
		Table:       table,
		ColumnNames: names,
		ColumnTypes: make([]string, len(colTypes)),
		columnIndex: make(map[string]int, len(names)),
	}
	for i, name := range names {
		info.columnIndex[name] = i
		info.ColumnTypes[i] = colTypes[i].DatabaseTypeName()
	}
	return info, nil
}

// ColumnIndex resolves a column name to its position. A miss is a
// configuration error.
func (ti *TableInfo) ColumnIndex(name string) (int, error) {
	idx, ok := ti.columnIndex[name]
	if !ok {
		return 0, &ColumnNotFoundError{
			Database:     ti.Database,
			Table:        ti.Table,
			Column:       name,
			KnownColumns: ti.ColumnNames,
		}
	}
	return idx, nil
}

func (ti *TableInfo) HasColumn(name string) bool {
	_, ok := ti.columnIndex[name]
	return ok
}

// OrderColumn resolves the column used for deterministic export ordering:
// the configured one, else "id" when present, else the first column. A
// configured column missing from the schema is a configuration error.
func (ti *TableInfo) OrderColumn(configured string) (string, error) {
	switch {
	case configured != "":
		if _, err := ti.ColumnIndex(configured); err != nil {
			return "", err
		}
		return configured, nil
	case ti.HasColumn("id"):
		return "id", nil
	default:
		return ti.ColumnNames[0], nil
	}
}

// newTableInfo builds a TableInfo without a database round trip, for tests.
func newTableInfo(database, table string, columns []string) *TableInfo {
	info := &TableInfo{
		Database:    database,
		Table:       table,
		ColumnNames: columns,
		ColumnTypes: make([]string, len(columns)),
		columnIndex: make(map[string]int, len(columns)),
	}
	for i, name := range columns {
		info.columnIndex[name] = i
	}
	return info
}
