// SPDX-License-Identifier: Apache-2.0

package export

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/tracedump/tracedump/internal/progress"
	loglib "github.com/tracedump/tracedump/pkg/log"
	"github.com/tracedump/tracedump/pkg/transformers"
)

// Exporter walks the configured databases and tables in document order and
// streams each table's surviving rows, transformed, to the output sink.
// Execution is strictly sequential: trace filter materializations are
// session-scoped shared state, so tables must not be exported concurrently.
type Exporter struct {
	conn        *sql.Conn
	cfg         *Config
	output      *Output
	logger      loglib.Logger
	progressFor progress.Factory
}

type Option func(*Exporter)

func New(conn *sql.Conn, cfg *Config, output *Output, opts ...Option) *Exporter {
	e := &Exporter{
		conn:        conn,
		cfg:         cfg,
		output:      output,
		logger:      loglib.NewNoopLogger(),
		progressFor: progress.NoopFactory(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func WithLogger(logger loglib.Logger) Option {
	return func(e *Exporter) {
		e.logger = loglib.NewLogger(logger).WithFields(loglib.Fields{
			loglib.ModuleField: "export",
		})
	}
}

func WithProgress(factory progress.Factory) Option {
	return func(e *Exporter) {
		e.progressFor = factory
	}
}

func (e *Exporter) Run(ctx context.Context) error {
	session := NewSession(e.conn, e.logger)
	defer func() {
		if err := session.TearDown(ctx); err != nil {
			e.logger.Warn(err, "tearing down trace filters")
		}
	}()

	for _, dbName := range e.cfg.Databases.Names() {
		db := e.cfg.Databases.Get(dbName)
		filters := e.cfg.TraceFilters.Append(db.TraceFilters)

		for _, tf := range filters {
			if err := session.Materialize(ctx, tf, dbName); err != nil {
				return err
			}
		}

		for _, tableName := range db.Tables.Names() {
			if err := e.exportTable(ctx, session, dbName, db, tableName, filters); err != nil {
				return fmt.Errorf("exporting %s.%s: %w", dbName, tableName, err)
			}
		}

		// next database gets fresh materializations scoped to itself
		if err := session.TearDown(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) exportTable(ctx context.Context, session *Session, dbName string, db *Database, tableName string, filters TraceFilterList) error {
	table := db.Tables.Get(tableName)
	logger := e.logger.WithFields(loglib.Fields{"database": dbName, "table": tableName})

	info, err := Introspect(ctx, e.conn, dbName, tableName)
	if err != nil {
		if errors.Is(err, ErrTableEmpty) {
			logger.Warn(err, "table is empty, not writing")
			return nil
		}
		return err
	}

	jf, err := e.buildJoinFilter(ctx, session, dbName, db, table, info, filters)
	if err != nil {
		if errors.Is(err, ErrTableEmpty) {
			logger.Warn(err, "related table is empty, not writing")
			return nil
		}
		return err
	}

	transforms, err := buildTransforms(info, table.Transforms)
	if err != nil {
		return err
	}

	if err := e.conn.QueryRowContext(ctx, buildCountQuery(info, jf)).Scan(&info.RowCount); err != nil {
		return fmt.Errorf("counting rows: %w", err)
	}

	orderColumn, err := info.OrderColumn(table.OrderColumn)
	if err != nil {
		return err
	}

	query := buildSelectQuery(info, jf, orderColumn)
	logger.Debug("export query", loglib.Fields{"sql": query})

	writer, err := e.output.Writer(dbName, tableName)
	if err != nil {
		return err
	}
	defer writer.Close()

	rows, err := e.conn.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying rows: %w", err)
	}
	defer rows.Close()

	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write(info.ColumnNames); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	bar := e.progressFor(info.RowCount, dbName+"."+tableName)
	defer bar.Close()

	values := make([]any, len(info.ColumnNames))
	scanDest := make([]any, len(values))
	for i := range values {
		scanDest[i] = &values[i]
	}
	record := make([]string, len(values))

	var count int64
	for rows.Next() {
		if err := rows.Scan(scanDest...); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}

		for _, ct := range transforms {
			transformed, err := ct.transformer.Transform(values[ct.index])
			if err != nil {
				return fmt.Errorf("transforming column %q: %w", ct.column, err)
			}
			values[ct.index] = transformed
		}

		serializeRow(values, record)
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}

		count++
		bar.Add(1)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	logger.Info("table exported", loglib.Fields{"rows": count})
	return nil
}

// buildJoinFilter composes the table's full join/filter state: its own row
// filter, every applicable trace filter fragment, and the related-table
// constraint with the related table's own trace and row filtering folded in
// so rows only survive when their related row would.
func (e *Exporter) buildJoinFilter(ctx context.Context, session *Session, dbName string, db *Database, table *Table, info *TableInfo, filters TraceFilterList) (*JoinFilter, error) {
	jf := NewJoinFilter()
	jf.AddFilter(table.RowFilter())
	jf.Append(filters.BuildJoinFilter(session, info))

	rel := table.RelatedOnly
	if rel == nil {
		return jf, nil
	}
	addRelatedConstraint(jf, dbName, rel, info)

	if len(filters) == 0 {
		return jf, nil
	}

	relInfo, err := Introspect(ctx, e.conn, dbName, rel.Table)
	if err != nil {
		return nil, err
	}
	foldRelatedFilters(jf, session, filters, relInfo, db.Tables.Get(rel.Table))
	return jf, nil
}

// addRelatedConstraint joins the related table and keeps only rows whose
// join column references an existing related row.
func addRelatedConstraint(jf *JoinFilter, database string, rel *RelatedTable, info *TableInfo) {
	jf.Add(
		fmt.Sprintf("LEFT JOIN `%s`.`%s` ON `%s`.`%s` = `%s`.`%s`",
			database, rel.Table, info.Table, rel.Column, rel.Table, rel.foreignColumn()),
		fmt.Sprintf("`%s`.`%s` IS NOT NULL", rel.Table, rel.foreignColumn()),
	)
}

// foldRelatedFilters narrows the export to rows whose related row would
// itself survive the active trace filters and the related table's own row
// filter.
func foldRelatedFilters(jf *JoinFilter, session *Session, filters TraceFilterList, relInfo *TableInfo, relTable *Table) {
	jf.Append(filters.BuildJoinFilter(session, relInfo))
	if relTable != nil && relTable.Filter != "" {
		jf.AddFilter(relTable.Filter)
	}
}

func buildCountQuery(info *TableInfo, jf *JoinFilter) string {
	query := fmt.Sprintf("SELECT COUNT(*) FROM `%s`.`%s`", info.Database, info.Table)
	if joins := jf.JoinString(); joins != "" {
		query += " " + joins
	}
	return query + " WHERE " + jf.FilterString()
}

func buildSelectQuery(info *TableInfo, jf *JoinFilter, orderColumn string) string {
	query := fmt.Sprintf("SELECT `%s`.* FROM `%s`.`%s`", info.Table, info.Database, info.Table)
	if joins := jf.JoinString(); joins != "" {
		query += " " + joins
	}
	return query + fmt.Sprintf(" WHERE %s ORDER BY `%s`.`%s` ASC", jf.FilterString(), info.Table, orderColumn)
}

type columnTransform struct {
	index       int
	column      string
	transformer transformers.Transformer
}

// buildTransforms resolves every configured rule against the introspected
// schema and builds the transformer chain around the table-scoped
// deterministic random source.
func buildTransforms(info *TableInfo, rules []TransformRule) ([]columnTransform, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	faker := transformers.NewFaker(transformers.TableSeed(info.Database, info.Table))

	out := make([]columnTransform, 0, len(rules))
	for _, rule := range rules {
		index, err := info.ColumnIndex(rule.Column)
		if err != nil {
			return nil, err
		}
		t, err := transformers.New(faker, &transformers.Config{
			Kind:   rule.Kind,
			Param:  rule.Config,
			Param2: rule.Config2,
		})
		if err != nil {
			return nil, fmt.Errorf("%s.%s column %q: %w", info.Database, info.Table, rule.Column, err)
		}
		out = append(out, columnTransform{index: index, column: rule.Column, transformer: t})
	}
	return out, nil
}
