// SPDX-License-Identifier: Apache-2.0

package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	loglib "github.com/tracedump/tracedump/pkg/log"
)

// TraceFilter is a named, reusable subset of a column's distinct values,
// materialized as a session-scoped temporary table and joinable against any
// table that has one of the configured match columns.
type TraceFilter struct {
	Name         string            `yaml:"name"`
	Source       TraceFilterSource `yaml:"source"`
	MatchColumns []string          `yaml:"match_columns"`
}

type TraceFilterSource struct {
	DB     string `yaml:"db"`
	Table  string `yaml:"table"`
	Column string `yaml:"column"`
	Filter string `yaml:"filter"`
}

func (tf *TraceFilter) validate() error {
	if tf.Name == "" {
		return errors.New("trace filter without a name")
	}
	if tf.Source.Table == "" || tf.Source.Column == "" {
		return fmt.Errorf("trace filter %q: source table and column are required", tf.Name)
	}
	if len(tf.MatchColumns) == 0 {
		return fmt.Errorf("trace filter %q: at least one match column is required", tf.Name)
	}
	return nil
}

// tempName derives the deterministic identifier of the filter's backing
// temporary table.
func (tf *TraceFilter) tempName() string {
	return "_trace_tmp_" + tf.Name
}

func (tf *TraceFilter) sourceFilter() string {
	if tf.Source.Filter == "" {
		return "1"
	}
	return tf.Source.Filter
}

// ResolveMatchColumn picks the column of the target table to join the
// filter on: the source column when the target is the filter's own source
// table, else the first configured candidate present in the target's
// schema. Empty result means the filter does not apply to this table.
func (tf *TraceFilter) ResolveMatchColumn(info *TableInfo) string {
	sourceDB := tf.Source.DB
	if sourceDB == "" {
		sourceDB = info.Database
	}
	if info.Database == sourceDB && info.Table == tf.Source.Table {
		return tf.Source.Column
	}
	for _, candidate := range tf.MatchColumns {
		if info.HasColumn(candidate) {
			return candidate
		}
	}
	return ""
}

// BuildJoinFilter returns the join and predicate linking the target table
// to the filter's materialized values, or an empty accumulator when the
// filter does not apply. The alias is stable per (filter, table) so the
// same materialization can be joined from several tables in one statement.
func (tf *TraceFilter) BuildJoinFilter(session *Session, info *TableInfo) *JoinFilter {
	jf := NewJoinFilter()

	matchColumn := tf.ResolveMatchColumn(info)
	if matchColumn == "" {
		return jf
	}

	database, ok := session.Location(tf)
	if !ok {
		database = info.Database
	}
	alias := fmt.Sprintf("_tf_%s_%s", tf.Name, info.Table)

	jf.Add(
		fmt.Sprintf("LEFT JOIN `%s`.`%s` AS `%s` ON `%s`.`%s` = `%s`.id",
			database, tf.tempName(), alias, info.Table, matchColumn, alias),
		fmt.Sprintf("`%s`.id IS NOT NULL", alias),
	)
	return jf
}

// TraceFilterList is an ordered set of trace filters.
type TraceFilterList []*TraceFilter

// Append returns the non-destructive concatenation of both lists, used to
// merge the global and database-scoped filter sets.
func (l TraceFilterList) Append(other TraceFilterList) TraceFilterList {
	merged := make(TraceFilterList, 0, len(l)+len(other))
	merged = append(merged, l...)
	merged = append(merged, other...)
	return merged
}

// BuildJoinFilter folds every applicable member filter's fragment into one
// deduplicated accumulator.
func (l TraceFilterList) BuildJoinFilter(session *Session, info *TableInfo) *JoinFilter {
	jf := NewJoinFilter()
	for _, tf := range l {
		jf.Append(tf.BuildJoinFilter(session, info))
	}
	return jf
}

// Session tracks which trace filter materializations currently exist and in
// which database. It is owned by the exporter and threaded explicitly
// through materialization and join building; the filters themselves stay
// immutable values.
type Session struct {
	conn         *sql.Conn
	logger       loglib.Logger
	materialized map[string]string
}

func NewSession(conn *sql.Conn, logger loglib.Logger) *Session {
	return &Session{
		conn:         conn,
		logger:       loglib.NewLogger(logger),
		materialized: make(map[string]string),
	}
}

// Location returns the database a filter is currently materialized in.
func (s *Session) Location(tf *TraceFilter) (string, bool) {
	database, ok := s.materialized[tf.Name]
	return database, ok
}

// Materialize creates the filter's backing temporary table in the given
// database: the distinct values of the source column under the source
// filter, ordered ascending and aliased to `id`. Re-materialization
// replaces any previous incarnation.
func (s *Session) Materialize(ctx context.Context, tf *TraceFilter, database string) error {
	// unconditional drop, a previous incarnation may live in another database
	if err := s.drop(ctx, tf); err != nil {
		return err
	}
	drop := fmt.Sprintf("DROP TEMPORARY TABLE IF EXISTS `%s`.`%s`", database, tf.tempName())
	if _, err := s.conn.ExecContext(ctx, drop); err != nil {
		return fmt.Errorf("dropping trace filter %q: %w", tf.Name, err)
	}

	sourceDB := tf.Source.DB
	if sourceDB == "" {
		sourceDB = database
	}

	create := fmt.Sprintf(
		"CREATE TEMPORARY TABLE `%s`.`%s` AS (SELECT DISTINCT `%s` AS id FROM `%s`.`%s` WHERE %s ORDER BY id ASC)",
		database, tf.tempName(), tf.Source.Column, sourceDB, tf.Source.Table, tf.sourceFilter(),
	)
	if _, err := s.conn.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("materializing trace filter %q: %w", tf.Name, err)
	}
	s.materialized[tf.Name] = database

	var count int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM `%s`.`%s`", database, tf.tempName())
	if err := s.conn.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return fmt.Errorf("counting trace filter %q: %w", tf.Name, err)
	}

	s.logger.Info("trace filter materialized", loglib.Fields{
		"trace_filter": tf.Name,
		"database":     database,
		"rows":         count,
	})
	return nil
}

// Dematerialize drops the filter's backing table. Safe to call for filters
// that were never materialized.
func (s *Session) Dematerialize(ctx context.Context, tf *TraceFilter) error {
	if _, ok := s.materialized[tf.Name]; !ok {
		return nil
	}
	return s.drop(ctx, tf)
}

// TearDown drops every live materialization. Called on all exit paths so no
// stale temporary objects outlive the run in a pooled session.
func (s *Session) TearDown(ctx context.Context) error {
	var errs []error
	for name, database := range s.materialized {
		drop := fmt.Sprintf("DROP TEMPORARY TABLE IF EXISTS `%s`.`_trace_tmp_%s`", database, name)
		if _, err := s.conn.ExecContext(ctx, drop); err != nil {
			errs = append(errs, fmt.Errorf("dropping trace filter %q: %w", name, err))
			continue
		}
		delete(s.materialized, name)
	}
	return errors.Join(errs...)
}

func (s *Session) drop(ctx context.Context, tf *TraceFilter) error {
	database, ok := s.materialized[tf.Name]
	if !ok {
		return nil
	}
	drop := fmt.Sprintf("DROP TEMPORARY TABLE IF EXISTS `%s`.`%s`", database, tf.tempName())
	if _, err := s.conn.ExecContext(ctx, drop); err != nil {
		return fmt.Errorf("dropping trace filter %q: %w", tf.Name, err)
	}
	delete(s.materialized, tf.Name)
	return nil
}
