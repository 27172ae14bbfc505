// SPDX-License-Identifier: Apache-2.0

package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tracedump/tracedump/pkg/transformers"
)

// Config is the root export configuration. Databases and tables are ordered
// maps: document order decides export order, which keeps diffs between runs
// stable.
//
// Database, table and column names as well as filter predicates are
// interpolated into SQL verbatim. The configuration is operator-trusted
// input, never end-user input.
type Config struct {
	Databases    DatabaseMap     `yaml:"databases"`
	TraceFilters TraceFilterList `yaml:"trace_filters"`
}

type Database struct {
	Tables       TableMap        `yaml:"tables"`
	TraceFilters TraceFilterList `yaml:"trace_filters"`
}

type Table struct {
	OrderColumn string          `yaml:"order_column"`
	Filter      string          `yaml:"filter"`
	Transforms  []TransformRule `yaml:"transforms"`
	RelatedOnly *RelatedTable   `yaml:"related_only"`
}

// RowFilter returns the configured raw SQL predicate, defaulting to the
// always-true literal so it can be composed unconditionally.
func (t *Table) RowFilter() string {
	if t == nil || t.Filter == "" {
		return "1"
	}
	return t.Filter
}

// RelatedTable restricts a table's export to rows whose foreign-key style
// column references a surviving row of another table.
type RelatedTable struct {
	Table         string `yaml:"table"`
	Column        string `yaml:"column"`
	ForeignColumn string `yaml:"foreign_column"`
}

func (r *RelatedTable) foreignColumn() string {
	if r.ForeignColumn == "" {
		return "id"
	}
	return r.ForeignColumn
}

type TransformRule struct {
	Column  string            `yaml:"column"`
	Kind    transformers.Kind `yaml:"kind"`
	Config  string            `yaml:"config"`
	Config2 string            `yaml:"config2"`
}

func (r *TransformRule) UnmarshalYAML(node *yaml.Node) error {
	type plain TransformRule
	if err := node.Decode((*plain)(r)); err != nil {
		return err
	}
	if r.Column == "" {
		return fmt.Errorf("transform rule without a column (line %d)", node.Line)
	}
	if !transformers.KnownKind(r.Kind) {
		return fmt.Errorf("unknown transform kind %q for column %q (line %d)", r.Kind, r.Column, node.Line)
	}
	return nil
}

// DatabaseMap preserves the document order of the databases mapping.
type DatabaseMap struct {
	names []string
	dbs   map[string]*Database
}

func (m *DatabaseMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("databases: expected a mapping (line %d)", node.Line)
	}
	m.dbs = make(map[string]*Database, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		name := node.Content[i].Value
		db := &Database{}
		if err := node.Content[i+1].Decode(db); err != nil {
			return fmt.Errorf("database %q: %w", name, err)
		}
		m.names = append(m.names, name)
		m.dbs[name] = db
	}
	return nil
}

func (m *DatabaseMap) Names() []string {
	return m.names
}

func (m *DatabaseMap) Get(name string) *Database {
	return m.dbs[name]
}

// TableMap preserves the document order of a database's tables mapping.
type TableMap struct {
	names  []string
	tables map[string]*Table
}

func (m *TableMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("tables: expected a mapping (line %d)", node.Line)
	}
	m.tables = make(map[string]*Table, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		name := node.Content[i].Value
		table := &Table{}
		if err := node.Content[i+1].Decode(table); err != nil {
			return fmt.Errorf("table %q: %w", name, err)
		}
		m.names = append(m.names, name)
		m.tables[name] = table
	}
	return nil
}

func (m *TableMap) Names() []string {
	return m.names
}

func (m *TableMap) Get(name string) *Table {
	return m.tables[name]
}

// ParseConfig decodes a YAML export configuration.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing export config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate builds every configured transform against a throwaway random
// source so that parameter errors abort the run before any query is issued.
func (c *Config) Validate() error {
	for _, tf := range c.TraceFilters {
		if err := tf.validate(); err != nil {
			return err
		}
	}
	for _, dbName := range c.Databases.Names() {
		db := c.Databases.Get(dbName)
		for _, tf := range db.TraceFilters {
			if err := tf.validate(); err != nil {
				return fmt.Errorf("database %q: %w", dbName, err)
			}
		}
		for _, tableName := range db.Tables.Names() {
			table := db.Tables.Get(tableName)
			faker := transformers.NewFaker(0)
			for _, rule := range table.Transforms {
				cfg := &transformers.Config{Kind: rule.Kind, Param: rule.Config, Param2: rule.Config2}
				if _, err := transformers.New(faker, cfg); err != nil {
					return fmt.Errorf("%s.%s column %q: %w", dbName, tableName, rule.Column, err)
				}
			}
			if rel := table.RelatedOnly; rel != nil && (rel.Table == "" || rel.Column == "") {
				return fmt.Errorf("%s.%s: related_only requires table and column", dbName, tableName)
			}
		}
	}
	return nil
}
