// SPDX-License-Identifier: Apache-2.0

package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tracedump/tracedump/pkg/transformers"
)

const sampleConfig = `
trace_filters:
  - name: eu_users
    source:
      table: users
      column: id
      filter: region = 'EU'
    match_columns: [user_id]

databases:
  shop:
    trace_filters:
      - name: recent_orders
        source:
          table: orders
          column: id
          filter: created_at > '2024-01-01'
        match_columns: [order_id]
    tables:
      users:
        filter: deleted_at IS NULL
        transforms:
          - column: email
            kind: email_hash
          - column: name
            kind: fullname
      orders:
        order_column: order_ref
        related_only:
          table: users
          column: user_id
      audit_log: {}
  warehouse:
    tables:
      stock: {}
`

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	// document order is preserved
	require.Equal(t, []string{"shop", "warehouse"}, cfg.Databases.Names())
	require.Equal(t, []string{"users", "orders", "audit_log"}, cfg.Databases.Get("shop").Tables.Names())

	require.Len(t, cfg.TraceFilters, 1)
	require.Equal(t, "eu_users", cfg.TraceFilters[0].Name)
	require.Equal(t, "region = 'EU'", cfg.TraceFilters[0].Source.Filter)

	shop := cfg.Databases.Get("shop")
	require.Len(t, shop.TraceFilters, 1)

	users := shop.Tables.Get("users")
	require.Equal(t, "deleted_at IS NULL", users.RowFilter())
	require.Len(t, users.Transforms, 2)
	require.Equal(t, transformers.KindEmailHash, users.Transforms[0].Kind)

	orders := shop.Tables.Get("orders")
	require.Equal(t, "order_ref", orders.OrderColumn)
	require.Equal(t, "1", orders.RowFilter())
	require.NotNil(t, orders.RelatedOnly)
	require.Equal(t, "id", orders.RelatedOnly.foreignColumn())

	require.Equal(t, "1", shop.Tables.Get("audit_log").RowFilter())
}

func TestParseConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config string

		wantErr string
	}{
		{
			name: "unknown transform kind",
			config: `
databases:
  shop:
    tables:
      users:
        transforms:
          - column: email
            kind: scramble
`,
			wantErr: "unknown transform kind",
		},
		{
			name: "transform without column",
			config: `
databases:
  shop:
    tables:
      users:
        transforms:
          - kind: empty
`,
			wantErr: "without a column",
		},
		{
			name: "regex without pattern",
			config: `
databases:
  shop:
    tables:
      users:
        transforms:
          - column: notes
            kind: regex
`,
			wantErr: "pattern is required",
		},
		{
			name: "invalid regex pattern",
			config: `
databases:
  shop:
    tables:
      users:
        transforms:
          - column: notes
            kind: regex
            config: "("
`,
			wantErr: "compiling pattern",
		},
		{
			name: "malformed random_int range",
			config: `
databases:
  shop:
    tables:
      users:
        transforms:
          - column: age
            kind: random_int
            config: "ten"
`,
			wantErr: "parsing range",
		},
		{
			name: "trace filter without name",
			config: `
trace_filters:
  - source:
      table: users
      column: id
    match_columns: [user_id]
databases: {}
`,
			wantErr: "without a name",
		},
		{
			name: "trace filter without match columns",
			config: `
trace_filters:
  - name: eu
    source:
      table: users
      column: id
databases: {}
`,
			wantErr: "match column",
		},
		{
			name: "related_only without column",
			config: `
databases:
  shop:
    tables:
      orders:
        related_only:
          table: users
`,
			wantErr: "related_only",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseConfig([]byte(tc.config))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
