// SPDX-License-Identifier: Apache-2.0

package export

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinFilter_FilterString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters []string

		wantFilter string
	}{
		{
			name:       "empty accumulator defaults to always true",
			filters:    nil,
			wantFilter: "1",
		},
		{
			name:       "single predicate",
			filters:    []string{"`users`.active = 1"},
			wantFilter: "(`users`.active = 1)",
		},
		{
			name:       "predicates are ANDed into one group",
			filters:    []string{"`users`.active = 1", "`t`.id IS NOT NULL"},
			wantFilter: "(`users`.active = 1 AND `t`.id IS NOT NULL)",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			jf := NewJoinFilter()
			for _, f := range tc.filters {
				jf.AddFilter(f)
			}
			require.Equal(t, tc.wantFilter, jf.FilterString())
		})
	}
}

func TestJoinFilter_Append(t *testing.T) {
	t.Parallel()

	const (
		join   = "LEFT JOIN `v` ON `t`.`c` = `v`.id"
		filter = "`v`.id IS NOT NULL"
	)

	jf := NewJoinFilter()
	jf.Add(join, filter)

	other := NewJoinFilter()
	other.Add(join, filter)
	other.Add("LEFT JOIN `w` ON `t`.`d` = `w`.id", "`w`.id IS NOT NULL")

	// appending the same fragment twice must not duplicate it
	jf.Append(other)
	jf.Append(other)

	require.Equal(t,
		"LEFT JOIN `v` ON `t`.`c` = `v`.id LEFT JOIN `w` ON `t`.`d` = `w`.id",
		jf.JoinString())
	require.Equal(t,
		"(`v`.id IS NOT NULL AND `w`.id IS NOT NULL)",
		jf.FilterString())
}

func TestJoinFilter_AddIsUnconditional(t *testing.T) {
	t.Parallel()

	jf := NewJoinFilter()
	jf.Add("JOIN a", "p")
	jf.Add("JOIN a", "p")

	require.Equal(t, "JOIN a JOIN a", jf.JoinString())
	require.Equal(t, "(p AND p)", jf.FilterString())
}

func TestJoinFilter_JoinStringEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, NewJoinFilter().JoinString())
}
