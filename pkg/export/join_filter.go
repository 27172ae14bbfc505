// SPDX-License-Identifier: Apache-2.0

package export

import (
	"slices"
	"strings"
)

// JoinFilter accumulates the join clauses and filter predicates contributed
// by trace filters and related-table constraints for one table export.
// Merging deduplicates by exact string equality: overlapping filter sets
// must not join the same fragment twice.
type JoinFilter struct {
	joins   []string
	filters []string
}

func NewJoinFilter() *JoinFilter {
	return &JoinFilter{}
}

// Add appends a join clause and its predicate unconditionally.
func (jf *JoinFilter) Add(join, filter string) {
	jf.joins = append(jf.joins, join)
	jf.filters = append(jf.filters, filter)
}

// AddFilter appends a predicate with no associated join.
func (jf *JoinFilter) AddFilter(filter string) {
	jf.filters = append(jf.filters, filter)
}

// Append merges another accumulator, skipping joins and predicates already
// present.
func (jf *JoinFilter) Append(other *JoinFilter) {
	for _, join := range other.joins {
		if !slices.Contains(jf.joins, join) {
			jf.joins = append(jf.joins, join)
		}
	}
	for _, filter := range other.filters {
		if !slices.Contains(jf.filters, filter) {
			jf.filters = append(jf.filters, filter)
		}
	}
}

// JoinString renders all join clauses, space separated. Empty when there
// are none.
func (jf *JoinFilter) JoinString() string {
	return strings.Join(jf.joins, " ")
}

// FilterString renders all predicates ANDed into one parenthesized group,
// falling back to the always-true literal so it can be composed into any
// WHERE clause.
func (jf *JoinFilter) FilterString() string {
	if len(jf.filters) == 0 {
		return "1"
	}
	return "(" + strings.Join(jf.filters, " AND ") + ")"
}
