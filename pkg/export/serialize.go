// SPDX-License-Identifier: Apache-2.0

package export

import (
	"fmt"
	"strconv"
	"time"
)

const mysqlTimeFormat = "2006-01-02 15:04:05"

// serializeValue renders one column value as a CSV field. NULL collapses to
// an empty field, CSV has no way to mark it apart from an empty string.
func serializeValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return v.Format(mysqlTimeFormat)
	default:
		return fmt.Sprint(v)
	}
}

func serializeRow(values []any, record []string) {
	for i, v := range values {
		record[i] = serializeValue(v)
	}
}
