// SPDX-License-Identifier: Apache-2.0

package transformers

// GeneratedTransformer replaces a value with the next value drawn from a
// synthetic-data category. With preserveEmpty set, NULL and empty originals
// pass through untouched so that absent data stays absent in the export.
type GeneratedTransformer struct {
	generate      func() string
	preserveEmpty bool
}

func newGenerated(generate func() string) *GeneratedTransformer {
	return &GeneratedTransformer{generate: generate, preserveEmpty: true}
}

// newUnconditionalGenerated generates regardless of the original value.
// Used for personal names, which are expected on every row.
func newUnconditionalGenerated(generate func() string) *GeneratedTransformer {
	return &GeneratedTransformer{generate: generate}
}

func (t *GeneratedTransformer) Transform(value any) (any, error) {
	if t.preserveEmpty && isEmpty(value) {
		return emptied(value), nil
	}
	return []byte(t.generate()), nil
}
