// SPDX-License-Identifier: Apache-2.0

package transformers

import (
	"fmt"
	"regexp"
	"strconv"
)

const alphanumCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EmptyTransformer blanks the value unconditionally.
type EmptyTransformer struct{}

func NewEmptyTransformer() *EmptyTransformer {
	return &EmptyTransformer{}
}

func (t *EmptyTransformer) Transform(any) (any, error) {
	return []byte{}, nil
}

// NullTransformer replaces the value with the database NULL marker.
type NullTransformer struct{}

func NewNullTransformer() *NullTransformer {
	return &NullTransformer{}
}

func (t *NullTransformer) Transform(any) (any, error) {
	return nil, nil
}

// ReplaceTransformer substitutes a literal string. With onlyIfNotEmpty set,
// empty originals stay empty instead of picking up the literal.
type ReplaceTransformer struct {
	replacement    []byte
	onlyIfNotEmpty bool
}

func NewReplaceTransformer(replacement string) *ReplaceTransformer {
	return &ReplaceTransformer{replacement: []byte(replacement)}
}

func NewReplaceIfNotEmptyTransformer(replacement string) *ReplaceTransformer {
	return &ReplaceTransformer{replacement: []byte(replacement), onlyIfNotEmpty: true}
}

func (t *ReplaceTransformer) Transform(value any) (any, error) {
	if t.onlyIfNotEmpty && isEmpty(value) {
		return []byte{}, nil
	}
	return append([]byte{}, t.replacement...), nil
}

// RandomAlphanumTransformer generates a random alphanumeric string of a
// configurable length.
type RandomAlphanumTransformer struct {
	faker  *Faker
	length int
}

const defaultAlphanumLength = 6

func NewRandomAlphanumTransformer(faker *Faker, lengthParam string) (*RandomAlphanumTransformer, error) {
	length := defaultAlphanumLength
	if lengthParam != "" {
		var err error
		length, err = strconv.Atoi(lengthParam)
		if err != nil || length <= 0 {
			return nil, fmt.Errorf("random_alphanum: length %q must be a positive integer: %w", lengthParam, ErrInvalidParameters)
		}
	}
	return &RandomAlphanumTransformer{faker: faker, length: length}, nil
}

func (t *RandomAlphanumTransformer) Transform(value any) (any, error) {
	if isEmpty(value) {
		return emptied(value), nil
	}
	return randomChars(t.faker, alphanumCharset, t.length), nil
}

func randomChars(faker *Faker, charset string, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[faker.rand.Intn(len(charset))]
	}
	return b
}

// LoremIpsumTransformer fills the value with filler words truncated to a
// configurable number of characters.
type LoremIpsumTransformer struct {
	faker  *Faker
	maxLen int
}

const defaultLoremLength = 20

func NewLoremIpsumTransformer(faker *Faker, lengthParam string) (*LoremIpsumTransformer, error) {
	maxLen := defaultLoremLength
	if lengthParam != "" {
		var err error
		maxLen, err = strconv.Atoi(lengthParam)
		if err != nil || maxLen <= 0 {
			return nil, fmt.Errorf("lorem_ipsum: length %q must be a positive integer: %w", lengthParam, ErrInvalidParameters)
		}
	}
	return &LoremIpsumTransformer{faker: faker, maxLen: maxLen}, nil
}

func (t *LoremIpsumTransformer) Transform(value any) (any, error) {
	if isEmpty(value) {
		return emptied(value), nil
	}

	text := ""
	for len(text) < t.maxLen {
		if text != "" {
			text += " "
		}
		text += t.faker.LoremIpsumWord()
	}
	return []byte(text[:t.maxLen]), nil
}

// RegexTransformer replaces every match of the configured pattern with a
// literal replacement. A missing pattern is a configuration error.
type RegexTransformer struct {
	pattern     *regexp.Regexp
	replacement []byte
}

func NewRegexTransformer(pattern, replacement string) (*RegexTransformer, error) {
	if pattern == "" {
		return nil, fmt.Errorf("regex: pattern is required: %w", ErrInvalidParameters)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("regex: compiling pattern %q: %w", pattern, err)
	}
	return &RegexTransformer{pattern: re, replacement: []byte(replacement)}, nil
}

func (t *RegexTransformer) Transform(value any) (any, error) {
	b, ok := asBytes(value)
	if !ok {
		return value, nil
	}
	return t.pattern.ReplaceAll(b, t.replacement), nil
}
