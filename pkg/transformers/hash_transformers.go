// SPDX-License-Identifier: Apache-2.0

package transformers

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

const hashCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

const (
	emailHashLength  = 11
	domainHashLength = 6
)

// hashChars derives n charset characters from the 128-bit content hash of
// b: each of the first n bytes of the hash's little-endian form indexes the
// charset modulo its length. Same input, same pseudonym, on every run.
func hashChars(b []byte, n int) []byte {
	sum := xxh3.Hash128(b)

	var le [16]byte
	binary.LittleEndian.PutUint64(le[:8], sum.Lo)
	binary.LittleEndian.PutUint64(le[8:], sum.Hi)

	out := make([]byte, n)
	for i := range out {
		out[i] = hashCharset[int(le[i])%len(hashCharset)]
	}
	return out
}

// EmailHashTransformer replaces an email with a stable pseudonym derived
// from a content hash of the original bytes. Non-bytes input hashes the
// empty string, so the kind is safe on any column type.
type EmailHashTransformer struct{}

func NewEmailHashTransformer() *EmailHashTransformer {
	return &EmailHashTransformer{}
}

func (t *EmailHashTransformer) Transform(value any) (any, error) {
	b, ok := asBytes(value)
	if !ok {
		b = []byte{}
	}
	return append(hashChars(b, emailHashLength), []byte("@example")...), nil
}

// DomainHashTransformer replaces a domain name with a stable hash-derived
// label under .example.
type DomainHashTransformer struct{}

func NewDomainHashTransformer() *DomainHashTransformer {
	return &DomainHashTransformer{}
}

func (t *DomainHashTransformer) Transform(value any) (any, error) {
	if isEmpty(value) {
		return emptied(value), nil
	}
	b, ok := asBytes(value)
	if !ok {
		b = []byte{}
	}
	return append(hashChars(b, domainHashLength), []byte(".example")...), nil
}
