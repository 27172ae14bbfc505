// SPDX-License-Identifier: Apache-2.0

package transformers

import (
	"net"
)

func NewIpv4Transformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.IPv4Address)
}

func NewIpv6Transformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.IPv6Address)
}

func NewMacAddressTransformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.MacAddress)
}

// Ipv6BinTransformer generates an IPv6 address and stores its raw 16-byte
// form, for columns holding packed addresses instead of text.
type Ipv6BinTransformer struct {
	faker *Faker
}

func NewIpv6BinTransformer(faker *Faker) *Ipv6BinTransformer {
	return &Ipv6BinTransformer{faker: faker}
}

func (t *Ipv6BinTransformer) Transform(value any) (any, error) {
	if isEmpty(value) {
		return emptied(value), nil
	}
	addr := net.ParseIP(t.faker.IPv6Address())
	return []byte(addr.To16()), nil
}

const hostnameCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// HostnameTransformer keeps the first two characters of the original (a
// structural prefix in our host naming scheme) and randomizes the rest,
// preserving the overall length.
type HostnameTransformer struct {
	faker *Faker
}

func NewHostnameTransformer(faker *Faker) *HostnameTransformer {
	return &HostnameTransformer{faker: faker}
}

func (t *HostnameTransformer) Transform(value any) (any, error) {
	if isEmpty(value) {
		return emptied(value), nil
	}
	b, ok := asBytes(value)
	if !ok {
		return value, nil
	}
	if len(b) <= 2 {
		return b, nil
	}
	out := make([]byte, 0, len(b))
	out = append(out, b[:2]...)
	out = append(out, randomChars(t.faker, hostnameCharset, len(b)-2)...)
	return out, nil
}
