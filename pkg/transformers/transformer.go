// SPDX-License-Identifier: Apache-2.0

package transformers

import (
	"errors"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/zeebo/xxh3"
)

// Transformer mutates a single column value. Values are what the MySQL
// driver produces for an untyped scan: nil for NULL, []byte for textual and
// binary columns, int64/float64 for numerics fetched over the binary
// protocol.
type Transformer interface {
	Transform(value any) (any, error)
}

// Config is the declarative per-column rule: a kind plus up to two free-form
// string parameters whose meaning depends on the kind.
type Config struct {
	Kind   Kind
	Param  string
	Param2 string
}

type Kind string

const (
	KindEmpty             Kind = "empty"
	KindNull              Kind = "null"
	KindReplace           Kind = "replace"
	KindReplaceIfNotEmpty Kind = "replace_if_not_empty"
	KindFirstname         Kind = "firstname"
	KindLastname          Kind = "lastname"
	KindFullname          Kind = "fullname"
	KindOrganization      Kind = "organization"
	KindAddr1             Kind = "addr1"
	KindAddr2             Kind = "addr2"
	KindCity              Kind = "city"
	KindPostalCode        Kind = "postal_code"
	KindHostname          Kind = "hostname"
	KindEmailHash         Kind = "email_hash"
	KindDomainHash        Kind = "domain_hash"
	KindIpv4              Kind = "ipv4"
	KindIpv6              Kind = "ipv6"
	KindIpv6Bin           Kind = "ipv6_bin"
	KindUsername          Kind = "username"
	KindEmail             Kind = "email"
	KindPhone             Kind = "phone"
	KindStateCode         Kind = "state_code"
	KindCountryCode       Kind = "country_code"
	KindMacAddress        Kind = "mac_address"
	KindRandomAlphanum    Kind = "random_alphanum"
	KindLoremIpsum        Kind = "lorem_ipsum"
	KindRandomInt         Kind = "random_int"
	KindRandomMoney       Kind = "random_money"
	KindRegex             Kind = "regex"
)

var (
	ErrUnsupportedKind   = errors.New("unsupported transform kind")
	ErrInvalidParameters = errors.New("invalid transform parameters")
)

// Faker bundles the synthetic-data corpus with the deterministic random
// source feeding it. All transformers of one table share one Faker, so a
// fixed seed replays the exact same value stream.
type Faker struct {
	*gofakeit.Faker
	rand *rand.Rand
}

func NewFaker(seed uint64) *Faker {
	r := rand.New(rand.NewSource(int64(seed))) //nolint:gosec
	return &Faker{
		Faker: gofakeit.NewCustom(r),
		rand:  r,
	}
}

// TableSeed derives the per-table seed from "<database>.<table>", which
// makes re-runs of an unchanged export byte identical.
func TableSeed(database, table string) uint64 {
	return xxh3.HashString(database + "." + table)
}

// isEmpty reports whether the original value counts as empty for the kinds
// that preserve emptiness instead of generating a value.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case []byte:
		return len(v) == 0
	case string:
		return len(v) == 0
	default:
		return false
	}
}

// emptied maps an empty original to its empty output: NULL stays NULL,
// anything else becomes empty bytes.
func emptied(value any) any {
	if value == nil {
		return nil
	}
	return []byte{}
}

func asBytes(value any) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
