// SPDX-License-Identifier: Apache-2.0

package transformers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableSeed(t *testing.T) {
	t.Parallel()

	require.Equal(t, TableSeed("shop", "users"), TableSeed("shop", "users"))
	require.NotEqual(t, TableSeed("shop", "users"), TableSeed("shop", "orders"))
	require.NotEqual(t, TableSeed("shop", "users"), TableSeed("warehouse", "users"))
}

func TestFaker_Deterministic(t *testing.T) {
	t.Parallel()

	draw := func(seed uint64) []string {
		faker := NewFaker(seed)
		transformer := NewFullnameTransformer(faker)

		out := make([]string, 0, 10)
		for i := 0; i < 10; i++ {
			v, err := transformer.Transform([]byte("original"))
			require.NoError(t, err)
			out = append(out, string(v.([]byte)))
		}
		return out
	}

	require.Equal(t, draw(42), draw(42))
	require.NotEqual(t, draw(42), draw(43))
}

// The generating kinds keep absent data absent: NULL stays NULL and an
// empty value stays empty, only personal names generate unconditionally.
func TestTransform_PreservesEmptiness(t *testing.T) {
	t.Parallel()

	guarded := []Kind{
		KindOrganization,
		KindAddr1,
		KindAddr2,
		KindCity,
		KindPostalCode,
		KindHostname,
		KindDomainHash,
		KindIpv4,
		KindIpv6,
		KindIpv6Bin,
		KindUsername,
		KindEmail,
		KindPhone,
		KindStateCode,
		KindCountryCode,
		KindMacAddress,
		KindRandomAlphanum,
		KindLoremIpsum,
		KindRandomInt,
		KindRandomMoney,
	}

	for _, kind := range guarded {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			transformer, err := New(NewFaker(1), &Config{Kind: kind})
			require.NoError(t, err)

			v, err := transformer.Transform(nil)
			require.NoError(t, err)
			require.Nil(t, v)

			v, err = transformer.Transform([]byte{})
			require.NoError(t, err)
			require.Equal(t, []byte{}, v)
		})
	}
}

func TestTransform_NamesGenerateUnconditionally(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindFirstname, KindLastname, KindFullname} {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			transformer, err := New(NewFaker(1), &Config{Kind: kind})
			require.NoError(t, err)

			v, err := transformer.Transform(nil)
			require.NoError(t, err)
			require.NotEmpty(t, v.([]byte))
		})
	}
}
