// SPDX-License-Identifier: Apache-2.0

package transformers

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomIntTransformer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rangeParam string

		wantLow  int64
		wantHigh int64
	}{
		{name: "explicit range", rangeParam: "10-20", wantLow: 10, wantHigh: 20},
		{name: "single upper bound", rangeParam: "5", wantLow: 0, wantHigh: 5},
		{name: "single value range", rangeParam: "7-7", wantLow: 7, wantHigh: 7},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			transformer, err := NewRandomIntTransformer(NewFaker(1), tc.rangeParam)
			require.NoError(t, err)

			for i := 0; i < 50; i++ {
				v, err := transformer.Transform([]byte("3"))
				require.NoError(t, err)

				n, err := strconv.ParseInt(string(v.([]byte)), 10, 64)
				require.NoError(t, err)
				require.GreaterOrEqual(t, n, tc.wantLow)
				require.LessOrEqual(t, n, tc.wantHigh)
			}
		})
	}
}

func TestRandomIntTransformer_Default(t *testing.T) {
	t.Parallel()

	transformer, err := NewRandomIntTransformer(NewFaker(1), "")
	require.NoError(t, err)

	v, err := transformer.Transform([]byte("3"))
	require.NoError(t, err)

	n, err := strconv.ParseInt(string(v.([]byte)), 10, 64)
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, int64(0))
}

func TestRandomIntTransformer_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := NewRandomIntTransformer(NewFaker(1), "ten")
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = NewRandomIntTransformer(NewFaker(1), "20-10")
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestRandomMoneyTransformer(t *testing.T) {
	t.Parallel()

	transformer, err := NewRandomMoneyTransformer(NewFaker(1), "100")
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		v, err := transformer.Transform([]byte("9.99"))
		require.NoError(t, err)
		require.Regexp(t, `^[0-9]+\.[0-9]{2}$`, string(v.([]byte)))

		amount, err := strconv.ParseFloat(string(v.([]byte)), 64)
		require.NoError(t, err)
		require.GreaterOrEqual(t, amount, 0.0)
		require.LessOrEqual(t, amount, 100.0)
	}
}

func TestRandomMoneyTransformer_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := NewRandomMoneyTransformer(NewFaker(1), "lots")
	require.ErrorIs(t, err, ErrInvalidParameters)
}
