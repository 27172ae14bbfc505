// SPDX-License-Identifier: Apache-2.0

package transformers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailHashTransformer(t *testing.T) {
	t.Parallel()

	transformer := NewEmailHashTransformer()

	v, err := transformer.Transform([]byte("alice@corp.test"))
	require.NoError(t, err)
	require.Regexp(t, "^[a-z0-9]{11}@example$", string(v.([]byte)))

	// same original, same pseudonym, also across instances
	again, err := NewEmailHashTransformer().Transform([]byte("alice@corp.test"))
	require.NoError(t, err)
	require.Equal(t, v, again)

	other, err := transformer.Transform([]byte("bob@corp.test"))
	require.NoError(t, err)
	require.NotEqual(t, v, other)
}

func TestEmailHashTransformer_NonBytes(t *testing.T) {
	t.Parallel()

	transformer := NewEmailHashTransformer()

	// non-textual values hash the empty string instead of failing
	fromInt, err := transformer.Transform(int64(7))
	require.NoError(t, err)
	fromEmpty, err := transformer.Transform([]byte{})
	require.NoError(t, err)
	require.Equal(t, fromEmpty, fromInt)
}

func TestDomainHashTransformer(t *testing.T) {
	t.Parallel()

	transformer := NewDomainHashTransformer()

	v, err := transformer.Transform([]byte("corp.test"))
	require.NoError(t, err)
	require.Regexp(t, `^[a-z0-9]{6}\.example$`, string(v.([]byte)))

	again, err := transformer.Transform([]byte("corp.test"))
	require.NoError(t, err)
	require.Equal(t, v, again)

	v, err = transformer.Transform(nil)
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = transformer.Transform([]byte{})
	require.NoError(t, err)
	require.Equal(t, []byte{}, v)
}
