// SPDX-License-Identifier: Apache-2.0

package export

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOutputKind(t *testing.T) {
	t.Parallel()

	kind, err := ParseOutputKind("dir")
	require.NoError(t, err)
	require.Equal(t, OutputDir, kind)

	kind, err = ParseOutputKind("stdout")
	require.NoError(t, err)
	require.Equal(t, OutputStdout, kind)

	_, err = ParseOutputKind("s3")
	require.Error(t, err)
}

func TestOutput_Writer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := NewOutput(OutputDir, filepath.Join(dir, "trunk"), false, nil)
	require.NoError(t, err)

	w, err := out.Writer("shop", "users")
	require.NoError(t, err)

	_, err = w.Write([]byte("id,name\n1,bob\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(dir, "trunk", "shop.users.csv"))
	require.NoError(t, err)
	require.Equal(t, "id,name\n1,bob\n", string(data))
}

func TestOutput_WriterCompressed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := NewOutput(OutputDir, dir, true, nil)
	require.NoError(t, err)

	w, err := out.Writer("shop", "users")
	require.NoError(t, err)

	_, err = w.Write([]byte("id,name\n1,bob\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	fh, err := os.Open(filepath.Join(dir, "shop.users.csv.gz"))
	require.NoError(t, err)
	defer fh.Close()

	gz, err := gzip.NewReader(fh)
	require.NoError(t, err)

	data, err := io.ReadAll(gz)
	require.NoError(t, err)
	require.Equal(t, "id,name\n1,bob\n", string(data))
}
