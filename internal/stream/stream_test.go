package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	assert.Equal(t, None, Detect("data.txt"))
	assert.Equal(t, Gzip, Detect("data.txt.gz"))
	assert.Equal(t, Zstd, Detect("data.ZST"))
	assert.Equal(t, LZ4, Detect("/tmp/x.lz4"))
}

func TestCreateOpen_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"plain.txt", "data.gz", "data.zst", "data.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			w, err := Create(path)
			require.NoError(t, err)
			_, err = w.WriteString("1 2 3\n4 5 6\n")
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := Open(path)
			require.NoError(t, err)
			defer r.Close()
			var lines []string
			for r.Scan() {
				lines = append(lines, r.Text())
			}
			require.NoError(t, r.Err())
			assert.Equal(t, []string{"1 2 3", "4 5 6"}, lines)
		})
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
