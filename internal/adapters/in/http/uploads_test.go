package http

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteImage(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

	t.Run("stores the content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fish.png")

		require.NoError(t, writeImage(path, bytes.NewReader(png)))

		stored, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, png, stored)
	})

	t.Run("interrupted upload leaves no file", func(t *testing.T) {
		dir := t.TempDir()
		broken := errors.New("connection reset")

		err := writeImage(filepath.Join(dir, "fish.png"), io.MultiReader(bytes.NewReader(png), iotest.ErrReader(broken)))

		require.ErrorIs(t, err, broken)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("oversized content leaves no file", func(t *testing.T) {
		dir := t.TempDir()
		huge := bytes.NewReader(append(png, make([]byte, maxImageBytes)...))

		err := writeImage(filepath.Join(dir, "fish.png"), huge)

		require.ErrorIs(t, err, errImageTooLarge)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing directory", func(t *testing.T) {
		err := writeImage(filepath.Join(t.TempDir(), "absent", "fish.png"), bytes.NewReader(png))

		require.Error(t, err)
	})
}
