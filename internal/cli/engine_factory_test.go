package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/winnow/internal/testutils"
)

func TestResolveWordList(t *testing.T) {
	// Helper to create a temp dir with specific files
	createDir := func(t *testing.T, files []string) string {
		dir := t.TempDir()
		for _, f := range files {
			err := os.WriteFile(filepath.Join(dir, f), []byte("crane\nslate\n"), 0644)
			require.NoError(t, err)
		}
		return dir
	}

	// Keep the real system dictionary out of the way unless a subtest opts in.
	orig := systemWordList
	systemWordList = filepath.Join(t.TempDir(), "no-such-dict")
	t.Cleanup(func() { systemWordList = orig })

	t.Run("Explicit path wins", func(t *testing.T) {
		dir := createDir(t, []string{"words.txt"})
		assert.Equal(t, "custom.txt", ResolveWordList(dir, "custom.txt"))
	})

	t.Run("Default to words.txt if exists", func(t *testing.T) {
		dir := createDir(t, []string{"words.txt", "wordlist.txt"})
		assert.Equal(t, filepath.Join(dir, "words.txt"), ResolveWordList(dir, ""))
	})

	t.Run("Fallback to wordlist.txt", func(t *testing.T) {
		dir := createDir(t, []string{"wordlist.txt", "linuxwords.txt"})
		assert.Equal(t, filepath.Join(dir, "wordlist.txt"), ResolveWordList(dir, ""))
	})

	t.Run("Fallback to linuxwords.txt", func(t *testing.T) {
		dir := createDir(t, []string{"linuxwords.txt", "other.txt"})
		assert.Equal(t, filepath.Join(dir, "linuxwords.txt"), ResolveWordList(dir, ""))
	})

	t.Run("Fallback to system dictionary", func(t *testing.T) {
		dict := filepath.Join(t.TempDir(), "words")
		require.NoError(t, os.WriteFile(dict, []byte("crane\n"), 0644))

		prev := systemWordList
		systemWordList = dict
		defer func() { systemWordList = prev }()

		assert.Equal(t, dict, ResolveWordList(createDir(t, nil), ""))
	})

	t.Run("Default to words.txt if nothing matches", func(t *testing.T) {
		dir := createDir(t, []string{"other.txt"})
		assert.Equal(t, filepath.Join(dir, "words.txt"), ResolveWordList(dir, ""))
	})
}

func TestCreateEngine(t *testing.T) {
	list := testutils.WriteWordList(t, "crane", "crate", "slate")

	t.Run("Applies game settings", func(t *testing.T) {
		engine, err := CreateEngine(RunOptions{WordsPath: list, Letters: 5, Guesses: 3}, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, engine.Letters())
		assert.Len(t, engine.Words(), 3)
	})

	t.Run("Rejects unknown pool", func(t *testing.T) {
		_, err := CreateEngine(RunOptions{WordsPath: list, Pool: "hardmode"}, nil)
		assert.Error(t, err)
	})

	t.Run("Rejects missing list", func(t *testing.T) {
		_, err := CreateEngine(RunOptions{WordsPath: filepath.Join(t.TempDir(), "absent.txt")}, nil)
		assert.Error(t, err)
	})
}
