package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteWordList writes one word per line into a fresh temp directory and
// returns the file path. It fails the test immediately on error.
func WriteWordList(t *testing.T, words ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	content := strings.Join(words, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write word list")

	return path
}
