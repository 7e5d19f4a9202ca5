package site

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

// bumpMtime pushes a file's modification time past every existing output,
// regardless of filesystem timestamp granularity.
func bumpMtime(t *testing.T, path string) {
	t.Helper()
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))
}
