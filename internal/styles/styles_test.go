package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMenuItem(t *testing.T) {
	item := MenuItem("3", "Show configuration")
	require.Contains(t, item, "[3]")
	require.Contains(t, item, "Show configuration")
	require.Less(t, strings.Index(item, "[3]"), strings.Index(item, "Show"))
}
