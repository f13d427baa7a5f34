package conf_test

import (
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-greeting/internal/conf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutDuration(t *testing.T) {
	t.Run("valid duration", func(t *testing.T) {
		d, ok := conf.HTTP{Timeout: "1500ms"}.TimeoutDuration()
		require.True(t, ok)
		assert.Equal(t, 1500*time.Millisecond, d)
	})

	t.Run("unusable values", func(t *testing.T) {
		for _, timeout := range []string{"", "banana", "-1s", "0s"} {
			_, ok := conf.HTTP{Timeout: timeout}.TimeoutDuration()
			assert.False(t, ok, "timeout %q", timeout)
		}
	})
}
