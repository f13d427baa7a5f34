package loader_test

import (
	"testing"

	loader "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/config_loader"

	"github.com/stretchr/testify/assert"
)

func TestResolveConfPath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv("CONF_PATH", "/from/env")
		assert.Equal(t, "/explicit", loader.ResolveConfPath("/explicit"))
	})

	t.Run("env var fallback", func(t *testing.T) {
		t.Setenv("CONF_PATH", "/from/env")
		assert.Equal(t, "/from/env", loader.ResolveConfPath(""))
	})

	t.Run("default directory", func(t *testing.T) {
		t.Setenv("CONF_PATH", "")
		assert.Equal(t, "configs", loader.ResolveConfPath(""))
	})
}
