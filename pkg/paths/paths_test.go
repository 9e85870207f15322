package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDir(t *testing.T) {
	t.Run("env override wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/custom/confdir")

		assert.Equal(t, "/custom/confdir", ConfigDir())
	})

	t.Run("defaults to xdg config home", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")

		dir := ConfigDir()
		assert.True(t, strings.HasSuffix(dir, AppDirName), "got %q", dir)
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/pl-test")

	assert.Equal(t, filepath.Join("/tmp/pl-test", ConfigFileName), ConfigFile())
}
