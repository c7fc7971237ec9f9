package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggles(t *testing.T) {
	toggles := []struct {
		envVar string
		value  func() bool
	}{
		{FakeEnvVar, Fake},
		{SkipInstallEnvVar, SkipInstall},
		{SkipPostInstallEnvVar, SkipPostInstall},
	}

	for _, toggle := range toggles {
		t.Run(toggle.envVar, func(t *testing.T) {
			// Registers the restore, then clears the variable for the test
			t.Setenv(toggle.envVar, "")
			require.NoError(t, os.Unsetenv(toggle.envVar))

			assert.False(t, toggle.value())

			// The original toggles trigger on presence, not value
			t.Setenv(toggle.envVar, "")
			assert.True(t, toggle.value())

			t.Setenv(toggle.envVar, "0")
			assert.True(t, toggle.value())
		})
	}
}
