package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/varkas/amptop/internal/battery"
	"codeberg.org/varkas/amptop/internal/config"
)

func TestNewProviderDefaultsToSysfs(t *testing.T) {
	provider, err := newProvider(&config.Config{Provider: "sysfs"})
	require.NoError(t, err)
	assert.IsType(t, &battery.SysfsProvider{}, provider)
}

func TestCommandTree(t *testing.T) {
	daemon, _, err := rootCmd.Find([]string{"daemon"})
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, c := range daemon.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["start"])
	assert.True(t, names["stop"])
	assert.True(t, names["status"])
	assert.True(t, names["run"])
}
