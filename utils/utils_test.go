package utils_test

import (
	"testing"

	"github.com/VinukaThejana/feedback/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	flags, err := utils.ParseFlags(nil)
	require.NoError(t, err)
	assert.False(t, flags.Migrate)
	assert.Empty(t, flags.EnvPath)

	flags, err = utils.ParseFlags([]string{"-migrate", "-env", "/etc/feedback"})
	require.NoError(t, err)
	assert.True(t, flags.Migrate)
	assert.Equal(t, "/etc/feedback", flags.EnvPath)

	_, err = utils.ParseFlags([]string{"-unknown"})
	assert.Error(t, err)
}
