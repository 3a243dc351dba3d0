package launcher

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskspace-io/diskspace/internal/models"
)

func TestLaunchMissingBinary(t *testing.T) {
	err := Launch(models.LaunchConfig{Command: "definitely-not-a-real-binary-7f3a", Args: []string{"-x"}})
	require.Error(t, err)

	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Equal(t, "definitely-not-a-real-binary-7f3a -x", launchErr.Command)
}

func TestLaunchEmptyCommand(t *testing.T) {
	err := Launch(models.LaunchConfig{})
	var launchErr *LaunchError
	assert.True(t, errors.As(err, &launchErr))
}

func TestLaunchDoesNotWait(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	// The test binary with an unknown -test.run pattern exits immediately;
	// Launch only has to start it.
	assert.NoError(t, Launch(models.LaunchConfig{Command: exe, Args: []string{"-test.run", "^$"}}))
}

func TestLaunchAllStopsAtFirstFailure(t *testing.T) {
	err := LaunchAll([]models.LaunchConfig{
		{Command: "definitely-not-a-real-binary-1"},
		{Command: "definitely-not-a-real-binary-2"},
	})
	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Equal(t, "definitely-not-a-real-binary-1", launchErr.Command)
}
