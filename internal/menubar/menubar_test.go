package menubar

import (
	"encoding/base64"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskspace-io/diskspace/internal/models"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func lowSnapshot() models.Snapshot {
	return models.NewSnapshot(map[models.VolumeID]models.VolumeStats{
		"/": {
			AvailableBytes: 4 * humanize.GiByte, TotalBytes: 100 * humanize.GiByte,
			AvailableInodes: 1000, TotalInodes: 100000, HasInodes: true,
		},
		"/Volumes/Data": {AvailableBytes: 50 * humanize.GiByte, TotalBytes: 100 * humanize.GiByte},
	})
}

func TestBuildEmptySnapshotIsEmpty(t *testing.T) {
	menu := Build(nil, models.LaunchConfig{Command: "/usr/bin/open"})
	assert.True(t, menu.Empty())
	assert.Empty(t, captureStdout(t, menu.Render))
}

func TestBuildLowSnapshot(t *testing.T) {
	menu := Build(lowSnapshot(), models.LaunchConfig{Command: "/usr/bin/open", Args: []string{"-a", "DaisyDisk"}})

	assert.Equal(t, Item{Text: "4.0 GiB", TemplateImage: templateImage}, menu.Status)
	require.Len(t, menu.Rows, 4)
	assert.Equal(t, "/: 4% (4.0 GiB, 1,000 files)", menu.Rows[0].Text)
	assert.Equal(t, "/Volumes/Data: 50% (50 GiB)", menu.Rows[1].Text)
	assert.True(t, menu.Rows[2].Separator)
	assert.Equal(t, Item{Text: "Open disk analyzer", Command: []string{"/usr/bin/open", "-a", "DaisyDisk"}}, menu.Rows[3])
}

func TestBuildWithoutAnalyzer(t *testing.T) {
	snap := models.NewSnapshot(map[models.VolumeID]models.VolumeStats{"/": {AvailableBytes: 1, TotalBytes: 10}})
	menu := Build(snap, models.LaunchConfig{})
	require.Len(t, menu.Rows, 1)
	assert.Equal(t, "/: 10% (1 B)", menu.Rows[0].Text)
}

func TestErrorMenu(t *testing.T) {
	menu := ErrorMenu("I/O", errors.New("no such file | directory"))
	assert.Empty(t, menu.Rows)
	assert.Equal(t, "I/O error: no such file ¦ directory", menu.Status.text())
	assert.Equal(t, templateImage, menu.Status.TemplateImage)
}

func TestRenderPluginOutput(t *testing.T) {
	menu := Build(lowSnapshot(), models.LaunchConfig{Command: "/usr/bin/open", Args: []string{"-a", "DaisyDisk"}})
	out := captureStdout(t, menu.Render)

	assert.Contains(t, out, "4.0 GiB")
	assert.Contains(t, out, "templateImage="+base64.StdEncoding.EncodeToString(templateImage))
	assert.Contains(t, out, "---")
	assert.Contains(t, out, "/: 4% (4.0 GiB, 1,000 files)")
	assert.Contains(t, out, "Open disk analyzer")
	assert.Contains(t, out, "/usr/bin/open")
	assert.Contains(t, out, "DaisyDisk")
	assert.Contains(t, out, "terminal=false")
}
