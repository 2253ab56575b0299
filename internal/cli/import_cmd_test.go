package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportCmd(t *testing.T) {
	app := newTestApp(t)
	path := writeImportFile(t, `{
		"settings": {"hourly_rate": "250.00", "pause_enabled": false},
		"shifts": [
			{"date": "2025-06-16", "start_time": "09:00", "end_time": "17:00"},
			{"date": "2025-06-17", "start_time": "09:00", "end_time": "17:00"}
		]
	}`)

	out, err := runCommand(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Settings imported")
	assert.Contains(t, out, "2 added, 0 already existed")

	// Re-import is idempotent.
	out, err = runCommand(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0 added, 2 already existed")

	// Pause now disabled and rate replaced: 8h at 250.
	out, err = runCommand(t, app, "show", "--from", "2025-06-16", "--to", "2025-06-16")
	require.NoError(t, err)
	assert.Contains(t, out, "2000.00 kr")
}

func TestImportCmd_InvalidFile(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeImportFile(t, `{"shifts": [{"date": "bogus", "start_time": "09:00", "end_time": "17:00"}]}`)
	_, err = runCommand(t, app, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shift 0")
}
