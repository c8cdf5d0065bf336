package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `{
		"version": "review-2025.2",
		"lastUpdated": "2025-06-01",
		"citations": [
			{
				"sourceId": "who-emergency-care-2019",
				"chunkId": "triage-red-flags",
				"supportText": "Chest pain requires immediate assessment.",
				"tags": ["triage", "emergency"]
			}
		]
	}`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "review-2025.2", f.Version)
	require.Len(t, f.Citations, 1)
	assert.Equal(t, []string{"triage", "emergency"}, f.Citations[0].Tags)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "not json"},
		{name: "missing version", content: `{"citations": [{"sourceId": "x"}]}`},
		{name: "empty citations", content: `{"version": "v1", "citations": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
