package files

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineFileFullPath(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "data.json")
	require.NoError(t, os.WriteFile(existing, []byte("test"), 0644))

	tests := []struct {
		name         string
		inputPath    string
		nameTemplate string
		expectFile   string
		expectFolder string
	}{
		{
			name:         "Directory path with name template",
			inputPath:    tmpDir,
			nameTemplate: "output.json",
			expectFile:   filepath.Join(tmpDir, "output.json"),
			expectFolder: tmpDir,
		},
		{
			name:         "Existing file",
			inputPath:    existing,
			nameTemplate: "ignored.txt",
			expectFile:   existing,
			expectFolder: tmpDir,
		},
		{
			name:         "Path with no extension, treat as folder",
			inputPath:    filepath.Join(tmpDir, "output_folder"),
			nameTemplate: "report.sarif",
			expectFile:   filepath.Join(tmpDir, "output_folder", "report.sarif"),
			expectFolder: filepath.Join(tmpDir, "output_folder"),
		},
		{
			name:         "Non-existent file with extension",
			inputPath:    filepath.Join(tmpDir, "nonexistent.xlsx"),
			nameTemplate: "ignored.txt",
			expectFile:   filepath.Join(tmpDir, "nonexistent.xlsx"),
			expectFolder: tmpDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath, folderPath, err := DetermineFileFullPath(tt.inputPath, tt.nameTemplate)
			require.NoError(t, err)
			assert.Equal(t, tt.expectFile, filePath)
			assert.Equal(t, tt.expectFolder, folderPath)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/reports/out.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "reports", "out.json"), got)

	got, err = ExpandPath("/abs/out.json")
	require.NoError(t, err)
	assert.Equal(t, "/abs/out.json", got)
}

func TestValidatePath(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "result.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

	assert.NoError(t, ValidatePath(file))
	assert.EqualError(t, ValidatePath(tmpDir), `path "`+tmpDir+`" is a directory, not a file`)
	assert.Error(t, ValidatePath(filepath.Join(tmpDir, "missing.json")))
}

func TestWriteFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "report.html")

	require.NoError(t, WriteFile(out, func(w io.Writer) error {
		_, err := io.WriteString(w, "<html></html>")
		return err
	}))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	err = WriteFile(out, func(io.Writer) error { return errors.New("boom") })
	assert.EqualError(t, err, "error writing data to file: boom")
}
