package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"afredes/pdf2docx/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, fileutils.FileExists(file))
	assert.False(t, fileutils.FileExists(dir))
	assert.False(t, fileutils.FileExists(filepath.Join(dir, "missing")))
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, fileutils.DirectoryExists(dir))
	assert.False(t, fileutils.DirectoryExists(file))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(dir, "missing")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, fileutils.EnsureDirectoryExists(target))
	assert.True(t, fileutils.DirectoryExists(target))

	// Idempotent.
	assert.NoError(t, fileutils.EnsureDirectoryExists(target))
}

func TestReplaceExtension(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		newExt   string
		expected string
	}{
		{
			name:     "PDF to DOCX",
			path:     "report.pdf",
			newExt:   ".docx",
			expected: "report.docx",
		},
		{
			name:     "Extension without leading dot",
			path:     "report.pdf",
			newExt:   "docx",
			expected: "report.docx",
		},
		{
			name:     "Path with directories",
			path:     filepath.Join("out", "2024", "report.pdf"),
			newExt:   ".docx",
			expected: filepath.Join("out", "2024", "report.docx"),
		},
		{
			name:     "Multiple dots replaces only the last",
			path:     "archive.tar.pdf",
			newExt:   ".docx",
			expected: "archive.tar.docx",
		},
		{
			name:     "No extension appends",
			path:     "report",
			newExt:   ".docx",
			expected: "report.docx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fileutils.ReplaceExtension(tt.path, tt.newExt))
		})
	}
}

func TestListFilesWithExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.PDF", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	files, err := fileutils.ListFilesWithExtension(dir, ".pdf")
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "a.pdf", filepath.Base(files[0]))
	assert.Equal(t, "b.PDF", filepath.Base(files[1]))
}

func TestListFilesWithExtensionIgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.pdf"), []byte("x"), 0644))

	nested := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "nested.pdf"), []byte("x"), 0644))

	files, err := fileutils.ListFilesWithExtension(dir, ".pdf")
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "top.pdf", filepath.Base(files[0]))
}

func TestListFilesWithExtensionMissingDirectory(t *testing.T) {
	_, err := fileutils.ListFilesWithExtension(filepath.Join(t.TempDir(), "missing"), ".pdf")
	assert.Error(t, err)
}
