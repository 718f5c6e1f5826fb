package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"afredes/pdf2docx/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(file, []byte("%PDF-1.7"), 0644))

	assert.NoError(t, validation.IsValidPath(file))
	assert.NoError(t, validation.IsValidPath(dir))
	assert.Error(t, validation.IsValidPath(filepath.Join(dir, "missing.pdf")))
}

func TestIsPDFFile(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		expected bool
	}{
		{
			name:     "Valid PDF header",
			content:  []byte("%PDF-1.4\n%binary stuff"),
			expected: true,
		},
		{
			name:     "Plain text file",
			content:  []byte("hello world"),
			expected: false,
		},
		{
			name:     "Empty file",
			content:  []byte{},
			expected: false,
		},
		{
			name:     "Header shorter than magic",
			content:  []byte("%PD"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "candidate.pdf")
			require.NoError(t, os.WriteFile(path, tt.content, 0644))

			ok, err := validation.IsPDFFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "good.pdf")
	require.NoError(t, os.WriteFile(valid, []byte("%PDF-1.4"), 0644))
	assert.NoError(t, validation.ValidateInputFile(valid))

	bogus := filepath.Join(dir, "bogus.pdf")
	require.NoError(t, os.WriteFile(bogus, []byte("<html>"), 0644))
	assert.Error(t, validation.ValidateInputFile(bogus))

	assert.Error(t, validation.ValidateInputFile(filepath.Join(dir, "missing.pdf")))
}
