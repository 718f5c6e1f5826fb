package converter_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"afredes/pdf2docx/internal/converter"
	"afredes/pdf2docx/internal/converterror"
	"afredes/pdf2docx/internal/docwriter"
	"afredes/pdf2docx/internal/extractor"
	"afredes/pdf2docx/internal/logging"
	"afredes/pdf2docx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEmptyFile(path string) error {
	return os.WriteFile(path, nil, 0644)
}

func newTestConverter(ext extractor.PDFExtractor, writer *docwriter.MockWriter, options converter.Options) *converter.Converter {
	factory := docwriter.Factory(func() docwriter.DocumentWriter {
		return writer
	})
	return converter.New(ext, factory, options, &logging.MockLogger{})
}

func TestConvertWritesSanitizedParagraphs(t *testing.T) {
	pages := []models.PageText{
		{Number: 1, Text: "Hi&#9;there&#x0b;\x7f!"},
		{Number: 2, Text: "second page"},
	}
	ext := extractor.NewMockPDFExtractor(pages, nil)
	writer := docwriter.NewMockWriter()
	conv := newTestConverter(ext, writer, converter.DefaultOptions())

	out := filepath.Join(t.TempDir(), "out.docx")
	count, err := conv.Convert("in.pdf", out)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"Hi\tthere!", "second page"}, writer.Paragraphs())
	assert.Equal(t, out, writer.SavedPath)
}

func TestConvertAddsPageBreakAfterEachPage(t *testing.T) {
	pages := []models.PageText{
		{Number: 1, Text: "one"},
		{Number: 2, Text: "two"},
	}
	ext := extractor.NewMockPDFExtractor(pages, nil)
	writer := docwriter.NewMockWriter()
	conv := newTestConverter(ext, writer, converter.DefaultOptions())

	_, err := conv.Convert("in.pdf", filepath.Join(t.TempDir(), "out.docx"))

	require.NoError(t, err)
	expected := []string{
		"one", docwriter.PageBreakMarker,
		"two", docwriter.PageBreakMarker,
	}
	assert.Equal(t, expected, writer.Content)
}

func TestConvertWithoutPageBreaks(t *testing.T) {
	pages := []models.PageText{
		{Number: 1, Text: "one"},
		{Number: 2, Text: "two"},
	}
	ext := extractor.NewMockPDFExtractor(pages, nil)
	writer := docwriter.NewMockWriter()
	conv := newTestConverter(ext, writer, converter.Options{PageBreaks: false, Overwrite: true})

	_, err := conv.Convert("in.pdf", filepath.Join(t.TempDir(), "out.docx"))

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, writer.Content)
}

func TestConvertDerivesOutputPath(t *testing.T) {
	ext := extractor.NewMockPDFExtractor([]models.PageText{{Number: 1, Text: "x"}}, nil)
	writer := docwriter.NewMockWriter()
	conv := newTestConverter(ext, writer, converter.DefaultOptions())

	input := filepath.Join(t.TempDir(), "statement.pdf")
	_, err := conv.Convert(input, "")

	require.NoError(t, err)
	assert.Equal(t, converter.DeriveOutputPath(input), writer.SavedPath)
	assert.Equal(t, ".docx", filepath.Ext(writer.SavedPath))
}

func TestConvertPropagatesExtractionError(t *testing.T) {
	extractionErr := errors.New("broken xref")
	ext := extractor.NewMockPDFExtractor(nil, extractionErr)
	writer := docwriter.NewMockWriter()
	conv := newTestConverter(ext, writer, converter.DefaultOptions())

	count, err := conv.Convert("in.pdf", filepath.Join(t.TempDir(), "out.docx"))

	assert.ErrorIs(t, err, extractionErr)
	assert.Zero(t, count)
	assert.Empty(t, writer.Content)
}

func TestConvertWrapsSaveError(t *testing.T) {
	ext := extractor.NewMockPDFExtractor([]models.PageText{{Number: 1, Text: "x"}}, nil)
	writer := docwriter.NewMockWriter()
	writer.SaveErr = errors.New("disk full")
	conv := newTestConverter(ext, writer, converter.DefaultOptions())

	_, err := conv.Convert("in.pdf", filepath.Join(t.TempDir(), "out.docx"))

	var writeErr *converterror.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, writer.SaveErr)
}

func TestConvertRespectsOverwriteOption(t *testing.T) {
	ext := extractor.NewMockPDFExtractor([]models.PageText{{Number: 1, Text: "x"}}, nil)
	writer := docwriter.NewMockWriter()
	conv := newTestConverter(ext, writer, converter.Options{PageBreaks: true, Overwrite: false})

	existing := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, writeEmptyFile(existing))

	_, err := conv.Convert("in.pdf", existing)

	assert.Error(t, err)
	assert.Empty(t, writer.Content)
}

func TestConvertEmptyDocument(t *testing.T) {
	ext := extractor.NewMockPDFExtractor([]models.PageText{}, nil)
	writer := docwriter.NewMockWriter()
	conv := newTestConverter(ext, writer, converter.DefaultOptions())

	count, err := conv.Convert("in.pdf", filepath.Join(t.TempDir(), "out.docx"))

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, writer.Content)
	assert.NotEmpty(t, writer.SavedPath)
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple pdf extension",
			input:    "report.pdf",
			expected: "report.docx",
		},
		{
			name:     "Nested path",
			input:    filepath.Join("some", "dir", "scan.pdf"),
			expected: filepath.Join("some", "dir", "scan.docx"),
		},
		{
			name:     "Multiple dots keeps earlier segments",
			input:    "backup.2021.pdf",
			expected: "backup.2021.docx",
		},
		{
			name:     "No extension",
			input:    "document",
			expected: "document.docx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, converter.DeriveOutputPath(tt.input))
		})
	}
}
