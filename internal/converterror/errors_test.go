package converterror_test

import (
	"errors"
	"testing"

	"afredes/pdf2docx/internal/converterror"

	"github.com/stretchr/testify/assert"
)

func TestExtractionError(t *testing.T) {
	cause := errors.New("broken xref table")

	pageErr := &converterror.ExtractionError{FilePath: "in.pdf", Page: 3, Err: cause}
	assert.Contains(t, pageErr.Error(), "in.pdf")
	assert.Contains(t, pageErr.Error(), "page 3")
	assert.ErrorIs(t, pageErr, cause)

	fileErr := &converterror.ExtractionError{FilePath: "in.pdf", Err: cause}
	assert.Contains(t, fileErr.Error(), "in.pdf")
	assert.NotContains(t, fileErr.Error(), "page")
	assert.ErrorIs(t, fileErr, cause)
}

func TestWriteError(t *testing.T) {
	cause := errors.New("disk full")
	err := &converterror.WriteError{FilePath: "out.docx", Err: cause}

	assert.Contains(t, err.Error(), "out.docx")
	assert.ErrorIs(t, err, cause)
}

func TestInvalidFormatError(t *testing.T) {
	err := &converterror.InvalidFormatError{
		FilePath:       "notes.txt",
		ExpectedFormat: "PDF",
		Msg:            "missing %PDF- header",
	}

	assert.Contains(t, err.Error(), "notes.txt")
	assert.Contains(t, err.Error(), "PDF")
	assert.Contains(t, err.Error(), "missing %PDF- header")
}
