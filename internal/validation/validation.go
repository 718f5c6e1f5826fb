// Package validation provides input checks run before conversion starts.
package validation

import (
	"bytes"
	"fmt"
	"os"
)

// pdfMagic is the header every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// IsValidPath checks if a given path exists and refers to a regular file or
// directory.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}

	return nil
}

// IsPDFFile checks that the file at path begins with the PDF magic header.
func IsPDFFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("error opening file %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	header := make([]byte, len(pdfMagic))
	n, err := f.Read(header)
	if err != nil || n < len(pdfMagic) {
		return false, nil
	}

	return bytes.Equal(header, pdfMagic), nil
}

// ValidateInputFile checks that path names an existing file with a PDF
// header.
func ValidateInputFile(path string) error {
	if err := IsValidPath(path); err != nil {
		return err
	}

	ok, err := IsPDFFile(path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("file is not a valid PDF: %s", path)
	}

	return nil
}
