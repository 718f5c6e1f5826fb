// Package docwriter assembles and saves Word documents.
package docwriter

// DocumentWriter is the surface the converter needs from a document
// generator: append paragraphs, append page breaks, save to disk.
type DocumentWriter interface {
	// AddParagraph appends one paragraph holding the given text.
	AddParagraph(text string)

	// AddPageBreak appends a page break after the current content.
	AddPageBreak()

	// Save writes the assembled document to the given path.
	Save(path string) error
}

// Factory creates a fresh DocumentWriter per conversion. Each conversion
// assembles its own document from scratch.
type Factory func() DocumentWriter
