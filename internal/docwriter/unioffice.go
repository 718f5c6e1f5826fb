package docwriter

import (
	"github.com/unidoc/unioffice/document"
)

// UniofficeWriter implements DocumentWriter using
// github.com/unidoc/unioffice. This is the production implementation.
type UniofficeWriter struct {
	doc *document.Document
}

// NewUniofficeWriter creates a writer holding a new empty document.
func NewUniofficeWriter() *UniofficeWriter {
	return &UniofficeWriter{doc: document.New()}
}

// AddParagraph appends one paragraph with a single run holding text.
func (w *UniofficeWriter) AddParagraph(text string) {
	para := w.doc.AddParagraph()
	run := para.AddRun()
	run.AddText(text)
}

// AddPageBreak appends a paragraph whose run carries a page break.
func (w *UniofficeWriter) AddPageBreak() {
	para := w.doc.AddParagraph()
	run := para.AddRun()
	run.AddPageBreak()
}

// Save writes the document to path.
func (w *UniofficeWriter) Save(path string) error {
	return w.doc.SaveToFile(path)
}
