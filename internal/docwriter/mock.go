package docwriter

// MockWriter implements DocumentWriter for testing. It records the assembled
// content instead of producing a file.
type MockWriter struct {
	// Content records paragraphs and page breaks in insertion order; page
	// breaks appear as PageBreakMarker entries.
	Content []string

	// SavedPath is the path Save was last called with.
	SavedPath string

	// SaveErr, when set, is returned by Save.
	SaveErr error
}

// PageBreakMarker is the Content entry recorded for a page break.
const PageBreakMarker = "\x0c<page-break>"

// NewMockWriter creates an empty MockWriter.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// AddParagraph records the paragraph text.
func (w *MockWriter) AddParagraph(text string) {
	w.Content = append(w.Content, text)
}

// AddPageBreak records a page break marker.
func (w *MockWriter) AddPageBreak() {
	w.Content = append(w.Content, PageBreakMarker)
}

// Save records the destination path and returns SaveErr.
func (w *MockWriter) Save(path string) error {
	w.SavedPath = path
	return w.SaveErr
}

// Paragraphs returns the recorded paragraph texts, excluding page breaks.
func (w *MockWriter) Paragraphs() []string {
	var paragraphs []string
	for _, entry := range w.Content {
		if entry != PageBreakMarker {
			paragraphs = append(paragraphs, entry)
		}
	}
	return paragraphs
}
