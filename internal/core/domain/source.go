package domain

// Source is the text a histogram is built from.
// It is a closed set: FileSource or TextSource.
type Source interface {
	// Describe returns a short human-readable label for logs.
	Describe() string

	isSource()
}

// FileSource reads text from a UTF-8 encoded file.
type FileSource struct {
	Path string
}

// Describe returns the file path.
func (s FileSource) Describe() string {
	return "file " + s.Path
}

func (FileSource) isSource() {}

// TextSource holds inline text with newline-separated lines.
type TextSource struct {
	Text string
}

// Describe returns a truncated preview of the text.
func (s TextSource) Describe() string {
	const maxPreview = 32
	r := []rune(s.Text)
	if len(r) > maxPreview {
		return "text " + string(r[:maxPreview]) + "..."
	}
	return "text " + s.Text
}

func (TextSource) isSource() {}
