package filesystem

import (
	"os"
	"strings"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
)

// LocalPath converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func LocalPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		return strings.TrimPrefix(uri, "file://")
	}
	return uri
}

// Resolve turns a command-line argument into a source. If the argument
// names something that exists on disk it is a FileSource, otherwise the
// argument itself is the text.
func Resolve(arg string) domain.Source {
	path := LocalPath(arg)
	if _, err := os.Stat(path); err == nil {
		return domain.FileSource{Path: path}
	}
	return domain.TextSource{Text: arg}
}
