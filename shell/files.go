package shell

import (
	"campus-hub/domain"
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

// ReadFile loads a local file for attachment. The media type is declared
// from the extension and left empty when unknown, so it gets sniffed.
func ReadFile(path string) (domain.FileDescriptor, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.FileDescriptor{}, fmt.Errorf("read %s: %w", path, err)
	}
	return domain.FileDescriptor{
		Name:      filepath.Base(path),
		MediaType: mime.TypeByExtension(filepath.Ext(path)),
		Content:   content,
	}, nil
}
