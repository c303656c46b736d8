package taskjson

import (
	"fmt"
	"os"
)

// Save writes the document to path, replacing any existing file.
func Save(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	if _, err := f.WriteString(EncodeDocument(doc)); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}

	return nil
}

// Load reads and decodes the document at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	return DecodeDocument(string(data))
}
