package stockfile

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExtractEntry распаковывает файл entry из zip-архива в каталог dir и
// возвращает путь к распакованному файлу.
func ExtractEntry(archive []byte, entry, dir string) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return "", fmt.Errorf("corrupt archive: %w", err)
	}

	for _, f := range reader.File {
		if f.Name != entry {
			continue
		}
		src, err := f.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		path := filepath.Join(dir, filepath.Base(entry))
		dst, err := os.Create(path)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(dst, src); err != nil {
			dst.Close()
			os.Remove(path)
			return "", err
		}
		if err := dst.Close(); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("entry %q not found in archive", entry)
}
