package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type DiskStorage struct {
	basepath string
	baseURL  string
}

func NewDiskStorage(basepath, baseURL string) Storage {
	return &DiskStorage{basepath: basepath, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStorage) Write(path string, data io.Reader) (int64, error) {
	fullpath := filepath.Join(s.basepath, path)

	if err := os.MkdirAll(filepath.Dir(fullpath), 0o755); err != nil {
		return 0, fmt.Errorf("error creating parent directory %v: %w", path, err)
	}

	file, err := os.Create(fullpath)
	if err != nil {
		return 0, fmt.Errorf("error opening file %v: %w", path, err)
	}
	defer file.Close()

	n, err := io.Copy(file, data)
	if err != nil {
		return 0, fmt.Errorf("error writing to file %v: %w", path, err)
	}

	return n, nil
}

func (s *DiskStorage) Read(path string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.basepath, path))
	if err != nil {
		return nil, fmt.Errorf("error reading file %v: %w", path, err)
	}
	return file, nil
}

func (s *DiskStorage) Delete(path string) error {
	if err := os.Remove(filepath.Join(s.basepath, path)); err != nil {
		return fmt.Errorf("error deleting file %v: %w", path, err)
	}
	return nil
}

func (s *DiskStorage) URL(path string) string {
	return s.baseURL + "/" + filepath.ToSlash(path)
}
