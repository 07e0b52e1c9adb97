package document

import "io"

// Storage menyimpan byte attachment di luar database.
// Core hanya menyimpan descriptor (path + url), tidak pernah byte mentah.
type Storage interface {
	Write(path string, data io.Reader) (int64, error)
	Read(path string) (io.ReadCloser, error)
	Delete(path string) error
	URL(path string) string
}
