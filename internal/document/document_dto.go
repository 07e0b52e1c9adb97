package document

// Descriptor adalah hasil upload yang dikembalikan ke client dan
// di-embed oleh update sebagai attachment.
type Descriptor struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	StoragePath string `json:"storage_path"`
	URL         string `json:"url"`
}
