package model

import "time"

// UploadedFile is the backend handle of a staged file.
type UploadedFile struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	FileSize   int64     `json:"file_size"`
	UploadTime time.Time `json:"upload_time"`
}

// MergeRequest is the body of POST /pdf/merge.
type MergeRequest struct {
	FileIDs []string `json:"file_ids"`
}

// SplitRequest is the body of POST /pdf/split.
type SplitRequest struct {
	FileID string `json:"file_id"`
	Pages  []int  `json:"pages"`
}

// CompressRequest is the body of POST /pdf/compress.
type CompressRequest struct {
	FileID  string `json:"file_id"`
	Quality int    `json:"quality"`
}

// ConvertRequest is the body of POST /pdf/convert.
type ConvertRequest struct {
	FileID string `json:"file_id"`
	Format string `json:"format"`
	DPI    int    `json:"dpi"`
}

// OCRRequest is the body of the /ocr endpoints.
type OCRRequest struct {
	FileID   string `json:"file_id"`
	Language string `json:"language"`
	Pages    []int  `json:"pages,omitempty"`
}

// OCRResult is returned by POST /ocr/extract-text.
type OCRResult struct {
	ExtractedText  string  `json:"extracted_text"`
	Confidence     float64 `json:"confidence"`
	ProcessingTime float64 `json:"processing_time"`
	Language       string  `json:"language"`
	WordCount      int     `json:"word_count"`
}

// SearchableResult is returned by POST /ocr/searchable-pdf.
type SearchableResult struct {
	Success        bool    `json:"success"`
	Message        string  `json:"message"`
	OutputFile     string  `json:"output_file"`
	DownloadURL    string  `json:"download_url"`
	ProcessingTime float64 `json:"processing_time"`
	JobID          string  `json:"job_id"`
}

// Document is an entry of GET /user/documents.
type Document struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FileSize         int64     `json:"file_size"`
	PagesCount       *int      `json:"pages_count"`
	CreatedAt        time.Time `json:"created_at"`
	ProcessingStatus string    `json:"processing_status"`
	IsProcessed      bool      `json:"is_processed"`
}

// Health is returned by GET /health.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Binary is a file returned by an operation endpoint.
type Binary struct {
	Filename    string
	ContentType string
	Body        []byte
}
