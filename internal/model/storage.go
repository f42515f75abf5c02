package model

import (
	"context"
	"io"
)

// ResultSink receives a copy of every saved result.
type ResultSink interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Exists(ctx context.Context, key string) (bool, error)
}

// SavedFile is a result written to the output directory.
type SavedFile struct {
	Name string
	Path string
	Size int64
}

// Downloader persists a binary result under a safe, unique name.
type Downloader interface {
	Save(ctx context.Context, bin Binary, fallback, ext string) (SavedFile, error)
}
