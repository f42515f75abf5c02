package model

import (
	"context"
	"io"
)

// AuthClient is the part of the API adapter used by the session store.
type AuthClient interface {
	Register(ctx context.Context, req RegisterRequest) (User, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context) (User, error)
	SetBearer(token string)
	ClearBearer()
	OnUnauthorized(fn func())
}

// PDFClient is the part of the API adapter used by the tool workflows.
type PDFClient interface {
	Upload(ctx context.Context, name string, content io.Reader) (UploadedFile, error)
	Merge(ctx context.Context, req MergeRequest) (Binary, error)
	Split(ctx context.Context, req SplitRequest) (Binary, error)
	Compress(ctx context.Context, req CompressRequest) (Binary, error)
	Convert(ctx context.Context, req ConvertRequest) (Binary, error)
	ExtractText(ctx context.Context, req OCRRequest) (OCRResult, error)
	SearchablePDF(ctx context.Context, req OCRRequest) (SearchableResult, error)
	FetchProcessed(ctx context.Context, downloadURL string) (Binary, error)
}

// SessionState is the read side of the session store.
type SessionState interface {
	Current() Session
	Loading() bool
	Ready() <-chan struct{}
}
