package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

// Upload stages a file and returns its opaque backend id.
// The multipart body is streamed, the file is never held in memory.
func (c *Client) Upload(ctx context.Context, name string, content io.Reader) (model.UploadedFile, error) {
	pr, pw := io.Pipe()
	defer pr.Close()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("file", name)
		if err != nil {
			pw.CloseWithError(fmt.Errorf("failed to create form file: %w", err))
			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(fmt.Errorf("failed to copy file content: %w", err))
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	resp, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/pdf/upload",
		body:        pr,
		contentType: writer.FormDataContentType(),
	})
	if err != nil {
		return model.UploadedFile{}, err
	}
	defer resp.Body.Close()

	var uploaded model.UploadedFile
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return model.UploadedFile{}, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if uploaded.ID == "" {
		return model.UploadedFile{}, fmt.Errorf("upload response carries no file id")
	}
	return uploaded, nil
}

// Merge combines uploaded files into one PDF.
func (c *Client) Merge(ctx context.Context, req model.MergeRequest) (model.Binary, error) {
	return c.doBinary(ctx, http.MethodPost, "/pdf/merge", req)
}

// Split extracts pages into an archive.
func (c *Client) Split(ctx context.Context, req model.SplitRequest) (model.Binary, error) {
	return c.doBinary(ctx, http.MethodPost, "/pdf/split", req)
}

// Compress reduces the size of an uploaded PDF.
func (c *Client) Compress(ctx context.Context, req model.CompressRequest) (model.Binary, error) {
	return c.doBinary(ctx, http.MethodPost, "/pdf/compress", req)
}

// Convert rasterizes every page into an image archive.
func (c *Client) Convert(ctx context.Context, req model.ConvertRequest) (model.Binary, error) {
	return c.doBinary(ctx, http.MethodPost, "/pdf/convert", req)
}

// FetchProcessed downloads a processed file referenced by a download url
// returned from the API, such as "/processed/searchable_x.pdf".
func (c *Client) FetchProcessed(ctx context.Context, downloadURL string) (model.Binary, error) {
	u, err := url.Parse(downloadURL)
	if err != nil {
		return model.Binary{}, fmt.Errorf("failed to parse download url: %w", err)
	}
	if u.IsAbs() {
		return model.Binary{}, fmt.Errorf("download url %q must be relative to the api", downloadURL)
	}

	bin, err := c.doBinary(ctx, http.MethodGet, u.Path, nil)
	if err != nil {
		return model.Binary{}, err
	}
	if bin.Filename == "" {
		bin.Filename = pathBase(u.Path)
	}
	return bin, nil
}
