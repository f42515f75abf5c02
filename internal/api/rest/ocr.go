package rest

import (
	"context"
	"net/http"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

// ExtractText runs OCR on an uploaded file.
func (c *Client) ExtractText(ctx context.Context, req model.OCRRequest) (model.OCRResult, error) {
	var result model.OCRResult
	if err := c.doJSON(ctx, http.MethodPost, "/ocr/extract-text", req, &result, false); err != nil {
		return model.OCRResult{}, err
	}
	return result, nil
}

// SearchablePDF asks the backend to add a text layer to an uploaded file.
func (c *Client) SearchablePDF(ctx context.Context, req model.OCRRequest) (model.SearchableResult, error) {
	var result model.SearchableResult
	if err := c.doJSON(ctx, http.MethodPost, "/ocr/searchable-pdf", req, &result, false); err != nil {
		return model.SearchableResult{}, err
	}
	return result, nil
}
