package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/pdfgenie-client/internal/format"
	"github.com/dtroode/pdfgenie-client/internal/intake"
	"github.com/dtroode/pdfgenie-client/internal/model"
	"github.com/dtroode/pdfgenie-client/internal/pagerange"
)

const (
	DefaultQuality  = 50
	DefaultFormat   = "png"
	DefaultDPI      = 200
	DefaultLanguage = "eng"
)

// Languages lists the OCR languages offered by the backend.
var Languages = map[string]string{
	"eng":     "English",
	"fra":     "French",
	"deu":     "German",
	"spa":     "Spanish",
	"ita":     "Italian",
	"por":     "Portuguese",
	"rus":     "Russian",
	"chi_sim": "Chinese (Simplified)",
	"jpn":     "Japanese",
	"kor":     "Korean",
}

// Tool is one PDF operation.
type Tool interface {
	Name() string
	// Activity is shown while the operation call is in flight.
	Activity() string
	Validate(files []intake.File) error
	Execute(ctx context.Context, ops model.PDFClient, fileIDs []string) (Result, error)
}

func single(files []intake.File) error {
	if len(files) != 1 {
		return fmt.Errorf("%w: %w", model.ErrInsufficientInput,
			model.NewValidationError("files", "exactly one file is required"))
	}
	return nil
}

// Merge combines two or more PDFs in selection order.
type Merge struct{}

func (Merge) Name() string     { return "merge" }
func (Merge) Activity() string { return "Merging your PDFs..." }

func (Merge) Validate(files []intake.File) error {
	if len(files) < 2 {
		return fmt.Errorf("%w: %w", model.ErrInsufficientInput,
			model.NewValidationError("files", "at least 2 PDF files are required to merge"))
	}
	return nil
}

func (Merge) Execute(ctx context.Context, ops model.PDFClient, fileIDs []string) (Result, error) {
	bin, err := ops.Merge(ctx, model.MergeRequest{FileIDs: fileIDs})
	if err != nil {
		return Result{}, fmt.Errorf("failed to merge: %w", err)
	}
	return download(bin, "merged.pdf", ".pdf"), nil
}

// Split extracts the pages named by Ranges, e.g. "1-3, 5".
type Split struct {
	Ranges string
}

func (Split) Name() string     { return "split" }
func (Split) Activity() string { return "Splitting your PDF..." }

func (s Split) Validate(files []intake.File) error {
	if err := single(files); err != nil {
		return err
	}
	if strings.TrimSpace(s.Ranges) == "" {
		return fmt.Errorf("%w: %w", model.ErrEmptyExpression,
			model.NewValidationError("page range", "please enter page ranges"))
	}
	_, err := pagerange.Parse(s.Ranges)
	return err
}

func (s Split) Execute(ctx context.Context, ops model.PDFClient, fileIDs []string) (Result, error) {
	pages, err := pagerange.Parse(s.Ranges)
	if err != nil {
		return Result{}, err
	}
	bin, err := ops.Split(ctx, model.SplitRequest{FileID: fileIDs[0], Pages: pages})
	if err != nil {
		return Result{}, fmt.Errorf("failed to split: %w", err)
	}
	return download(bin, "split_pages.zip", ""), nil
}

// Compress re-encodes a PDF at the given quality, 0-100.
type Compress struct {
	Quality int
}

func (Compress) Name() string     { return "compress" }
func (Compress) Activity() string { return "Compressing your PDF..." }

func (c Compress) Validate(files []intake.File) error {
	if err := single(files); err != nil {
		return err
	}
	if c.Quality < 0 || c.Quality > 100 {
		return model.NewValidationError("quality", "must be between 0 and 100")
	}
	return nil
}

func (c Compress) Execute(ctx context.Context, ops model.PDFClient, fileIDs []string) (Result, error) {
	bin, err := ops.Compress(ctx, model.CompressRequest{FileID: fileIDs[0], Quality: c.Quality})
	if err != nil {
		return Result{}, fmt.Errorf("failed to compress: %w", err)
	}
	return download(bin, "compressed.pdf", ".pdf"), nil
}

// Convert renders every page to an image inside a zip archive.
type Convert struct {
	Format string
	DPI    int
}

func (Convert) Name() string     { return "convert" }
func (Convert) Activity() string { return "Converting your PDF..." }

func (c Convert) Validate(files []intake.File) error {
	if err := single(files); err != nil {
		return err
	}
	switch c.format() {
	case "png", "jpg":
	default:
		return model.NewValidationError("format", fmt.Sprintf("%q is not one of png, jpg", c.Format))
	}
	if c.DPI < 0 {
		return model.NewValidationError("dpi", "must be positive")
	}
	return nil
}

func (c Convert) format() string {
	if c.Format == "" {
		return DefaultFormat
	}
	return strings.ToLower(c.Format)
}

func (c Convert) Execute(ctx context.Context, ops model.PDFClient, fileIDs []string) (Result, error) {
	dpi := c.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}
	bin, err := ops.Convert(ctx, model.ConvertRequest{FileID: fileIDs[0], Format: c.format(), DPI: dpi})
	if err != nil {
		return Result{}, fmt.Errorf("failed to convert: %w", err)
	}
	return download(bin, "images.zip", ""), nil
}

// OCR extracts text. Pages is an optional page expression.
type OCR struct {
	Language string
	Pages    string
}

func (OCR) Name() string     { return "ocr" }
func (OCR) Activity() string { return "Extracting text..." }

func (o OCR) Validate(files []intake.File) error {
	if err := single(files); err != nil {
		return err
	}
	if err := validateLanguage(o.Language); err != nil {
		return err
	}
	if strings.TrimSpace(o.Pages) != "" {
		if _, err := pagerange.Parse(o.Pages); err != nil {
			return err
		}
	}
	return nil
}

func (o OCR) Execute(ctx context.Context, ops model.PDFClient, fileIDs []string) (Result, error) {
	req := model.OCRRequest{FileID: fileIDs[0], Language: language(o.Language)}
	if strings.TrimSpace(o.Pages) != "" {
		pages, err := pagerange.Parse(o.Pages)
		if err != nil {
			return Result{}, err
		}
		req.Pages = pages
	}

	res, err := ops.ExtractText(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to extract text: %w", err)
	}
	if res.WordCount == 0 {
		res.WordCount = format.WordCount(res.ExtractedText)
	}
	if res.Language == "" {
		res.Language = req.Language
	}
	return Result{Kind: ResultText, Text: res}, nil
}

// SearchablePDF adds an invisible text layer to a scanned document.
type SearchablePDF struct {
	Language string
}

func (SearchablePDF) Name() string     { return "searchable" }
func (SearchablePDF) Activity() string { return "Creating searchable PDF..." }

func (s SearchablePDF) Validate(files []intake.File) error {
	if err := single(files); err != nil {
		return err
	}
	return validateLanguage(s.Language)
}

func (s SearchablePDF) Execute(ctx context.Context, ops model.PDFClient, fileIDs []string) (Result, error) {
	res, err := ops.SearchablePDF(ctx, model.OCRRequest{FileID: fileIDs[0], Language: language(s.Language)})
	if err != nil {
		return Result{}, fmt.Errorf("failed to create searchable pdf: %w", err)
	}
	if !res.Success || res.DownloadURL == "" {
		return Result{}, fmt.Errorf("searchable pdf was not produced: %s", res.Message)
	}

	bin, err := ops.FetchProcessed(ctx, res.DownloadURL)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch searchable pdf: %w", err)
	}
	return download(bin, "searchable.pdf", ".pdf"), nil
}

func language(code string) string {
	if code == "" {
		return DefaultLanguage
	}
	return code
}

func validateLanguage(code string) error {
	if _, ok := Languages[language(code)]; !ok {
		return model.NewValidationError("language", fmt.Sprintf("%q is not supported", code))
	}
	return nil
}

func download(bin model.Binary, fallback, ext string) Result {
	return Result{Kind: ResultDownload, Binary: bin, Fallback: fallback, Extension: ext}
}
