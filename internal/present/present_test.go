package present

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/pdfgenie-client/internal/model"
	"github.com/dtroode/pdfgenie-client/internal/workflow"
)

func newPresenter() (*Presenter, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(&buf, true), &buf
}

func TestPresenter_DownloadCard(t *testing.T) {
	p, buf := newPresenter()

	p.DownloadCard(model.SavedFile{Name: "merged.pdf", Path: "/tmp/merged.pdf", Size: 1536})

	out := buf.String()
	assert.Contains(t, out, "Your file is ready!")
	assert.Contains(t, out, "merged.pdf")
	assert.Contains(t, out, "Size: 1.5 KB")
	assert.Contains(t, out, "/tmp/merged.pdf")
	assert.NotContains(t, out, "\x1b[")
}

func TestPresenter_TextCard(t *testing.T) {
	p, buf := newPresenter()

	p.TextCard(model.OCRResult{
		ExtractedText:  "bonjour le monde\n",
		Confidence:     91.24,
		ProcessingTime: 1.5,
		Language:       "fra",
		WordCount:      3,
	})

	out := buf.String()
	assert.Contains(t, out, "French")
	assert.Contains(t, out, "91.2%")
	assert.Contains(t, out, "1.50s")
	assert.Contains(t, out, "bonjour le monde\n")
}

func TestPresenter_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "credentials", err: fmt.Errorf("%w: bad", model.ErrInvalidCredentials), want: "Login failed"},
		{name: "session expired", err: model.ErrUnauthorized, want: "Please log in"},
		{name: "validation", err: model.NewValidationError("page range", "empty entry"), want: "Check your input"},
		{name: "api", err: &model.APIError{StatusCode: 500, Detail: "Merge failed"}, want: "Request failed (500)"},
		{name: "other", err: errors.New("connection refused"), want: "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := newPresenter()
			p.Error(tt.err)
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), tt.err.Error())
		})
	}

	p, buf := newPresenter()
	p.Error(nil)
	assert.Empty(t, buf.String())
}

func TestPresenter_Progress(t *testing.T) {
	p, buf := newPresenter()

	p.Progress(workflow.Event{Phase: workflow.PhaseUploading, Total: 2})
	p.Progress(workflow.Event{Phase: workflow.PhaseUploading, Uploaded: 1, Total: 2})
	p.Progress(workflow.Event{Tool: workflow.Merge{}, Phase: workflow.PhaseProcessing})
	p.Progress(workflow.Event{Phase: workflow.PhaseIdle})

	assert.Equal(t, "… Uploading 2 file(s)...\n… Uploaded 1/2\n… Merging your PDFs...\n", buf.String())
}

func TestPresenter_Documents(t *testing.T) {
	p, buf := newPresenter()
	p.Documents(nil)
	assert.Contains(t, buf.String(), "No documents yet.")

	pages := 4
	p, buf = newPresenter()
	p.Documents([]model.Document{
		{OriginalFilename: "a.pdf", FileSize: 2048, PagesCount: &pages, ProcessingStatus: "uploaded", CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{Filename: "b.pdf", FileSize: 10},
	})

	out := buf.String()
	assert.Contains(t, out, "a.pdf")
	assert.Contains(t, out, "2 KB")
	assert.Contains(t, out, "b.pdf")
	assert.Contains(t, out, "10 Bytes")
}

func TestPresenter_UserAndHealth(t *testing.T) {
	p, buf := newPresenter()

	p.User(model.User{Username: "ada", Email: "ada@example.com"}, time.Time{})
	p.Health(model.Health{Status: "healthy"})
	p.Health(model.Health{Status: "degraded"})

	out := buf.String()
	assert.Contains(t, out, "Welcome back, ada!")
	assert.Contains(t, out, "ada@example.com")
	assert.NotContains(t, out, "Session expires")
	assert.Contains(t, out, "API is healthy")
	assert.Contains(t, out, "API is degraded")
}
