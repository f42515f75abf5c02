package present

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/dtroode/pdfgenie-client/internal/format"
	"github.com/dtroode/pdfgenie-client/internal/model"
	"github.com/dtroode/pdfgenie-client/internal/workflow"
)

// Presenter renders results and notifications to a terminal.
type Presenter struct {
	out io.Writer

	title   *color.Color
	success *color.Color
	failure *color.Color
	muted   *color.Color
	accent  *color.Color
}

// New creates a Presenter. Colors follow fatih/color's terminal detection
// unless noColor forces them off.
func New(out io.Writer, noColor bool) *Presenter {
	p := &Presenter{
		out:     out,
		title:   color.New(color.Bold),
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		muted:   color.New(color.Faint),
		accent:  color.New(color.FgCyan),
	}
	if noColor {
		for _, c := range []*color.Color{p.title, p.success, p.failure, p.muted, p.accent} {
			c.DisableColor()
		}
	}
	return p
}

func (p *Presenter) Loader(message string) {
	p.accent.Fprintf(p.out, "… %s\n", message)
}

// Progress renders a workflow event as a loader line.
func (p *Presenter) Progress(e workflow.Event) {
	switch e.Phase {
	case workflow.PhaseUploading:
		if e.Uploaded == 0 {
			p.Loader(fmt.Sprintf("Uploading %d file(s)...", e.Total))
			return
		}
		p.Loader(fmt.Sprintf("Uploaded %d/%d", e.Uploaded, e.Total))
	case workflow.PhaseProcessing:
		if e.Tool != nil {
			p.Loader(e.Tool.Activity())
		}
	}
}

func (p *Presenter) Placeholder() {
	p.muted.Fprintln(p.out, "Checking your session...")
}

// DownloadCard is shown once a result has been written.
func (p *Presenter) DownloadCard(saved model.SavedFile) {
	p.success.Fprintln(p.out, "✓ Your file is ready!")
	fmt.Fprintf(p.out, "  %s\n", saved.Name)
	p.muted.Fprintf(p.out, "  Size: %s\n", format.FileSize(saved.Size))
	p.muted.Fprintf(p.out, "  Saved to %s\n", saved.Path)
}

// TextCard shows OCR output with its metrics.
func (p *Presenter) TextCard(res model.OCRResult) {
	p.success.Fprintln(p.out, "✓ Text extracted")
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Words\t%d\n", res.WordCount)
	fmt.Fprintf(w, "  Confidence\t%s%%\n", strconv.FormatFloat(res.Confidence, 'f', 1, 64))
	fmt.Fprintf(w, "  Processing time\t%ss\n", strconv.FormatFloat(res.ProcessingTime, 'f', 2, 64))
	fmt.Fprintf(w, "  Language\t%s\n", languageName(res.Language))
	_ = w.Flush()

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, strings.TrimRight(res.ExtractedText, "\n"))
}

func languageName(code string) string {
	if name, ok := workflow.Languages[code]; ok {
		return name
	}
	return code
}

// Error is the notification for a failed action.
func (p *Presenter) Error(err error) {
	if err == nil {
		return
	}

	var apiErr *model.APIError
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		p.failure.Fprintln(p.out, "✗ Login failed")
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrUnauthenticated):
		p.failure.Fprintln(p.out, "✗ Please log in")
	case model.IsValidation(err):
		p.failure.Fprintln(p.out, "✗ Check your input")
	case errors.As(err, &apiErr):
		p.failure.Fprintf(p.out, "✗ Request failed (%d)\n", apiErr.StatusCode)
	default:
		p.failure.Fprintln(p.out, "✗ Error")
	}
	p.muted.Fprintf(p.out, "  %s\n", err.Error())
}

func (p *Presenter) Success(message string) {
	p.success.Fprintf(p.out, "✓ %s\n", message)
}

func (p *Presenter) Info(message string) {
	fmt.Fprintln(p.out, message)
}

// User renders the dashboard header. expiry is zero for opaque tokens.
func (p *Presenter) User(u model.User, expiry time.Time) {
	p.title.Fprintf(p.out, "Welcome back, %s!\n", u.Username)
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Email\t%s\n", u.Email)
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(w, "  Member since\t%s\n", u.CreatedAt.Format(time.DateOnly))
	}
	if !expiry.IsZero() {
		fmt.Fprintf(w, "  Session expires\t%s\n", expiry.Local().Format(time.DateTime))
	}
	_ = w.Flush()
}

// Documents lists uploaded files.
func (p *Presenter) Documents(docs []model.Document) {
	if len(docs) == 0 {
		p.muted.Fprintln(p.out, "No documents yet.")
		return
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tPAGES\tSTATUS\tUPLOADED")
	for _, d := range docs {
		pages := "-"
		if d.PagesCount != nil {
			pages = strconv.Itoa(*d.PagesCount)
		}
		name := d.OriginalFilename
		if name == "" {
			name = d.Filename
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			name, format.FileSize(d.FileSize), pages, d.ProcessingStatus, d.CreatedAt.Format(time.DateTime))
	}
	_ = w.Flush()
}

func (p *Presenter) Health(h model.Health) {
	if h.Status == "healthy" {
		p.success.Fprintf(p.out, "✓ API is %s\n", h.Status)
		return
	}
	p.failure.Fprintf(p.out, "✗ API is %s\n", h.Status)
}
