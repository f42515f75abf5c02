package workflow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/dtroode/pdfgenie-client/internal/intake"
	"github.com/dtroode/pdfgenie-client/internal/logger"
	"github.com/dtroode/pdfgenie-client/internal/model"
)

var ErrBusy = errors.New("another operation is in progress")

// Phase is the state of a tool workflow.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseUploading
	PhaseProcessing
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseUploading:
		return "uploading"
	case PhaseProcessing:
		return "processing"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type ResultKind int

const (
	ResultDownload ResultKind = iota
	ResultText
)

// Result is the outcome of a tool.
// Download results carry the binary, the fallback file name and the
// extension the saved name must end with; Saved is filled once written.
type Result struct {
	Kind      ResultKind
	Binary    model.Binary
	Fallback  string
	Extension string
	Saved     model.SavedFile
	Text      model.OCRResult
}

// Event is delivered to observers on every phase change and upload step.
type Event struct {
	Tool     Tool
	Phase    Phase
	Uploaded int
	Total    int
	Result   *Result
	Err      error
}

// Runner drives one tool at a time through upload, processing and delivery.
type Runner struct {
	ops        model.PDFClient
	downloader model.Downloader
	uploads    *cache.Cache
	logger     *logger.Logger

	mu        sync.Mutex
	phase     Phase
	err       error
	observers []func(Event)
}

func NewRunner(ops model.PDFClient, downloader model.Downloader, cacheTTL time.Duration, logger *logger.Logger) *Runner {
	return &Runner{
		ops:        ops,
		downloader: downloader,
		uploads:    cache.New(cacheTTL, 2*cacheTTL),
		logger:     logger,
	}
}

// OnPhase registers an observer.
func (r *Runner) OnPhase(fn func(Event)) {
	r.mu.Lock()
	r.observers = append(r.observers, fn)
	r.mu.Unlock()
}

func (r *Runner) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Err returns the failure that moved the runner to PhaseFailed.
func (r *Runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Reset returns a finished workflow to idle.
func (r *Runner) Reset() {
	r.mu.Lock()
	if r.phase == PhaseUploading || r.phase == PhaseProcessing {
		r.mu.Unlock()
		return
	}
	r.phase = PhaseIdle
	r.err = nil
	r.mu.Unlock()

	r.emit(Event{Phase: PhaseIdle})
}

// Enabled reports whether the tool can be started with the selection.
func Enabled(tool Tool, files []intake.File) bool {
	switch t := tool.(type) {
	case Merge:
		return len(files) >= 2
	case Split:
		return len(files) == 1 && strings.TrimSpace(t.Ranges) != ""
	default:
		return len(files) == 1
	}
}

// Run validates the selection, uploads every file sequentially and runs
// the tool. Validation failures leave the runner idle.
func (r *Runner) Run(ctx context.Context, tool Tool, files []intake.File) (Result, error) {
	if err := tool.Validate(files); err != nil {
		return Result{}, err
	}

	r.mu.Lock()
	if r.phase == PhaseUploading || r.phase == PhaseProcessing {
		r.mu.Unlock()
		return Result{}, ErrBusy
	}
	r.phase = PhaseUploading
	r.err = nil
	r.mu.Unlock()

	r.emit(Event{Tool: tool, Phase: PhaseUploading, Total: len(files)})

	ids := make([]string, 0, len(files))
	used := make(map[string]bool, len(files))
	for i, f := range files {
		id, err := r.upload(ctx, f, used)
		if err != nil {
			return Result{}, r.fail(tool, fmt.Errorf("failed to upload %s: %w", f.Name, err))
		}
		ids = append(ids, id)
		r.emit(Event{Tool: tool, Phase: PhaseUploading, Uploaded: i + 1, Total: len(files)})
	}

	r.setPhase(PhaseProcessing)
	r.emit(Event{Tool: tool, Phase: PhaseProcessing, Uploaded: len(files), Total: len(files)})

	result, err := tool.Execute(ctx, r.ops, ids)
	if err != nil {
		return Result{}, r.fail(tool, err)
	}

	if result.Kind == ResultDownload {
		saved, err := r.downloader.Save(ctx, result.Binary, result.Fallback, result.Extension)
		if err != nil {
			return Result{}, r.fail(tool, fmt.Errorf("failed to save result: %w", err))
		}
		result.Saved = saved
	}

	r.setPhase(PhaseReady)
	r.emit(Event{Tool: tool, Phase: PhaseReady, Result: &result})

	r.logger.Info("Workflow: operation completed",
		"tool", tool.Name(),
		"files", len(files))

	if result.Kind == ResultDownload {
		r.Reset()
	}
	return result, nil
}

func (r *Runner) setPhase(p Phase) {
	r.mu.Lock()
	r.phase = p
	r.mu.Unlock()
}

func (r *Runner) fail(tool Tool, err error) error {
	r.mu.Lock()
	r.phase = PhaseFailed
	r.err = err
	r.mu.Unlock()

	r.logger.Error("Workflow: operation failed",
		"tool", tool.Name(),
		"error", err.Error())
	r.emit(Event{Tool: tool, Phase: PhaseFailed, Err: err})
	return err
}

func (r *Runner) emit(e Event) {
	r.mu.Lock()
	observers := make([]func(Event), len(r.observers))
	copy(observers, r.observers)
	r.mu.Unlock()

	for _, fn := range observers {
		fn(e)
	}
}

// upload returns the backend id of the file, reusing the id of identical
// content uploaded by an earlier run. Within one run every position gets its
// own id, so repeated content is uploaded again; used tracks the keys taken.
func (r *Runner) upload(ctx context.Context, f intake.File, used map[string]bool) (string, error) {
	key, err := contentKey(f)
	if err != nil {
		return "", err
	}
	repeated := used[key]
	used[key] = true

	if id, ok := r.uploads.Get(key); ok && !repeated {
		r.logger.Debug("Workflow: reusing uploaded file",
			"name", f.Name,
			"file_id", id)
		return id.(string), nil
	}

	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer rc.Close()

	uploaded, err := r.ops.Upload(ctx, f.Name, rc)
	if err != nil {
		return "", err
	}

	if !repeated {
		r.uploads.Set(key, uploaded.ID, cache.DefaultExpiration)
	}
	r.logger.Debug("Workflow: file uploaded",
		"name", f.Name,
		"file_id", uploaded.ID)
	return uploaded.ID, nil
}

// Forget drops every cached upload id, e.g. after the session changes.
func (r *Runner) Forget() {
	r.uploads.Flush()
}

func contentKey(f intake.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer rc.Close()

	h := sha256.New()
	if _, err := io.Copy(h, rc); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
