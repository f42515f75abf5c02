package intake

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dtroode/pdfgenie-client/internal/logger"
	"github.com/dtroode/pdfgenie-client/internal/model"
)

// AcceptList maps MIME types to the extensions accepted for them.
type AcceptList map[string][]string

var (
	PDFOnly = AcceptList{
		"application/pdf": {".pdf"},
	}
	PDFOrImage = AcceptList{
		"application/pdf": {".pdf"},
		"image/png":       {".png"},
		"image/jpeg":      {".jpg", ".jpeg"},
		"image/tiff":      {".tiff", ".tif"},
		"image/bmp":       {".bmp"},
	}
)

// Accepts reports whether a file with the given name and sniffed content
// type is accepted.
func (a AcceptList) Accepts(name, contentType string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for mimeType, exts := range a {
		if contentType != "" && mimetype.EqualsAny(contentType, mimeType) {
			return true
		}
		for _, e := range exts {
			if ext != "" && ext == e {
				return true
			}
		}
	}
	return false
}

// File is a selected local file.
type File struct {
	Name        string
	Path        string
	Size        int64
	ContentType string
}

// Open opens the file for reading.
func (f File) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

type Options struct {
	Multiple bool
	Accept   AcceptList
	OnChange func(files []File)
	Logger   *logger.Logger
}

// Set is the ordered selection of files for one tool.
type Set struct {
	opts Options

	mu    sync.Mutex
	files []File
}

func NewSet(opts Options) *Set {
	if opts.Accept == nil {
		opts.Accept = PDFOnly
	}
	return &Set{opts: opts}
}

// Add selects files. Rejected paths are skipped; unreadable paths are errors.
func (s *Set) Add(paths ...string) error {
	var accepted []File
	for _, p := range paths {
		f, err := inspect(p)
		if err != nil {
			return err
		}
		if !s.opts.Accept.Accepts(f.Name, f.ContentType) {
			if s.opts.Logger != nil {
				s.opts.Logger.Debug("Intake: file rejected",
					"name", f.Name,
					"content_type", f.ContentType)
			}
			continue
		}
		accepted = append(accepted, f)
	}

	s.mu.Lock()
	if s.opts.Multiple {
		s.files = append(s.files, accepted...)
	} else if len(accepted) > 0 {
		s.files = []File{accepted[0]}
	} else {
		s.files = nil
	}
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.changed(snapshot)
	return nil
}

// Remove drops the file at position i.
func (s *Set) Remove(i int) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.files) {
		n := len(s.files)
		s.mu.Unlock()
		return fmt.Errorf("file index %d out of range [0,%d)", i, n)
	}
	s.files = append(s.files[:i:i], s.files[i+1:]...)
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.changed(snapshot)
	return nil
}

// Move reorders the selection, shifting the files in between.
func (s *Set) Move(from, to int) error {
	s.mu.Lock()
	n := len(s.files)
	if from < 0 || from >= n || to < 0 || to >= n {
		s.mu.Unlock()
		return fmt.Errorf("move %d->%d out of range [0,%d)", from, to, n)
	}
	f := s.files[from]
	s.files = append(s.files[:from:from], s.files[from+1:]...)
	s.files = append(s.files[:to], append([]File{f}, s.files[to:]...)...)
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.changed(snapshot)
	return nil
}

// Files returns a copy of the selection.
func (s *Set) Files() []File {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

func (s *Set) Reset() {
	s.mu.Lock()
	s.files = nil
	s.mu.Unlock()

	s.changed(nil)
}

func (s *Set) snapshot() []File {
	if len(s.files) == 0 {
		return nil
	}
	out := make([]File, len(s.files))
	copy(out, s.files)
	return out
}

func (s *Set) changed(files []File) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(files)
	}
}

func inspect(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory: %w", path, model.ErrRejectedFile)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to detect type of %s: %w", path, err)
	}

	return File{
		Name:        filepath.Base(path),
		Path:        path,
		Size:        info.Size(),
		ContentType: mt.String(),
	}, nil
}
