package download

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dtroode/pdfgenie-client/internal/logger"
	"github.com/dtroode/pdfgenie-client/internal/model"
	"github.com/dtroode/pdfgenie-client/internal/storage/minio"
)

const maxNameAttempts = 1000

var _ model.Downloader = (*Saver)(nil)

// Saver writes results into the output directory without ever
// overwriting an existing file.
type Saver struct {
	dir    string
	sink   model.ResultSink
	owner  func() string
	logger *logger.Logger
	now    func() time.Time
}

// NewSaver creates a Saver. sink may be nil; owner names the bucket prefix
// of mirrored results.
func NewSaver(dir string, sink model.ResultSink, owner func() string, logger *logger.Logger) *Saver {
	if owner == nil {
		owner = func() string { return "" }
	}
	return &Saver{
		dir:    dir,
		sink:   sink,
		owner:  owner,
		logger: logger,
		now:    time.Now,
	}
}

// Save writes bin under the name the server suggested, or fallback.
// ext, when set, is appended unless the name already ends with it.
func (s *Saver) Save(ctx context.Context, bin model.Binary, fallback, ext string) (model.SavedFile, error) {
	name := FileName(bin.Filename, fallback, ext)
	return s.write(ctx, name, bin.Body)
}

// SaveText writes extracted text. An empty name gets a timestamped one.
func (s *Saver) SaveText(ctx context.Context, text, name string) (model.SavedFile, error) {
	if name == "" {
		name = fmt.Sprintf("extracted-text-%d.txt", s.now().Unix())
	}
	return s.write(ctx, FileName(name, "extracted-text.txt", ".txt"), []byte(text))
}

// FileName picks a safe base name for a result.
func FileName(suggested, fallback, ext string) string {
	name := sanitize(suggested)
	if name == "" {
		name = sanitize(fallback)
	}
	if name == "" {
		name = "download"
	}
	if ext != "" && !strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		name += ext
	}
	return name
}

func sanitize(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	name = filepath.Base(name)
	switch name {
	case ".", "..", "/":
		return ""
	}
	return name
}

func (s *Saver) write(ctx context.Context, name string, data []byte) (model.SavedFile, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return model.SavedFile{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".pdfgenie-*")
	if err != nil {
		return model.SavedFile{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return model.SavedFile{}, fmt.Errorf("failed to write result: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return model.SavedFile{}, fmt.Errorf("failed to close result: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return model.SavedFile{}, fmt.Errorf("failed to chmod result: %w", err)
	}

	final, err := place(tmpName, s.dir, name)
	if err != nil {
		return model.SavedFile{}, err
	}

	saved := model.SavedFile{
		Name: filepath.Base(final),
		Path: final,
		Size: int64(len(data)),
	}

	s.logger.Info("Download: result saved",
		"path", saved.Path,
		"size", saved.Size)

	s.mirror(ctx, saved, data)
	return saved, nil
}

// place moves tmp to dir/name, or name-1, name-2... when taken.
func place(tmp, dir, name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := filepath.Join(dir, name)
		if i > 0 {
			candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, i, ext))
		}

		err := os.Link(tmp, candidate)
		if err == nil {
			return candidate, nil
		}
		if errors.Is(err, fs.ErrExist) {
			continue
		}

		// Hard links are not available everywhere.
		if _, statErr := os.Lstat(candidate); statErr == nil {
			continue
		}
		if err := os.Rename(tmp, candidate); err != nil {
			return "", fmt.Errorf("failed to move result into place: %w", err)
		}
		return candidate, nil
	}
	return "", fmt.Errorf("no free file name for %s in %s", name, dir)
}

func (s *Saver) mirror(ctx context.Context, saved model.SavedFile, data []byte) {
	if s.sink == nil {
		return
	}

	key := minio.ObjectKey(s.owner(), saved.Name, s.now())
	if exists, err := s.sink.Exists(ctx, key); err == nil && exists {
		s.logger.Debug("Download: result already mirrored",
			"key", key)
		return
	}

	if err := s.sink.Upload(ctx, key, bytes.NewReader(data)); err != nil {
		s.logger.Warn("Download: failed to mirror result",
			"key", key,
			"error", err.Error())
		return
	}

	s.logger.Debug("Download: result mirrored",
		"key", key)
}
