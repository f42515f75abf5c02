package intake

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/pdfgenie-client/internal/testutil"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func names(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}

func TestAcceptList_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		list        AcceptList
		file        string
		contentType string
		want        bool
	}{
		{name: "pdf by extension", list: PDFOnly, file: "a.pdf", want: true},
		{name: "upper-case extension", list: PDFOnly, file: "A.PDF", want: true},
		{name: "pdf by content", list: PDFOnly, file: "scan", contentType: "application/pdf", want: true},
		{name: "png rejected for pdf tools", list: PDFOnly, file: "a.png", contentType: "image/png", want: false},
		{name: "png accepted for ocr", list: PDFOrImage, file: "a.png", contentType: "image/png", want: true},
		{name: "jpeg extension", list: PDFOrImage, file: "photo.jpeg", want: true},
		{name: "text rejected", list: PDFOrImage, file: "notes.txt", contentType: "text/plain; charset=utf-8", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.list.Accepts(tt.file, tt.contentType))
		})
	}
}

func TestSet_AddMultiple(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.pdf", testutil.MinimalPDF)
	b := testutil.WriteFile(t, dir, "b.pdf", testutil.MinimalPDF)
	txt := testutil.WriteFile(t, dir, "notes.txt", []byte("hello"))

	var seen [][]File
	s := NewSet(Options{Multiple: true, OnChange: func(files []File) { seen = append(seen, files) }})

	require.NoError(t, s.Add(a, txt))
	require.NoError(t, s.Add(b))

	files := s.Files()
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, names(files))
	assert.Equal(t, int64(len(testutil.MinimalPDF)), files[0].Size)
	assert.Equal(t, "application/pdf", files[0].ContentType)
	require.Len(t, seen, 2)
	assert.Len(t, seen[1], 2)
}

func TestSet_AddSingleReplaces(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.pdf", testutil.MinimalPDF)
	b := testutil.WriteFile(t, dir, "b.pdf", testutil.MinimalPDF)
	c := testutil.WriteFile(t, dir, "c.pdf", testutil.MinimalPDF)

	s := NewSet(Options{})

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b, c))
	assert.Equal(t, []string{"b.pdf"}, names(s.Files()))
}

func TestSet_ContentSniffing(t *testing.T) {
	dir := t.TempDir()
	scan := testutil.WriteFile(t, dir, "scan", pngHeader)
	disguised := testutil.WriteFile(t, dir, "image.dat", pngHeader)

	s := NewSet(Options{Multiple: true, Accept: PDFOrImage})
	require.NoError(t, s.Add(scan, disguised))
	assert.Equal(t, []string{"scan", "image.dat"}, names(s.Files()))

	pdfOnly := NewSet(Options{Multiple: true})
	require.NoError(t, pdfOnly.Add(scan))
	assert.Zero(t, pdfOnly.Len())
}

func TestSet_AddMissingFile(t *testing.T) {
	s := NewSet(Options{Multiple: true})
	err := s.Add(t.TempDir() + "/absent.pdf")
	assert.Error(t, err)
	assert.Zero(t, s.Len())
}

func TestSet_RemoveDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	first := testutil.WriteFile(t, dir, "one/report.pdf", testutil.MinimalPDF)
	second := testutil.WriteFile(t, dir, "two/report.pdf", testutil.MinimalPDF)
	other := testutil.WriteFile(t, dir, "other.pdf", testutil.MinimalPDF)

	s := NewSet(Options{Multiple: true})
	require.NoError(t, s.Add(first, other, second))

	require.NoError(t, s.Remove(2))

	files := s.Files()
	assert.Equal(t, []string{"report.pdf", "other.pdf"}, names(files))
	assert.Equal(t, first, files[0].Path)

	assert.Error(t, s.Remove(5))
	assert.Error(t, s.Remove(-1))
}

func TestSet_Move(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, n := range []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf"} {
		paths = append(paths, testutil.WriteFile(t, dir, n, testutil.MinimalPDF))
	}

	s := NewSet(Options{Multiple: true})
	require.NoError(t, s.Add(paths...))

	require.NoError(t, s.Move(0, 2))
	assert.Equal(t, []string{"b.pdf", "c.pdf", "a.pdf", "d.pdf"}, names(s.Files()))

	require.NoError(t, s.Move(3, 0))
	assert.Equal(t, []string{"d.pdf", "b.pdf", "c.pdf", "a.pdf"}, names(s.Files()))

	assert.Error(t, s.Move(0, 4))
}

func TestSet_FilesIsACopy(t *testing.T) {
	dir := t.TempDir()
	s := NewSet(Options{Multiple: true})
	require.NoError(t, s.Add(testutil.WriteFile(t, dir, "a.pdf", testutil.MinimalPDF)))

	files := s.Files()
	files[0].Name = "changed.pdf"

	assert.Equal(t, "a.pdf", s.Files()[0].Name)
}

func TestSet_Reset(t *testing.T) {
	dir := t.TempDir()
	var last []File
	calls := 0
	s := NewSet(Options{Multiple: true, OnChange: func(files []File) { calls++; last = files }})
	require.NoError(t, s.Add(testutil.WriteFile(t, dir, "a.pdf", testutil.MinimalPDF)))

	s.Reset()

	assert.Zero(t, s.Len())
	assert.Empty(t, last)
	assert.Equal(t, 2, calls)
}

func TestFile_Open(t *testing.T) {
	dir := t.TempDir()
	s := NewSet(Options{})
	require.NoError(t, s.Add(testutil.WriteFile(t, dir, "a.pdf", testutil.MinimalPDF)))

	rc, err := s.Files()[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, testutil.MinimalPDF, data)
}
