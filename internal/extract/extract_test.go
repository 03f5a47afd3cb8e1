package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcerptUnsupportedFormat(t *testing.T) {
	got, err := Excerpt(filepath.Join(t.TempDir(), "missing.bin"), ".bin", "application/octet-stream")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExcerptPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("project kickoff agenda"), 0o644))

	got, err := Excerpt(path, ".txt", "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "project kickoff agenda", got)
}

func TestExcerptTextMIMEOutsideKnownExtensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,name\n1,miriam"), 0o644))

	// .csv is not in the extension set; the text/* MIME type carries it.
	got, err := Excerpt(path, ".csv", "text/csv; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,miriam", got)
}

func TestExcerptPlainTextCapped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.md")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("a", MaxExcerptChars*3)), 0o644))

	got, err := Excerpt(path, ".md", "")
	require.NoError(t, err)
	assert.Len(t, got, MaxExcerptChars)
}

func TestExcerptEmptyTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := Excerpt(path, ".txt", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExcerptMissingTextFile(t *testing.T) {
	_, err := Excerpt(filepath.Join(t.TempDir(), "gone.txt"), ".txt", "")
	assert.Error(t, err)
}

func TestExcerptReadErrorSurfaces(t *testing.T) {
	// A directory opens fine but cannot be read as a file; that failure
	// must reach the caller instead of passing for an empty excerpt.
	dir := t.TempDir()
	sub := filepath.Join(dir, "folder.txt")
	require.NoError(t, os.Mkdir(sub, 0o755))

	_, err := Excerpt(sub, ".txt", "")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short text unchanged",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "null bytes stripped",
			input: "a\x00b\x00c",
			want:  "abc",
		},
		{
			name:  "invalid utf8 stripped",
			input: "ok\xff\xfetail",
			want:  "oktail",
		},
		{
			name:  "caps at limit in runes",
			input: strings.Repeat("é", MaxExcerptChars+10),
			want:  strings.Repeat("é", MaxExcerptChars),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input))
		})
	}
}

func TestDocxExcerpt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.docx")
	writeDocx(t, path, `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Invoice 2024-117</w:t></w:r></w:p>
    <w:p><w:r><w:t>Total due: $450.00</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got, err := Excerpt(path, ".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	require.NoError(t, err)
	assert.Contains(t, got, "Invoice 2024-117")
	assert.Contains(t, got, "Total due: $450.00")
	// Paragraph boundaries survive as line breaks.
	assert.Contains(t, got, "\n")
}

func TestDocxExcerptMissingDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = Excerpt(path, ".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	assert.Error(t, err)
}

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}
