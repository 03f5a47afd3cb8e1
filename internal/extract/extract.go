// Package extract reads bounded plain-text excerpts from supported file
// formats for content-mode classification.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// MaxExcerptChars caps excerpt length to bound AI request latency and
// payload size.
const MaxExcerptChars = 2048

// Extensions read as plain text in addition to anything with a text/*
// MIME type.
var textExtensions = map[string]struct{}{
	".txt":  {},
	".md":   {},
	".py":   {},
	".js":   {},
	".html": {},
	".css":  {},
}

// Excerpt returns up to MaxExcerptChars characters of text from the file.
// Anything with a text/* MIME type reads as plain text, alongside the
// known text extensions. Unsupported formats return an empty excerpt and
// no error; the caller falls back to by-name classification for those
// files.
func Excerpt(path, ext, mimeType string) (string, error) {
	switch {
	case ext == ".pdf":
		return pdfExcerpt(path)
	case ext == ".docx":
		return docxExcerpt(path)
	case isPlainText(ext, mimeType):
		return textExcerpt(path)
	default:
		return "", nil
	}
}

func isPlainText(ext, mimeType string) bool {
	if _, ok := textExtensions[ext]; ok {
		return true
	}
	return strings.HasPrefix(mimeType, "text/")
}

func textExcerpt(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Read a little more than the cap so truncation works in characters,
	// not bytes. ReadFull keeps reading across short reads; files smaller
	// than the buffer surface as EOF, not as errors.
	buf := make([]byte, MaxExcerptChars*utf8.UTFMax)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return Truncate(string(buf[:n])), nil
}

// Truncate trims text to MaxExcerptChars characters and strips characters
// that cannot travel in a JSON request body.
func Truncate(text string) string {
	text = strings.ToValidUTF8(text, "")
	text = strings.ReplaceAll(text, "\x00", "")

	runes := []rune(text)
	if len(runes) > MaxExcerptChars {
		runes = runes[:MaxExcerptChars]
	}
	return string(runes)
}
