package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// docxExcerpt pulls paragraph text out of the WordprocessingML body. A
// .docx file is a zip archive; the document text lives in
// word/document.xml as w:t runs grouped into w:p paragraphs.
func docxExcerpt(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer func() { _ = archive.Close() }()

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", errors.New("docx has no word/document.xml")
	}

	rc, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("failed to read docx body: %w", err)
	}
	defer func() { _ = rc.Close() }()

	var sb strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false

	for sb.Len() < MaxExcerptChars {
		token, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return "", fmt.Errorf("malformed docx body: %w", tokenErr)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return Truncate(strings.TrimSpace(sb.String())), nil
}
