package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfExcerpt extracts text page by page, stopping once the excerpt cap is
// reached so large documents stay cheap.
func pdfExcerpt(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// A single unreadable page should not discard what earlier
			// pages already yielded.
			continue
		}
		sb.WriteString(text)

		if sb.Len() >= MaxExcerptChars {
			break
		}
	}

	return Truncate(sb.String()), nil
}
