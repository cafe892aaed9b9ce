package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pages returns the ordered per-page texts of a source document. Supported
// sources are local PDF, HTML and plain-text files, plus http(s) URLs
// serving an HTML bank. The parser never sees a document that failed here.
func Pages(path string) ([]string, error) {
	lower := strings.ToLower(path)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return remotePages(path)
	}

	switch filepath.Ext(lower) {
	case ".pdf":
		return pdfPages(path)
	case ".html", ".htm":
		return htmlPages(path)
	case ".txt", ".text":
		return textPages(path)
	default:
		return nil, fmt.Errorf("unsupported document type %q", filepath.Ext(path))
	}
}

// A plain-text dump is treated as a single page.
func textPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	return []string{string(data)}, nil
}
