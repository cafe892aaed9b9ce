package extract

import (
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/ledongthuc/pdf"
)

func pdfPages(path string) ([]string, error) {
	if pages, ok := cachedPages(path); ok {
		debugf("using cached page texts for %s", path)
		return pages, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat pdf: %w", err)
	}

	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("read pdf %q: %w", path, err)
	}

	total := reader.NumPage()
	bar := pb.StartNew(total)
	pages := make([]string, 0, total)

	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			bar.Increment()
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			debugf("failed extracting text from page %d: %v", i, err)
			bar.Increment()
			continue
		}

		pages = append(pages, text)
		bar.Increment()
	}
	bar.Finish()

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text extracted from %q", path)
	}

	setCachedPages(path, pages)
	return pages, nil
}
