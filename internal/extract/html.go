package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func htmlPages(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open html: %w", err)
	}
	defer file.Close()
	return htmlPagesFromReader(file)
}

// htmlPagesFromReader pulls per-page text out of an HTML bank. Republished
// banks wrap each page in div.page; without those containers, <hr> elements
// are treated as page breaks, and failing that the whole body is one page.
func htmlPagesFromReader(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var pages []string
	if containers := doc.Find("div.page"); containers.Length() > 0 {
		containers.Each(func(i int, s *goquery.Selection) {
			if text := blockText(s); text != "" {
				pages = append(pages, text)
			}
		})
		return pages, nil
	}

	var current []string
	flush := func() {
		if len(current) > 0 {
			pages = append(pages, strings.Join(current, "\n"))
			current = nil
		}
	}

	doc.Find("body").Children().Each(func(i int, s *goquery.Selection) {
		if goquery.NodeName(s) == "hr" {
			flush()
			return
		}
		if text := blockText(s); text != "" {
			current = append(current, text)
		}
	})
	flush()

	if len(pages) == 0 {
		if text := blockText(doc.Selection); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no text found in html document")
	}

	return pages, nil
}

// blockText joins the text of block-level descendants with newlines so line
// structure survives into the normalizer.
func blockText(s *goquery.Selection) string {
	blocks := s.Find("p, li, h1, h2, h3, h4, tr")
	if blocks.Length() == 0 {
		return strings.TrimSpace(s.Text())
	}

	var lines []string
	blocks.Each(func(i int, b *goquery.Selection) {
		if text := strings.TrimSpace(b.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	return strings.Join(lines, "\n")
}
