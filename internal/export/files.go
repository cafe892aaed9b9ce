package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	htmlpkg "html"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
	"github.com/yuin/goldmark"

	"github.com/IMSLEPT/quizlo/internal/models"
	"github.com/IMSLEPT/quizlo/internal/templates"
)

const (
	titleMarker   = "<!-- TITLE -->"
	contentMarker = "<!-- CONTENT -->"
)

// WriteData renders the parsed records to outputPath in the requested
// format (json, md, txt, html or pdf) and returns the paths written. The
// extension of outputPath is replaced to match the format.
func WriteData(questions []models.Question, outputPath, format string) ([]string, error) {
	target := withExtension(outputPath, format)

	switch format {
	case "json":
		payload, err := json.MarshalIndent(questions, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal questions: %w", err)
		}
		if err := os.WriteFile(target, append(payload, '\n'), 0o644); err != nil {
			return nil, fmt.Errorf("write json file: %w", err)
		}
	case "md":
		if err := os.WriteFile(target, []byte(buildMarkdown(questions)), 0o644); err != nil {
			return nil, fmt.Errorf("write markdown file: %w", err)
		}
	case "txt":
		if err := os.WriteFile(target, []byte(buildPlainText(questions)), 0o644); err != nil {
			return nil, fmt.Errorf("write text file: %w", err)
		}
	case "html":
		doc, err := buildHTMLDocument(questions)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(target, doc, 0o644); err != nil {
			return nil, fmt.Errorf("write html file: %w", err)
		}
	case "pdf":
		if err := writePDF(questions, target); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	return []string{target}, nil
}

func buildMarkdown(questions []models.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Question Bank (%d questions)\n", len(questions))

	for _, q := range questions {
		fmt.Fprintf(&b, "\n## Question %d\n\n", q.ID)
		b.WriteString(q.Question)
		b.WriteString("\n")

		for i, opt := range q.Options {
			fmt.Fprintf(&b, "\n- %s) %s", optionLetter(i), opt)
		}
		if len(q.Options) > 0 {
			b.WriteString("\n")
		}

		if q.Answer == "" {
			b.WriteString("\n**Answer:** _not recovered_\n")
		} else {
			fmt.Fprintf(&b, "\n**Answer:** %s\n", q.Answer)
		}
	}

	return b.String()
}

func buildPlainText(questions []models.Question) string {
	var b strings.Builder
	for i, q := range questions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Q%d. %s\n", q.ID, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "  %s) %s\n", optionLetter(j), opt)
		}
		fmt.Fprintf(&b, "A: %s\n", q.Answer)
	}
	return b.String()
}

func buildHTMLDocument(questions []models.Question) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(buildMarkdown(questions)), &body); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}

	shell := templates.EmbeddedTemplate
	if !strings.Contains(shell, contentMarker) {
		return nil, fmt.Errorf("content marker missing from template")
	}

	title := htmlpkg.EscapeString(fmt.Sprintf("Question Bank (%d questions)", len(questions)))
	doc := strings.ReplaceAll(shell, titleMarker, title)
	doc = strings.Replace(doc, contentMarker, body.String(), 1)

	return []byte(doc), nil
}

func writePDF(questions []models.Question, target string) error {
	trace := filepath.Join(os.TempDir(), "quizlo_mdtopdf_trace.log")
	renderer := mdtopdf.NewPdfRenderer("", "", target, trace, nil, mdtopdf.LIGHT)
	if err := renderer.Process([]byte(buildMarkdown(questions))); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func optionLetter(index int) string {
	letters := "ABCDEFGH"
	if index < len(letters) {
		return string(letters[index])
	}
	return fmt.Sprintf("%d", index+1)
}

func withExtension(outputPath, format string) string {
	cleanPath := strings.TrimSpace(outputPath)
	if cleanPath == "" {
		cleanPath = "quizlo_output"
	}

	base := strings.TrimSuffix(cleanPath, filepath.Ext(cleanPath))
	if base == "" {
		base = cleanPath
	}

	return base + "." + format
}
