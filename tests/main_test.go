package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IMSLEPT/quizlo/internal/export"
	"github.com/IMSLEPT/quizlo/internal/extract"
	"github.com/IMSLEPT/quizlo/internal/models"
	"github.com/IMSLEPT/quizlo/internal/parse"
)

// getMockRawText imitates the OCR dump of a scanned bank: inconsistent
// numbering, header/footer noise, a mis-decoded glyph, and a question whose
// number was lost entirely.
func getMockRawText() string {
	return strings.Join([]string{
		"BANCA DATI UFFICIALE",
		"Pagina 1",
		"1. Qual e la capitale ð'Italia?",
		"1 Roma",
		"2 Quale fiume attraversa",
		"la citta di Torino?",
		"2 Il Po",
		"scaricato da www.mininterno.net",
		"Chi ha scritto la Divina Commedia?",
		"Dante Alighieri",
		"Pagina 2",
		"12",
		"58Domanda testuale",
		"58 La risposta testuale",
	}, "\r\n")
}

func TestParsePipeline(t *testing.T) {
	lines := parse.Normalize(getMockRawText())
	questions := parse.Parse(lines)

	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d: %+v", len(questions), questions)
	}

	want := []models.Question{
		{ID: 1, Question: "Qual e la capitale d'Italia?", Answer: "Roma", Options: []string{}},
		{ID: 2, Question: "Quale fiume attraversa la citta di Torino?", Answer: "Il Po", Options: []string{}},
		{ID: 3, Question: "Chi ha scritto la Divina Commedia?", Answer: "Dante Alighieri", Options: []string{}},
		{ID: 58, Question: "Domanda testuale", Answer: "La risposta testuale", Options: []string{}},
	}

	for i, q := range questions {
		if !questionsEqual(q, want[i]) {
			t.Errorf("record %d mismatch\nwant: %+v\ngot:  %+v", i, want[i], q)
		}
	}
}

func questionsEqual(a, b models.Question) bool {
	return a.ID == b.ID && a.Question == b.Question && a.Answer == b.Answer && len(a.Options) == len(b.Options)
}

func TestExtractNormalizeParseExport(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "bank.txt")
	if err := os.WriteFile(source, []byte(getMockRawText()), 0o644); err != nil {
		t.Fatal(err)
	}

	pages, err := extract.Pages(source)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}

	lines := parse.Normalize(strings.Join(pages, "\n"))
	questions := parse.Parse(lines)
	if len(questions) == 0 {
		t.Fatal("expected questions from the mock bank")
	}

	saved, err := export.WriteData(questions, filepath.Join(dir, "bank_questions"), "json")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(saved[0])
	if err != nil {
		t.Fatalf("expected file at %s but got error: %v", saved[0], err)
	}
	content := string(data)
	if !strings.Contains(content, "Divina Commedia") {
		t.Errorf("expected exported json to contain the recovered question, got:\n%s", content)
	}
	if !strings.Contains(content, `"id": 58`) {
		t.Errorf("expected exported json to contain the fused-number question, got:\n%s", content)
	}
}
