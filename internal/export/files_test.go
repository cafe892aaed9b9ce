package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IMSLEPT/quizlo/internal/models"
)

func getMockQuestions() []models.Question {
	return []models.Question{
		{
			ID:       1,
			Question: "Qual e la capitale d'Italia?",
			Answer:   "Roma",
			Options:  []string{},
		},
		{
			ID:       2,
			Question: "Quale fiume attraversa Torino?",
			Answer:   "Il Po",
			Options:  []string{},
		},
	}
}

func TestWriteDataVariants(t *testing.T) {
	questions := getMockQuestions()
	dir := t.TempDir()

	tests := []struct {
		format       string
		checkContent bool
	}{
		{"json", true},
		{"md", true},
		{"txt", true},
		{"html", true},
		{"pdf", false}, // can't easily check PDF content
	}

	for _, tt := range tests {
		outputPath := filepath.Join(dir, "write_test")
		saved, err := WriteData(questions, outputPath, tt.format)
		if err != nil {
			t.Fatalf("WriteData(%s) failed: %v", tt.format, err)
		}
		if len(saved) != 1 {
			t.Fatalf("expected one saved file for %s, got %v", tt.format, saved)
		}

		info, err := os.Stat(saved[0])
		if err != nil {
			t.Fatalf("expected file at %s but got error: %v", saved[0], err)
		}
		if info.Size() == 0 {
			t.Errorf("expected file %s to be non-empty", saved[0])
		}

		if tt.checkContent {
			data, err := os.ReadFile(saved[0])
			if err != nil {
				t.Fatalf("failed reading %s: %v", saved[0], err)
			}
			if !strings.Contains(string(data), "Qual e la capitale d'Italia?") {
				t.Errorf("expected %s to contain the question text", saved[0])
			}
		}
	}
}

func TestWriteDataJSONShape(t *testing.T) {
	saved, err := WriteData(getMockQuestions(), filepath.Join(t.TempDir(), "bank"), "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(saved[0])
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	for _, field := range []string{`"id"`, `"question"`, `"answer"`, `"options"`} {
		if !strings.Contains(content, field) {
			t.Errorf("expected json output to contain %s", field)
		}
	}
	if !strings.Contains(content, `"options": []`) {
		t.Errorf("expected empty options arrays, got:\n%s", content)
	}
}

func TestWriteDataRejectsUnknownFormat(t *testing.T) {
	if _, err := WriteData(getMockQuestions(), filepath.Join(t.TempDir(), "x"), "docx"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestWriteDataReportsMissingAnswer(t *testing.T) {
	questions := []models.Question{{ID: 9, Question: "Senza risposta?", Options: []string{}}}
	saved, err := WriteData(questions, filepath.Join(t.TempDir(), "bank"), "md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(saved[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "_not recovered_") {
		t.Errorf("expected markdown to flag the missing answer, got:\n%s", data)
	}
}
