package parse

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestNormalizeReplacesMisdecodedGlyphs(t *testing.T) {
	got := Normalize("1. Qual è il fiume più lungo ðel paese?")
	want := []string{"1. Qual è il fiume più lungo del paese?"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected normalized lines\nwant: %q\ngot:  %q", want, got)
	}
}

func TestNormalizeSplitsTrimsAndDropsEmptyLines(t *testing.T) {
	raw := "  prima riga  \r\n\r\n\tseconda riga\n\n"
	got := Normalize(raw)
	want := []string{"prima riga", "seconda riga"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected normalized lines\nwant: %q\ngot:  %q", want, got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	lines := []string{"1. Prima domanda?", "1 Prima risposta", "Continuazione"}
	once := Normalize(strings.Join(lines, "\n"))
	twice := Normalize(strings.Join(once, "\n"))
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalization is not idempotent\nfirst:  %q\nsecond: %q", once, twice)
	}
	if !reflect.DeepEqual(once, lines) {
		t.Fatalf("clean input was altered\nwant: %q\ngot:  %q", lines, once)
	}
}

func TestIsNoise(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		line  string
		noise bool
	}{
		{"BANCA DATI UFFICIALE 2024", true},
		{"banca dati ufficiale", true},
		{"Concorso pubblico per 120 posti", true},
		{"QUESTIONARIO N. 3", true},
		{"scaricato da www.mininterno.net", true},
		{"Tutti i diritti riservati", true},
		{"Pagina 12", true},
		{"pagina 3", true},
		{"127", true},
		{"1. Qual e la capitale?", false},
		{"Roma", false},
		{"Pagina senza numero", false},
	}

	for _, tt := range tests {
		if got := vocab.IsNoise(tt.line); got != tt.noise {
			t.Errorf("IsNoise(%q) = %v, want %v", tt.line, got, tt.noise)
		}
	}
}

func TestNoiseLinesDoNotAffectOutput(t *testing.T) {
	clean := []string{
		"1. Prima domanda?",
		"1 Prima risposta",
		"2 Seconda domanda?",
		"2 Seconda risposta",
	}
	noisy := []string{
		"BANCA DATI UFFICIALE",
		"1. Prima domanda?",
		"Pagina 1",
		"1 Prima risposta",
		"14",
		"2 Seconda domanda?",
		"scaricato da www.mininterno.net",
		"2 Seconda risposta",
		"Pagina 2",
	}

	got := Normalize(strings.Join(noisy, "\n"))
	if !reflect.DeepEqual(got, clean) {
		t.Fatalf("noise lines leaked into output\nwant: %q\ngot:  %q", clean, got)
	}
}

func TestNormalizeWithCustomVocabulary(t *testing.T) {
	vocab := Vocabulary{
		HeaderPrefixes:       []string{"KAPITEL"},
		ProvenanceSubstrings: []string{"beispiel.de"},
		PageLabelPattern:     regexp.MustCompile(`(?i)^seite\s+\d+`),
	}

	raw := strings.Join([]string{
		"KAPITEL EINS",
		"Seite 4",
		"www.beispiel.de",
		"1. Eine Frage?",
		"Pagina 9",
	}, "\n")

	got := NormalizeWith(raw, vocab)
	// the Italian page label is ordinary text under the custom vocabulary
	want := []string{"1. Eine Frage?", "Pagina 9"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines\nwant: %q\ngot:  %q", want, got)
	}
}
