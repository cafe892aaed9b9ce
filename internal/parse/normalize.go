package parse

import (
	"regexp"
	"strings"
)

// glyphReplacer maps glyphs the OCR step is known to mis-decode onto the
// characters the source banks intended. Applied globally, before splitting.
var glyphReplacer = strings.NewReplacer(
	"ð", "d",
	"Ð", "D",
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"\u00a0", " ",
)

var defaultPageLabelPattern = regexp.MustCompile(`(?i)^pagina\s+\d+`)

// Vocabulary is the set of boilerplate markers used to recognize header,
// footer and watermark lines in a scanned bank. The zero value matches
// nothing; use DefaultVocabulary for the built-in tables.
type Vocabulary struct {
	HeaderPrefixes       []string
	ProvenanceSubstrings []string
	PageLabelPattern     *regexp.Regexp
}

// DefaultVocabulary returns the vocabulary tuned for the Italian
// competitive-exam banks this tool targets.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		HeaderPrefixes: []string{
			"CONCORSO",
			"BANCA DATI",
			"QUESTIONARIO",
			"ALLEGATO",
		},
		ProvenanceSubstrings: []string{
			"mininterno",
			"concorsipubblici",
			"tutti i diritti",
		},
		PageLabelPattern: defaultPageLabelPattern,
	}
}

// IsNoise reports whether a trimmed line is document boilerplate: a section
// header, a provenance watermark, a page label, or a lone page number.
func (v Vocabulary) IsNoise(line string) bool {
	upper := strings.ToUpper(line)
	for _, prefix := range v.HeaderPrefixes {
		if strings.HasPrefix(upper, strings.ToUpper(prefix)) {
			return true
		}
	}

	lower := strings.ToLower(line)
	for _, substring := range v.ProvenanceSubstrings {
		if strings.Contains(lower, strings.ToLower(substring)) {
			return true
		}
	}

	if v.PageLabelPattern != nil && v.PageLabelPattern.MatchString(line) {
		return true
	}

	return isDigitsOnly(line)
}

func isDigitsOnly(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Normalize cleans raw OCR text and returns the trimmed, noise-free lines
// using the default vocabulary.
func Normalize(raw string) []string {
	return NormalizeWith(raw, DefaultVocabulary())
}

// NormalizeWith is Normalize with a caller-supplied noise vocabulary.
func NormalizeWith(raw string, vocab Vocabulary) []string {
	cleaned := glyphReplacer.Replace(raw)
	cleaned = strings.ReplaceAll(cleaned, "\r\n", "\n")
	cleaned = strings.ReplaceAll(cleaned, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if vocab.IsNoise(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
