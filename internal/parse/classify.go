package parse

import (
	"strconv"
	"strings"
)

// numberSeparators are the characters allowed between a leading question
// number and its text. The separator run may be empty: scanned banks often
// fuse the number directly with the first word ("58Domanda testuale").
const numberSeparators = ".-) \t"

// Token is the classification of a single filtered line. Numbered tokens
// carry the leading question number and the content that follows it; plain
// tokens carry the whole line in Content.
type Token struct {
	Numbered bool
	ID       int
	Content  string
}

// ClassifyLine splits a line into its leading number (if any) and content.
func ClassifyLine(line string) Token {
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return Token{Content: line}
	}

	id, err := strconv.Atoi(line[:digits])
	if err != nil {
		// digit run too long for a question number
		return Token{Content: line}
	}

	content := strings.TrimLeft(line[digits:], numberSeparators)
	return Token{Numbered: true, ID: id, Content: strings.TrimSpace(content)}
}
