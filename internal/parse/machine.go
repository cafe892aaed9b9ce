package parse

import "github.com/IMSLEPT/quizlo/internal/models"

// The machine distinguishes records whose defining line carried a readable
// number (explicit) from records synthesized after numbering was lost in the
// scan (implicit). Implicit ids continue the sequence of the prior record.
type phase int

const (
	phaseNone phase = iota
	phaseQuestionExplicit
	phaseAnswerExplicit
	phaseQuestionImplicit
	phaseAnswerImplicit
)

// accumulator threads the full parser state through the fold over the line
// sequence: the current phase, the single open record, and the records
// emitted so far. At most one record is open at any time; once emitted a
// record is never touched again.
type accumulator struct {
	phase   phase
	open    *models.Question
	emitted []models.Question
}

// Parse groups filtered lines into question/answer records. It is a total
// function over its input: malformed lines degrade to best-effort grouping,
// nothing fails.
func Parse(lines []string) []models.Question {
	acc := accumulator{}
	for _, line := range lines {
		acc = step(acc, line)
	}
	return acc.finish()
}

func step(acc accumulator, line string) accumulator {
	tok := ClassifyLine(line)
	if tok.Numbered {
		if tok.Content == "" {
			// a bare number carries no usable information
			return acc
		}
		return stepNumbered(acc, tok)
	}
	return stepPlain(acc, line)
}

// stepNumbered handles a line with a readable leading number. The same
// number as the open record means the line is (part of) its answer; a
// different number starts the next record.
func stepNumbered(acc accumulator, tok Token) accumulator {
	if acc.open != nil && tok.ID == acc.open.ID {
		if acc.phase == phaseAnswerExplicit {
			acc.open.Answer += " " + tok.Content
		} else {
			acc.open.Answer = tok.Content
		}
		acc.phase = phaseAnswerExplicit
		return acc
	}

	acc = emit(acc)
	acc.open = newRecord(tok.ID, tok.Content)
	acc.phase = phaseQuestionExplicit
	return acc
}

func stepPlain(acc accumulator, line string) accumulator {
	switch acc.phase {
	case phaseNone:
		// nothing open to attach the line to
		return acc
	case phaseQuestionExplicit:
		acc.open.Question += " " + line
		return acc
	case phaseQuestionImplicit:
		acc.open.Answer = line
		acc.phase = phaseAnswerImplicit
		return acc
	default: // phaseAnswerExplicit, phaseAnswerImplicit
		return recoverLostNumber(acc, line)
	}
}

// recoverLostNumber decides what an unnumbered line after a completed answer
// means. The source banks alternate question and answer strictly, so the
// line is promoted to a new question whose number was lost, with an id
// incremented from the prior record. This cannot tell a lost number from a
// genuine answer continuation; swap this function to try another strategy.
func recoverLostNumber(acc accumulator, line string) accumulator {
	nextID := acc.open.ID + 1
	acc = emit(acc)
	acc.open = newRecord(nextID, line)
	acc.phase = phaseQuestionImplicit
	return acc
}

// emit appends the open record to the output unless its question text is
// empty, which guards against degenerate trailing records.
func emit(acc accumulator) accumulator {
	if acc.open != nil && acc.open.Question != "" {
		acc.emitted = append(acc.emitted, *acc.open)
	}
	acc.open = nil
	return acc
}

func (acc accumulator) finish() []models.Question {
	acc = emit(acc)
	if acc.emitted == nil {
		return []models.Question{}
	}
	return acc.emitted
}

func newRecord(id int, question string) *models.Question {
	return &models.Question{ID: id, Question: question, Options: []string{}}
}
