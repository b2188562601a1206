package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
)

// trimSet holds the characters stripped from both ends of a token:
// ASCII punctuation, quotes included, followed by ASCII whitespace.
const trimSet = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" + " \t\n\r\v\f"

// tokenizer splits lines into normalised tokens.
// A tokenizer is not safe for concurrent use.
type tokenizer struct {
	lower cases.Caser
}

func newTokenizer() *tokenizer {
	return &tokenizer{lower: cases.Lower(language.Und)}
}

// Tokenize splits line on the space character and normalises each piece.
// Runs of spaces yield empty tokens, which are kept.
func (t *tokenizer) Tokenize(line string) []string {
	pieces := strings.Split(line, " ")
	tokens := make([]string, len(pieces))
	for i, piece := range pieces {
		tokens[i] = t.normalise(piece)
	}
	return tokens
}

func (t *tokenizer) normalise(piece string) string {
	return strings.Trim(t.lower.String(piece), trimSet)
}

// Tokenize splits a single line into lowercase, edge-trimmed tokens.
func Tokenize(line string) []string {
	return newTokenizer().Tokenize(line)
}

// CountNgrams builds a histogram of every n-gram in lines.
// N-grams never span two lines; a line with fewer than n tokens
// contributes nothing.
func CountNgrams(lines []string, n int) *domain.Histogram {
	h := domain.NewHistogram(n)
	if n < 1 {
		return h
	}

	tok := newTokenizer()
	for _, line := range lines {
		tokens := tok.Tokenize(line)
		for i := 0; i+n <= len(tokens); i++ {
			h.Add(strings.Join(tokens[i:i+n], " "))
		}
	}
	return h
}
