// lexer.go: single-pass regular-expression tokenizer.
package mal

import (
	"regexp"
	"sort"
)

// Token is one lexeme with its 1-based source position.
type Token struct {
	Text string
	Line int
	Col  int
}

// tokenRe recognizes, after skipping whitespace and commas:
//
//	~@                    splice-unquote prefix
//	[]{}()'`~^@           single-character punctuation
//	"..."                 strings, escape aware; the closing quote is optional
//	                      so an unterminated string still becomes one token
//	;...                  comments up to end of line
//	everything else       an atom token
var tokenRe = regexp.MustCompile("[\\s,]*(~@|[\\[\\]{}()'`~^@]|\"(?:\\\\.|[^\\\\\"])*\"?|;.*|[^\\s\\[\\]{}('\"`,;)]*)")

// Tokenize splits src into tokens, dropping comments.
func Tokenize(src string) []Token {
	var lineStarts []int
	lineStarts = append(lineStarts, 0)
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	pos := func(off int) (int, int) {
		// index of the last line start <= off
		ln := sort.Search(len(lineStarts), func(i int) bool { return lineStarts[i] > off }) - 1
		return ln + 1, off - lineStarts[ln] + 1
	}

	var out []Token
	for _, m := range tokenRe.FindAllStringSubmatchIndex(src, -1) {
		start, end := m[2], m[3]
		if start < 0 || start == end {
			continue
		}
		text := src[start:end]
		if text[0] == ';' {
			continue
		}
		line, col := pos(start)
		out = append(out, Token{Text: text, Line: line, Col: col})
	}
	return out
}
