package search

import (
	"fmt"
	"strings"
)

// Query syntax:
//
//	word            text contains word (case-insensitive)
//	"two words"     text contains the quoted phrase
//	~wrd            fuzzy match
//	/re/            regular expression
//	d:>1 depth:2    depth comparison (0 is root level)
//	children:0      number of children; c: is short
//	p:word          parent matches word; parent: is long
//	a:word          some ancestor matches word; ancestor: is long
//	a b             both (implicit AND), a + b is the same
//	a | b           either
//	-a              not
//	( ... )         grouping

// TokenType represents the type of a token in the search query
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenText
	TokenFilter
	TokenFuzzy
	TokenRegex
	TokenAnd
	TokenOr
	TokenNot
	TokenLParen
	TokenRParen
)

// Token represents a single token in the search query
type Token struct {
	Type  TokenType
	Value string
}

// Tokenizer converts a search query string into tokens
type Tokenizer struct {
	input string
	pos   int
}

// NewTokenizer creates a new tokenizer for the given input
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// NextToken returns the next token in the input
func (t *Tokenizer) NextToken() Token {
	t.skipWhitespace()

	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF}
	}

	switch ch := t.input[t.pos]; ch {
	case '(':
		t.pos++
		return Token{Type: TokenLParen, Value: "("}
	case ')':
		t.pos++
		return Token{Type: TokenRParen, Value: ")"}
	case '|':
		t.pos++
		return Token{Type: TokenOr, Value: "|"}
	case '+':
		t.pos++
		return Token{Type: TokenAnd, Value: "+"}
	case '-':
		t.pos++
		return Token{Type: TokenNot, Value: "-"}
	case '"':
		return t.readQuotedText()
	case '~':
		t.pos++
		return Token{Type: TokenFuzzy, Value: t.readWord()}
	case '/':
		return t.readRegex()
	default:
		word := t.readWord()
		if isFilter(word) {
			return Token{Type: TokenFilter, Value: word}
		}
		return Token{Type: TokenText, Value: word}
	}
}

// AllTokens returns all tokens in the input, ending with TokenEOF
func (t *Tokenizer) AllTokens() []Token {
	var tokens []Token
	for {
		tok := t.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && strings.ContainsRune(" \t\n", rune(t.input[t.pos])) {
		t.pos++
	}
}

func (t *Tokenizer) readQuotedText() Token {
	t.pos++ // opening quote
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '"' {
		t.pos++
	}
	value := t.input[start:t.pos]
	if t.pos < len(t.input) {
		t.pos++
	}
	return Token{Type: TokenText, Value: value}
}

// readWord reads up to whitespace or an operator character.
func (t *Tokenizer) readWord() string {
	start := t.pos
	for t.pos < len(t.input) && !strings.ContainsRune(" \t\n|()", rune(t.input[t.pos])) {
		t.pos++
	}
	return t.input[start:t.pos]
}

// readRegex reads /pattern/. A backslash escapes the next character. An
// unterminated pattern runs to the end of the input.
func (t *Tokenizer) readRegex() Token {
	t.pos++ // opening slash
	var b strings.Builder
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case ch == '\\' && t.pos+1 < len(t.input) && t.input[t.pos+1] == '/':
			b.WriteByte('/')
			t.pos += 2
			continue
		case ch == '/':
			t.pos++
			return Token{Type: TokenRegex, Value: b.String()}
		}
		b.WriteByte(ch)
		t.pos++
	}
	return Token{Type: TokenRegex, Value: b.String()}
}

var filterNames = map[string]string{
	"d":        "depth",
	"depth":    "depth",
	"c":        "children",
	"children": "children",
	"p":        "parent",
	"parent":   "parent",
	"a":        "ancestor",
	"ancestor": "ancestor",
}

func isFilter(word string) bool {
	name, _, ok := strings.Cut(word, ":")
	_, known := filterNames[name]
	return ok && known
}

// Parser converts tokens into a FilterExpr tree
type Parser struct {
	tokens []Token
	pos    int
}

// ParseQuery parses a complete search query. An empty query is an error.
func ParseQuery(query string) (FilterExpr, error) {
	p := &Parser{tokens: NewTokenizer(query).AllTokens()}

	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Type != TokenEOF {
		return nil, fmt.Errorf("unexpected token: %s", tok.Value)
	}
	return expr, nil
}

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// Precedence from low to high: OR, AND, NOT, atoms.

func (p *Parser) parseOr() (FilterExpr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = NewOrExpr(left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (FilterExpr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		switch p.current().Type {
		case TokenEOF, TokenRParen, TokenOr:
			return left, nil
		case TokenAnd:
			p.advance()
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = NewAndExpr(left, right)
	}
}

func (p *Parser) parseNot() (FilterExpr, error) {
	if p.current().Type == TokenNot {
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return NewNotExpr(inner), nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (FilterExpr, error) {
	tok := p.current()
	switch tok.Type {
	case TokenLParen:
		p.advance()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.current().Type != TokenRParen {
			return nil, fmt.Errorf("expected ')', got %q", p.current().Value)
		}
		p.advance()
		return expr, nil
	case TokenText:
		p.advance()
		return NewTextExpr(tok.Value), nil
	case TokenFuzzy:
		p.advance()
		if tok.Value == "" {
			return nil, fmt.Errorf("empty fuzzy term")
		}
		return NewFuzzyExpr(tok.Value), nil
	case TokenRegex:
		p.advance()
		return NewRegexExpr(tok.Value)
	case TokenFilter:
		p.advance()
		return parseFilter(tok.Value)
	case TokenEOF:
		return nil, fmt.Errorf("unexpected end of input")
	default:
		return nil, fmt.Errorf("unexpected token: %s", tok.Value)
	}
}

// parseFilter turns name:criteria into an expression.
func parseFilter(value string) (FilterExpr, error) {
	name, criteria, _ := strings.Cut(value, ":")
	if criteria == "" {
		return nil, fmt.Errorf("missing value for %s filter", filterNames[name])
	}

	switch filterNames[name] {
	case "depth":
		op, n := parseComparison(criteria)
		return NewDepthFilter(op, n)
	case "children":
		op, n := parseComparison(criteria)
		return NewChildrenFilter(op, n)
	case "parent":
		return NewParentFilter(NewTextExpr(criteria)), nil
	case "ancestor":
		return NewAncestorFilter(NewTextExpr(criteria)), nil
	}
	return nil, fmt.Errorf("unknown filter: %s", name)
}

// parseComparison splits ">=3" into its operator and value. No operator
// means equality.
func parseComparison(criteria string) (ComparisonOp, string) {
	for _, op := range []ComparisonOp{OpGreaterEqual, OpLessEqual, OpNotEqual, OpGreater, OpLess, OpEqual} {
		if rest, ok := strings.CutPrefix(criteria, string(op)); ok {
			return op, rest
		}
	}
	return OpEqual, criteria
}
