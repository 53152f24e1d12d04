package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterExpr is a parsed query that can be matched against entries
type FilterExpr interface {
	Matches(e *Entry) bool
	String() string
}

// TextExpr matches entries whose text contains the term (case-insensitive)
type TextExpr struct {
	term string
}

func NewTextExpr(term string) *TextExpr {
	return &TextExpr{term: strings.ToLower(term)}
}

func (x *TextExpr) Matches(e *Entry) bool {
	return strings.Contains(strings.ToLower(e.Text), x.term)
}

func (x *TextExpr) String() string {
	return fmt.Sprintf("text(%q)", x.term)
}

// FuzzyExpr matches entries whose text contains the term's characters in order
type FuzzyExpr struct {
	term string
}

func NewFuzzyExpr(term string) *FuzzyExpr {
	return &FuzzyExpr{term: term}
}

func (x *FuzzyExpr) Matches(e *Entry) bool {
	return fuzzy.MatchNormalizedFold(x.term, e.Text)
}

func (x *FuzzyExpr) String() string {
	return fmt.Sprintf("fuzzy(%q)", x.term)
}

// RegexExpr matches entries whose text matches a regular expression
type RegexExpr struct {
	re *regexp.Regexp
}

func NewRegexExpr(pattern string) (*RegexExpr, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return &RegexExpr{re: re}, nil
}

func (x *RegexExpr) Matches(e *Entry) bool {
	return x.re.MatchString(e.Text)
}

func (x *RegexExpr) String() string {
	return fmt.Sprintf("regex(%q)", x.re.String())
}

type AndExpr struct{ left, right FilterExpr }

func NewAndExpr(left, right FilterExpr) *AndExpr { return &AndExpr{left, right} }

func (x *AndExpr) Matches(e *Entry) bool { return x.left.Matches(e) && x.right.Matches(e) }

func (x *AndExpr) String() string { return fmt.Sprintf("(%s AND %s)", x.left, x.right) }

type OrExpr struct{ left, right FilterExpr }

func NewOrExpr(left, right FilterExpr) *OrExpr { return &OrExpr{left, right} }

func (x *OrExpr) Matches(e *Entry) bool { return x.left.Matches(e) || x.right.Matches(e) }

func (x *OrExpr) String() string { return fmt.Sprintf("(%s OR %s)", x.left, x.right) }

type NotExpr struct{ inner FilterExpr }

func NewNotExpr(inner FilterExpr) *NotExpr { return &NotExpr{inner} }

func (x *NotExpr) Matches(e *Entry) bool { return !x.inner.Matches(e) }

func (x *NotExpr) String() string { return fmt.Sprintf("NOT %s", x.inner) }

// ComparisonOp represents comparison operators
type ComparisonOp string

const (
	OpEqual        ComparisonOp = "="
	OpNotEqual     ComparisonOp = "!="
	OpGreater      ComparisonOp = ">"
	OpGreaterEqual ComparisonOp = ">="
	OpLess         ComparisonOp = "<"
	OpLessEqual    ComparisonOp = "<="
)

// CountFilter compares a per-entry number (depth or child count) with a value.
type CountFilter struct {
	name  string
	op    ComparisonOp
	value int
	get   func(*Entry) int
}

// NewDepthFilter matches on depth, 0 being root level.
func NewDepthFilter(op ComparisonOp, value string) (*CountFilter, error) {
	return newCountFilter("depth", op, value, (*Entry).Depth)
}

// NewChildrenFilter matches on the number of direct children.
func NewChildrenFilter(op ComparisonOp, value string) (*CountFilter, error) {
	return newCountFilter("children", op, value, func(e *Entry) int { return e.Children })
}

func newCountFilter(name string, op ComparisonOp, value string, get func(*Entry) int) (*CountFilter, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return &CountFilter{name: name, op: op, value: n, get: get}, nil
}

func (x *CountFilter) Matches(e *Entry) bool {
	return compare(x.get(e), x.op, x.value)
}

func (x *CountFilter) String() string {
	return fmt.Sprintf("%s%s%d", x.name, x.op, x.value)
}

// ParentFilter matches entries whose direct parent matches inner
type ParentFilter struct {
	inner FilterExpr
}

func NewParentFilter(inner FilterExpr) *ParentFilter {
	return &ParentFilter{inner: inner}
}

func (x *ParentFilter) Matches(e *Entry) bool {
	return e.Parent != nil && x.inner.Matches(e.Parent)
}

func (x *ParentFilter) String() string {
	return fmt.Sprintf("parent(%s)", x.inner)
}

// AncestorFilter matches entries with any ancestor matching inner
type AncestorFilter struct {
	inner FilterExpr
}

func NewAncestorFilter(inner FilterExpr) *AncestorFilter {
	return &AncestorFilter{inner: inner}
}

func (x *AncestorFilter) Matches(e *Entry) bool {
	for p := e.Parent; p != nil; p = p.Parent {
		if x.inner.Matches(p) {
			return true
		}
	}
	return false
}

func (x *AncestorFilter) String() string {
	return fmt.Sprintf("ancestor(%s)", x.inner)
}

// compare performs a comparison between two integers based on the operator
func compare(a int, op ComparisonOp, b int) bool {
	switch op {
	case OpGreater:
		return a > b
	case OpGreaterEqual:
		return a >= b
	case OpLess:
		return a < b
	case OpLessEqual:
		return a <= b
	case OpEqual:
		return a == b
	case OpNotEqual:
		return a != b
	default:
		return false
	}
}
