package lifelike

import (
	"strconv"
	"strings"
)

// ParseErrorKind classifies why a rule string was rejected.
type ParseErrorKind uint8

const (
	// MalformedSyntax covers stray characters and a missing separator.
	MalformedSyntax ParseErrorKind = iota
	// OutOfRangeDigit denotes a neighbor count outside [0, 8].
	OutOfRangeDigit
	// MissingClause denotes an absent or duplicated B or S clause.
	MissingClause
)

func (k ParseErrorKind) String() string {
	switch k {
	case MalformedSyntax:
		return "malformed syntax"
	case OutOfRangeDigit:
		return "out-of-range digit"
	case MissingClause:
		return "missing clause"
	default:
		return "unknown"
	}
}

// ParseError reports an invalid rule string. Pos is the byte offset of the
// offending character, or -1 when the error concerns the string as a whole.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return "lifelike: " + e.Kind.String() + " in rule " + strconv.Quote(e.Input) +
			" at offset " + strconv.Itoa(e.Pos) + ": " + e.Msg
	}
	return "lifelike: " + e.Kind.String() + " in rule " + strconv.Quote(e.Input) + ": " + e.Msg
}

// RuleSet holds the neighbor counts that cause birth and survival as 9-bit
// masks, one bit per count in [0, 8].
type RuleSet struct {
	birth    uint16
	survival uint16
}

// Conway is the standard Game of Life rule, B3/S23.
var Conway = RuleSet{birth: 1 << 3, survival: 1<<2 | 1<<3}

// DefaultRule is the rule string used when none is configured.
const DefaultRule = "B3/S23"

const maxNeighbors = 8

// NewRuleSet builds a rule from explicit count lists. Counts outside [0, 8]
// are ignored.
func NewRuleSet(birth, survival []int) RuleSet {
	var r RuleSet
	for _, n := range birth {
		if n >= 0 && n <= maxNeighbors {
			r.birth |= 1 << n
		}
	}
	for _, n := range survival {
		if n >= 0 && n <= maxNeighbors {
			r.survival |= 1 << n
		}
	}
	return r
}

// ParseRule parses a rule string of the form B<digits>/S<digits>.
func ParseRule(s string) (RuleSet, error) {
	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		if len(s) > 0 && (isClause(s[0], 'B') || isClause(s[0], 'S')) {
			return RuleSet{}, &ParseError{Kind: MissingClause, Input: s, Pos: -1, Msg: "expected B and S clauses separated by '/'"}
		}
		return RuleSet{}, &ParseError{Kind: MalformedSyntax, Input: s, Pos: -1, Msg: "expected B<digits>/S<digits>"}
	}
	if strings.Count(s, "/") > 1 {
		return RuleSet{}, &ParseError{Kind: MissingClause, Input: s, Pos: strings.LastIndexByte(s, '/'), Msg: "more than two clauses"}
	}

	left, right := s[:slash], s[slash+1:]
	if len(left) == 0 || !isClause(left[0], 'B') {
		return RuleSet{}, &ParseError{Kind: MissingClause, Input: s, Pos: 0, Msg: "birth clause must start with 'B'"}
	}
	if len(right) == 0 || !isClause(right[0], 'S') {
		return RuleSet{}, &ParseError{Kind: MissingClause, Input: s, Pos: slash + 1, Msg: "survival clause must start with 'S'"}
	}

	birth, err := parseCounts(s, left[1:], 1)
	if err != nil {
		return RuleSet{}, err
	}
	survival, err := parseCounts(s, right[1:], slash+2)
	if err != nil {
		return RuleSet{}, err
	}
	return RuleSet{birth: birth, survival: survival}, nil
}

// MustParseRule is like ParseRule but panics on error. It is meant for
// package-level presets.
func MustParseRule(s string) RuleSet {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func isClause(c, letter byte) bool {
	return c == letter || c == letter+('a'-'A')
}

func parseCounts(input, digits string, offset int) (uint16, error) {
	var mask uint16
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case c == '9':
			return 0, &ParseError{Kind: OutOfRangeDigit, Input: input, Pos: offset + i, Msg: "neighbor count 9 exceeds 8"}
		case c < '0' || c > '9':
			return 0, &ParseError{Kind: MalformedSyntax, Input: input, Pos: offset + i, Msg: "unexpected character " + strconv.QuoteRune(rune(c))}
		}
		mask |= 1 << (c - '0')
	}
	return mask, nil
}

// IsBirth reports whether a dead cell with n live neighbors is born.
func (r RuleSet) IsBirth(n int) bool {
	return n >= 0 && n <= maxNeighbors && r.birth&(1<<n) != 0
}

// IsSurvival reports whether a live cell with n live neighbors survives.
func (r RuleSet) IsSurvival(n int) bool {
	return n >= 0 && n <= maxNeighbors && r.survival&(1<<n) != 0
}

// Birth returns the birth counts in ascending order.
func (r RuleSet) Birth() []int { return maskCounts(r.birth) }

// Survival returns the survival counts in ascending order.
func (r RuleSet) Survival() []int { return maskCounts(r.survival) }

// String renders the canonical B/S form with ascending digits.
func (r RuleSet) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range r.Birth() {
		b.WriteByte(byte('0' + n))
	}
	b.WriteString("/S")
	for _, n := range r.Survival() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

func maskCounts(mask uint16) []int {
	counts := make([]int, 0, maxNeighbors+1)
	for n := 0; n <= maxNeighbors; n++ {
		if mask&(1<<n) != 0 {
			counts = append(counts, n)
		}
	}
	return counts
}

// Preset names a well-known Life-like rule.
type Preset struct {
	Name string
	Rule RuleSet
}

var presets = []Preset{
	{Name: "life", Rule: Conway},
	{Name: "highlife", Rule: MustParseRule("B36/S23")},
	{Name: "seeds", Rule: MustParseRule("B2/S")},
	{Name: "daynight", Rule: MustParseRule("B3678/S34678")},
	{Name: "replicator", Rule: MustParseRule("B1357/S1357")},
	{Name: "lifewithoutdeath", Rule: MustParseRule("B3/S012345678")},
}

// Presets returns the built-in named rules.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}
