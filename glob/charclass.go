package glob

import "strings"

// posixClassTable maps POSIX [:name:] classes to a Unicode (text pattern)
// and ASCII (byte pattern) regex-class-body fragment. The text fragments
// lean on regexp2's \p{...} Unicode-category escapes, which are themselves
// just a view over the same general-category tables the standard library's
// unicode package exposes (unicode.Letter, unicode.Digit, ...) — see
// DESIGN.md for why no ecosystem library improves on that source.
var posixClassTable = map[string]struct{ text, bytes string }{
	"alpha":  {text: `\p{L}`, bytes: `A-Za-z`},
	"digit":  {text: `\d`, bytes: `0-9`},
	"alnum":  {text: `\p{L}\p{Nd}`, bytes: `A-Za-z0-9`},
	"upper":  {text: `\p{Lu}`, bytes: `A-Z`},
	"lower":  {text: `\p{Ll}`, bytes: `a-z`},
	"space":  {text: `\s`, bytes: ` \t\n\r\f\v`},
	"punct":  {text: `\p{P}\p{S}`, bytes: "!-/:-@\\[-`{-~"},
	"cntrl":  {text: `\x00-\x1f\x7f`, bytes: `\x00-\x1f\x7f`},
	"print":  {text: "\\x20-\\x{10ffff}", bytes: `\x20-\x7e`},
	"graph":  {text: "\\x21-\\x{10ffff}", bytes: `\x21-\x7e`},
	"blank":  {text: " \t", bytes: " \t"},
	"xdigit": {text: `0-9A-Fa-f`, bytes: `0-9A-Fa-f`},
	"ascii":  {text: `\x00-\x7f`, bytes: `\x00-\x7f`},
	"word":   {text: `\w`, bytes: `0-9A-Za-z_`},
}

// posixClassFragment returns the canonical character-class-body fragment
// for a POSIX class name (without its [: :] wrapper or the enclosing []),
// or false if name is not recognized.
func posixClassFragment(name string, isBytes bool) (string, bool) {
	cls, ok := posixClassTable[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	if isBytes {
		return cls.bytes, true
	}
	return cls.text, true
}

// classAtomKind distinguishes the kinds of tokens that can appear inside a
// [...] body, so the compiler can apply §4.6.1's range-collapse and
// POSIX-class rules after the whole class has been scanned.
type classAtomKind int

const (
	atomLiteral classAtomKind = iota
	atomRange
	atomRaw // POSIX class substitution / escaped operator, not range-eligible
)

type classAtom struct {
	kind   classAtomKind
	lo, hi rune // valid when kind == atomRange
	text   string
}

// classBuilder accumulates classAtoms for one [...] body and renders the
// final class-body text, applying bad-range collapse (§4.6.1, testable
// property 7).
type classBuilder struct {
	atoms []classAtom
}

func (b *classBuilder) addLiteral(r rune) {
	b.atoms = append(b.atoms, classAtom{kind: atomLiteral, lo: r, hi: r, text: escapeClassRune(r)})
}

func (b *classBuilder) addRaw(text string) {
	b.atoms = append(b.atoms, classAtom{kind: atomRaw, text: text})
}

// tryExtendRange converts the most recently added literal atom into a range
// atom ending at hi, if the most recent atom is range-eligible (a plain
// literal, not a POSIX-class substitution per §4.6.1).
func (b *classBuilder) tryExtendRange(hi rune) bool {
	if len(b.atoms) == 0 {
		return false
	}
	last := &b.atoms[len(b.atoms)-1]
	if last.kind != atomLiteral {
		return false
	}
	last.kind = atomRange
	last.hi = hi
	last.text = ""
	return true
}

// render produces the class body text, dropping any range whose high bound
// is strictly less than its low bound (impossible range, §4.6.1).
func (b *classBuilder) render() (body string, anyRemoved bool) {
	var out strings.Builder
	for _, a := range b.atoms {
		switch a.kind {
		case atomRange:
			if a.hi < a.lo {
				anyRemoved = true
				continue
			}
			out.WriteString(escapeClassRune(a.lo))
			out.WriteByte('-')
			out.WriteString(escapeClassRune(a.hi))
		case atomRaw:
			out.WriteString(a.text)
		default:
			out.WriteString(a.text)
		}
	}
	return out.String(), anyRemoved
}

const classSpecials = `]^\-`

// escapeClassRune escapes a rune for use inside a [...] bracket expression
// body: only ] ^ - and \ are special there.
func escapeClassRune(r rune) string {
	if strings.ContainsRune(classSpecials, r) {
		return "\\" + string(r)
	}
	return string(r)
}

// impossibleClassFragment and allMatchClassFragment back §4.6.1's empty-
// class fallback rules.
func impossibleClassFragment(isBytes bool) string {
	if isBytes {
		return `[^\x00-\xff]`
	}
	return "[^\\x{0}-\\x{10ffff}]"
}

func allMatchClassFragment(isBytes bool) string {
	if isBytes {
		return `[\x00-\xff]`
	}
	return "[\\x{0}-\\x{10ffff}]"
}

// doubledOperator reports whether r is one of the bracket-expression set
// operators (&, |, ~) that must be escaped when doubled, so the emitted
// class body never contains a literal && || ~~ that the host engine might
// interpret as a set-operation token.
func doubledOperator(r rune) bool {
	return r == '&' || r == '|' || r == '~'
}
