package glob

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// compiledPattern is one regex built from one (possibly brace- and
// top-split-expanded) sub-pattern.
type compiledPattern struct {
	source string
	re     *regexp2.Regexp
	negate bool
}

// CompiledMatcher is the immutable product of Compile (§6): a set of
// compiled sub-patterns plus the flags that produced them. It is safe for
// concurrent use by multiple goroutines, since matching never mutates it.
type CompiledMatcher struct {
	flags    Flags
	isBytes  bool
	patterns []compiledPattern
}

// Translate implements §6's stand-alone translation entry point: given one
// pattern, it returns the regex source it compiles to, without building a
// full matcher. Useful for callers embedding the translation in a larger
// expression, or for tests asserting on the exact regex shape.
func Translate(pattern string, flags Flags) (string, error) {
	flags |= TRANSLATE
	body, negate := stripNegation(pattern, flags)

	raw, err := maybeRawChars(body, flags)
	if err != nil {
		return "", err
	}
	matchBase := flags.Has(MATCHBASE) && !hasPathSeparator(raw, flags)
	return compilePattern(raw, flags, negate, false, matchBase)
}

// Compile implements §6's Compile: it builds a CompiledMatcher over one or
// more patterns, each independently brace-expanded (if BRACE) and
// top-split on unescaped '|' (if SPLIT), caching the result in the
// process-wide LRU (§5).
func Compile(patterns []string, flags Flags) (*CompiledMatcher, error) {
	return compile(patterns, flags, false)
}

// CompileBytes is Compile's RAWCHARS-forced counterpart (§4.6.3): each
// pattern is raw bytes rather than a Unicode string, decoded as Latin-1
// before brace expansion/top-splitting/compilation so every byte value
// (including 0x80-0xFF) becomes exactly one code unit, per §3's "byte
// patterns are decoded as Latin-1 for internal processing" rule.
func CompileBytes(patterns [][]byte, flags Flags) (*CompiledMatcher, error) {
	decoded := make([]string, len(patterns))
	for i, p := range patterns {
		s, err := decodeLatin1(p)
		if err != nil {
			return nil, errors.Wrapf(err, "glob: decoding byte pattern %d", i)
		}
		decoded[i] = s
	}
	return compile(decoded, flags|RAWCHARS, true)
}

func compile(patterns []string, flags Flags, isBytes bool) (*CompiledMatcher, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPattern
	}

	key := cacheKey(patterns, flags, isBytes)
	if m, ok := cacheLookup(key); ok {
		return m, nil
	}

	var braced []string
	for _, p := range patterns {
		if flags.Has(BRACE) {
			braced = append(braced, DefaultBraceExpander.Expand(p)...)
		} else {
			braced = append(braced, p)
		}
	}

	var expanded []string
	for _, p := range braced {
		expanded = append(expanded, Split(p, flags)...)
	}

	m := &CompiledMatcher{flags: flags, isBytes: isBytes}
	for _, p := range expanded {
		body, negate := stripNegation(p, flags)

		raw, err := maybeRawChars(body, flags)
		if err != nil {
			return nil, err
		}

		matchBase := flags.Has(MATCHBASE) && !hasPathSeparator(raw, flags)
		src, err := compilePattern(raw, flags, negate, isBytes, matchBase)
		if err != nil {
			return nil, err
		}

		// §4.6.3's final-assembly step 4: byte patterns encode the emitted
		// regex back to Latin-1. Round-tripping it back through
		// decodeLatin1 also doubles as a purity check — any stray
		// Unicode fragment a byte-mode class table entry should never
		// have produced fails to encode here instead of silently
		// matching wrong.
		if isBytes {
			encoded, eerr := encodeLatin1(src)
			if eerr != nil {
				return nil, errors.Wrapf(eerr, "glob: encoding compiled pattern %q to latin1", p)
			}
			src, err = decodeLatin1(encoded)
			if err != nil {
				return nil, errors.Wrapf(err, "glob: re-decoding latin1-encoded pattern %q", p)
			}
		}

		re, err := regexp2.Compile(src, regexp2.None)
		if err != nil {
			return nil, errors.Wrapf(err, "glob: compiling pattern %q", p)
		}

		m.patterns = append(m.patterns, compiledPattern{source: src, re: re, negate: negate})
		pkgLogger.Debugf("compiled %q -> %s", p, src)
	}

	cacheStore(key, m)
	return m, nil
}

// stripNegation implements §4.6.3's leading-negation rule: a pattern
// beginning with the negation sigil ('!', or '-' under MINUSNEGATE) is a
// negated pattern, with the sigil consumed before compilation.
func stripNegation(pattern string, flags Flags) (string, bool) {
	if !flags.Has(NEGATE) {
		return pattern, false
	}
	sigil := byte('!')
	if flags.Has(MINUSNEGATE) {
		sigil = '-'
	}
	if len(pattern) > 0 && pattern[0] == sigil {
		return pattern[1:], true
	}
	return pattern, false
}

// maybeRawChars applies RAWCHARS' \n / \t / \xHH / \uHHHH escape
// interpretation ahead of compilation (§4.6.3): once interpreted, the
// compiler sees only the literal bytes/runes those escapes named, not the
// escape syntax itself. \N{NAME} Unicode character-name escapes are not
// interpreted (see DESIGN.md) — a literal \N{...} passes through unchanged.
func maybeRawChars(pattern string, flags Flags) (string, error) {
	if !flags.Has(RAWCHARS) {
		return pattern, nil
	}
	return interpretRawEscapes(pattern), nil
}

func interpretRawEscapes(pattern string) string {
	var sb strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i+1 >= len(runes) {
			sb.WriteRune(r)
			continue
		}

		switch runes[i+1] {
		case 'n':
			sb.WriteRune('\n')
			i++
			continue
		case 't':
			sb.WriteRune('\t')
			i++
			continue
		case 'x':
			if i+3 < len(runes) {
				if v, ok := hexValue(runes[i+2], runes[i+3]); ok {
					sb.WriteRune(rune(v))
					i += 3
					continue
				}
			}
		case 'u':
			if i+5 < len(runes) {
				hi, ok1 := hexValue(runes[i+2], runes[i+3])
				lo, ok2 := hexValue(runes[i+4], runes[i+5])
				if ok1 && ok2 {
					sb.WriteRune(rune(hi<<8 | lo))
					i += 5
					continue
				}
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func hexValue(hi, lo rune) (int, bool) {
	h, ok1 := hexDigit(hi)
	l, ok2 := hexDigit(lo)
	if !ok1 || !ok2 {
		return 0, false
	}
	return h<<4 | l, true
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// Match implements §6's Match: path matches if it matches at least one
// non-negated compiled sub-pattern and no negated sub-pattern fires
// (§4.7's OR-of-positives / AND-NOT-negations combination rule). A matcher
// made up entirely of negated patterns matches everything the negations
// don't exclude.
func (m *CompiledMatcher) Match(path string) bool {
	return m.matchString(path)
}

// MatchBytes matches a raw byte string against a matcher built with
// CompileBytes. Bytes are decoded as Latin-1 before matching so that every
// byte value maps to exactly one rune, preserving a byte-for-byte
// correspondence with the compiled pattern's class ranges.
func (m *CompiledMatcher) MatchBytes(b []byte) (bool, error) {
	subject, err := decodeLatin1(b)
	if err != nil {
		return false, errors.Wrap(err, "glob: decoding subject as latin1")
	}
	return m.matchString(subject), nil
}

func (m *CompiledMatcher) matchString(subject string) bool {
	matchedPositive := false
	hasPositive := false

	for _, p := range m.patterns {
		if !p.negate {
			hasPositive = true
		}

		ok, err := p.re.MatchString(subject)
		if err != nil {
			continue
		}

		if p.negate {
			if ok {
				return false
			}
			continue
		}
		if ok {
			matchedPositive = true
		}
	}

	if !hasPositive {
		return true
	}
	return matchedPositive
}

// key returns the deterministic string that backs this matcher's
// structural identity: the compiled regex sources plus the flags that
// affect matching semantics but aren't already baked into the source text.
func (m *CompiledMatcher) key() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatBool(m.isBytes))
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatUint(uint64(m.flags), 16))
	for _, p := range m.patterns {
		sb.WriteByte('|')
		sb.WriteString(p.source)
	}
	return sb.String()
}

// Equal implements structural equality (§6): two CompiledMatchers are
// equal iff built from the same effective regex sources under the same
// mode flags, regardless of which Compile call produced them.
func (m *CompiledMatcher) Equal(other *CompiledMatcher) bool {
	if other == nil {
		return false
	}
	return m.key() == other.key()
}

// Hash is a stable hash of the matcher's structural identity, suitable as
// a map key or in a hash-consing table.
func (m *CompiledMatcher) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(m.key()))
	return h.Sum64()
}
