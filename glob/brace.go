package glob

// Adapted from the teacher's pkg/minimatch/brace_expansion.go, itself a
// port of the npm package brace-expansion (MIT License). Implements §4.3's
// BraceExpander collaborator contract: given one pattern, yields >=1
// expanded patterns with brace ranges/alternatives expanded, order-stable,
// preserving backslash escapes.

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// BraceExpander yields zero or more expansions of one pattern. The default
// implementation performs standard shell brace expansion ({a,b,c},
// {1..5}); an alternate expander can be substituted for testing or for a
// caller that wants different range/alternative semantics.
type BraceExpander interface {
	Expand(pattern string) []string
}

type defaultBraceExpander struct{}

func (defaultBraceExpander) Expand(pattern string) []string {
	return braceExpansion(pattern)
}

// DefaultBraceExpander is the BraceExpander used when Flags.Has(BRACE) and
// no alternate expander was configured.
var DefaultBraceExpander BraceExpander = defaultBraceExpander{}

var (
	escSlash  = "\000SLASH" + strconv.Itoa(int(rand.Int31())) + "\000"
	escOpen   = "\000OPEN" + strconv.Itoa(int(rand.Int31())) + "\000"
	escClose  = "\000CLOSE" + strconv.Itoa(int(rand.Int31())) + "\000"
	escComma  = "\000COMMA" + strconv.Itoa(int(rand.Int31())) + "\000"
	escPeriod = "\000PERIOD" + strconv.Itoa(int(rand.Int31())) + "\000"
)

func braceExpansion(str string) []string {
	result := []string{}
	if len(str) == 0 {
		return result
	}

	// Anything starting with {} keeps the first two bytes verbatim at the
	// top level only, matching Bash 4.3's quirky handling of that case.
	if strings.HasPrefix(str, "{}") {
		str = "\\{\\}" + str[2:]
	}

	for _, item := range braceExpand(escapeBraces(str), true) {
		result = append(result, unescapeBraces(item))
	}

	return result
}

func escapeBraces(str string) string {
	str = strings.Join(strings.Split(str, "\\\\"), escSlash)
	str = strings.Join(strings.Split(str, "\\{"), escOpen)
	str = strings.Join(strings.Split(str, "\\}"), escClose)
	str = strings.Join(strings.Split(str, "\\,"), escComma)
	str = strings.Join(strings.Split(str, "\\."), escPeriod)

	return str
}

func unescapeBraces(str string) string {
	str = strings.Join(strings.Split(str, escSlash), "\\")
	str = strings.Join(strings.Split(str, escOpen), "{")
	str = strings.Join(strings.Split(str, escClose), "}")
	str = strings.Join(strings.Split(str, escComma), ",")
	str = strings.Join(strings.Split(str, escPeriod), ".")

	return str
}

// parseCommaParts is basically str.Split(",") but it treats a nested braced
// section ({b,c}) as a single member, e.g. {a,{b,c},d}.
func parseCommaParts(str string) []string {
	if len(str) == 0 {
		return []string{""}
	}

	m, err := balancedMatch("{", "}", str)
	if err != nil {
		return strings.Split(str, ",")
	}

	parts := []string{}

	p := strings.Split(m.Pre, ",")
	p[len(p)-1] += "{" + m.Body + "}"
	postParts := parseCommaParts(m.Post)
	if len(m.Post) != 0 {
		var first string
		first, postParts = postParts[0], postParts[1:]

		p[len(p)-1] += first
		p = append(p, postParts...)
	}

	return append(parts, p...)
}

func numeric(str string) int {
	i, err := strconv.Atoi(str)
	if err == nil {
		return i
	}
	return int(str[0])
}

func embrace(str string) string {
	return "{" + str + "}"
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return 0 - a
	}
	return a
}

var paddedRE = regexp.MustCompile(`^-?0\d`)

func isPadded(el string) bool {
	return paddedRE.MatchString(el)
}

func lte(i, y int) bool { return i <= y }
func gte(i, y int) bool { return i >= y }

var (
	numericSequenceRE = regexp.MustCompile(`^-?\d+\.\.-?\d+(?:\.\.-?\d+)?$`)
	alphaSequenceRE   = regexp.MustCompile(`^[a-zA-Z]\.\.[a-zA-Z](?:\.\.-?\d+)?$`)
	commaTailRE       = regexp.MustCompile(`,.*\}`)
)

func braceExpand(str string, isTop bool) []string {
	expansions := []string{}

	m, err := balancedMatch("{", "}", str)

	if err != nil || strings.HasSuffix(m.Pre, "$") {
		return []string{str}
	}

	isNumericSequence := numericSequenceRE.MatchString(m.Body)
	isAlphaSequence := alphaSequenceRE.MatchString(m.Body)
	isSequence := isNumericSequence || isAlphaSequence
	isOptions := strings.Contains(m.Body, ",")

	if !isSequence && !isOptions {
		// {a},b} -- not a valid set on its own, but might complete one
		// together with what follows.
		if commaTailRE.MatchString(m.Post) {
			str = m.Pre + "{" + m.Body + escClose + m.Post
			return braceExpand(str, false)
		}
		return []string{str}
	}

	var n []string

	if isSequence {
		n = strings.Split(m.Body, "..")
	} else {
		n = parseCommaParts(m.Body)
		if len(n) == 1 {
			// x{{a,b}}y ==> x{a}y x{b}y
			nv := n[0]
			n = []string{}
			for _, item := range braceExpand(nv, false) {
				n = append(n, embrace(item))
			}

			if len(n) == 1 {
				var post []string
				if len(m.Post) != 0 {
					post = braceExpand(m.Post, false)
				} else {
					post = []string{""}
				}

				vals := []string{}
				for _, item := range post {
					vals = append(vals, m.Pre+n[0]+item)
				}

				return vals
			}
		}
	}

	pre := m.Pre
	var post []string
	if len(m.Post) != 0 {
		post = braceExpand(m.Post, false)
	} else {
		post = []string{""}
	}

	N := []string{}

	if isSequence {
		x := numeric(n[0])
		y := numeric(n[1])
		width := minInt(len(n[0]), len(n[1]))

		incr := 1
		if len(n) == 3 {
			incr = absInt(numeric(n[2]))
		}

		test := lte
		reverse := y < x
		if reverse {
			incr *= -1
			test = gte
		}

		pad := false
		for _, item := range n {
			pad = pad || isPadded(item)
		}

		for i := x; test(i, y); i += incr {
			var c string
			if isAlphaSequence {
				c = string(rune(i))
				if c == "\\" {
					c = ""
				}
			} else {
				c = strconv.Itoa(i)
				if pad {
					need := width - len(c)
					if need > 0 {
						if i < 0 {
							c = "-" + strings.Repeat("0", need-1) + c
						} else {
							c = strings.Repeat("0", need) + c
						}
					}
				}
			}

			N = append(N, c)
		}
	} else {
		for _, item := range n {
			N = append(N, braceExpand(item, false)...)
		}
	}

	for _, nItem := range N {
		for _, postItem := range post {
			expansion := pre + nItem + postItem
			if isTop || isSequence || len(expansion) != 0 {
				expansions = append(expansions, expansion)
			}
		}
	}

	return expansions
}
