package glob

// Split implements §4.4's TopSplitter: it scans pattern for unescaped
// top-level '|' and returns the ordered list of sub-patterns. A '|' inside a
// [...] character class or inside extended-group parentheses does not
// split. Applied only when flags.Has(SPLIT); otherwise pattern is returned
// unchanged as the sole element.
//
// This generalizes the single case the teacher handles inline (the '|'
// arm inside parse()'s extglob-group tracking) to top-of-pattern scope.
func Split(pattern string, flags Flags) []string {
	if !flags.Has(SPLIT) {
		return []string{pattern}
	}
	return topSplit(pattern)
}

func topSplit(pattern string) []string {
	runes := []rune(pattern)

	var parts []string
	var cur []rune
	depth := 0
	inClass := false
	escaped := false

	flush := func() {
		parts = append(parts, string(cur))
		cur = nil
	}

	for _, c := range runes {
		if escaped {
			cur = append(cur, c)
			escaped = false
			continue
		}

		switch {
		case c == '\\':
			cur = append(cur, c)
			escaped = true
		case c == '[' && !inClass:
			inClass = true
			cur = append(cur, c)
		case c == ']' && inClass:
			inClass = false
			cur = append(cur, c)
		case c == '(' && !inClass:
			depth++
			cur = append(cur, c)
		case c == ')' && !inClass && depth > 0:
			depth--
			cur = append(cur, c)
		case c == '|' && !inClass && depth == 0:
			flush()
		default:
			cur = append(cur, c)
		}
	}
	flush()

	return parts
}
