package glob

import "strings"

// Segment is one path-part produced by PathSplit (§3 "Segment record").
type Segment struct {
	Text     string
	Magic    bool
	Globstar bool
	DirOnly  bool
	Drive    bool
	// Matcher is the compiled regex for a Magic, non-Globstar segment,
	// compiled against just this segment's text; nil for literal/globstar
	// segments.
	Matcher *CompiledMatcher
}

const magicChars = "-!*?([|^{\\"

func segmentIsMagic(s string) bool {
	return strings.ContainsAny(s, magicChars)
}

// PathSplit implements §4.5: it splits pattern (post brace expansion, not
// yet regex-compiled) into ordered path segments tagged literal/magic/
// globstar/drive/dir-only, for walker consumption.
//
// This replaces the teacher's dumb slashSplit.Split in make() with the
// segment-record algorithm the spec calls for (drive detection, magic
// classification, MATCHBASE synthetic prefix).
func PathSplit(pattern string, flags Flags) ([]Segment, error) {
	windows := !UnixStyle(flags)
	rest := pattern

	var segs []Segment

	if windows {
		if drive, tail, ok := splitWindowsDrive(rest); ok {
			drive = strings.ReplaceAll(drive, `\\`, `\`)
			segs = append(segs, Segment{Text: drive, DirOnly: true, Drive: true})
			rest = tail
		} else if strings.HasPrefix(rest, `\\`) {
			segs = append(segs, Segment{Text: `\\`, DirOnly: true, Drive: true})
			rest = rest[2:]
		}
	} else if strings.HasPrefix(rest, "/") {
		segs = append(segs, Segment{Text: "/", DirOnly: true, Drive: true})
		rest = rest[1:]
	}

	sep := byte('/')
	if windows {
		sep = '\\'
	}

	parts, dirOnly := splitOnSeparator(rest, sep)
	for i, part := range parts {
		seg := Segment{Text: part, DirOnly: dirOnly[i]}
		switch {
		case part == "**" && flags.Has(GLOBSTAR):
			seg.Globstar = true
			seg.Magic = true
		case segmentIsMagic(part):
			seg.Magic = true
			cm, err := Compile([]string{part}, flags&^MATCHBASE&^SPLIT)
			if err != nil {
				return nil, err
			}
			seg.Matcher = cm
		}
		segs = append(segs, seg)
	}

	if flags.Has(MATCHBASE) {
		driveCount := 0
		if len(segs) > 0 && segs[0].Drive {
			driveCount = 1
		}
		nonDrive := segs[driveCount:]
		if len(nonDrive) == 1 && !nonDrive[0].DirOnly {
			globstarSeg := Segment{Text: "**", Globstar: true, Magic: true}
			newSegs := append([]Segment{}, segs[:driveCount]...)
			newSegs = append(newSegs, globstarSeg)
			newSegs = append(newSegs, nonDrive...)
			segs = newSegs
		}
	}

	return segs, nil
}

func splitWindowsDrive(s string) (drive, rest string, ok bool) {
	if len(s) >= 2 && isASCIILetter(s[0]) && s[1] == ':' {
		return s[:2], s[2:], true
	}
	return "", s, false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// hasPathSeparator reports whether pattern contains an unescaped, non-
// bracketed, non-grouped path separator, via the same splitOnSeparator
// pass PathSplit itself uses to decide this. MATCHBASE's root-globstar
// prefix (§3, §4.6.3) only applies to patterns for which this is false —
// bare basenames, not already path-shaped.
func hasPathSeparator(pattern string, flags Flags) bool {
	sep := byte('/')
	if !UnixStyle(flags) {
		sep = '\\'
	}
	parts, dirOnly := splitOnSeparator(pattern, sep)
	return len(parts) != 1 || dirOnly[0]
}

// splitOnSeparator splits s on every unescaped occurrence of sep (and, when
// sep is a backslash, on every escaped backslash "\\"), except
// where one lies inside a [...] class or an extended-group's parentheses
// (§4.5 step 3). dirOnly[i] is true when parts[i] was followed by a
// separator (i.e. every part but possibly the last).
func splitOnSeparator(s string, sep byte) (parts []string, dirOnly []bool) {
	runes := []rune(s)
	var cur []rune
	depth := 0
	inClass := false
	escaped := false
	endedOnSep := len(runes) == 0

	for _, c := range runes {
		if escaped {
			if c == '\\' && sep == '\\' && !inClass && depth == 0 {
				// Windows style: an escaped backslash is a separator.
				parts = append(parts, string(cur[:len(cur)-1]))
				dirOnly = append(dirOnly, true)
				cur = nil
				escaped = false
				endedOnSep = true
				continue
			}
			cur = append(cur, c)
			escaped = false
			endedOnSep = false
			continue
		}

		switch {
		case c == '\\':
			cur = append(cur, c)
			escaped = true
			endedOnSep = false
		case c == '[' && !inClass:
			inClass = true
			cur = append(cur, c)
			endedOnSep = false
		case c == ']' && inClass:
			inClass = false
			cur = append(cur, c)
			endedOnSep = false
		case c == '(' && !inClass:
			depth++
			cur = append(cur, c)
			endedOnSep = false
		case c == ')' && !inClass && depth > 0:
			depth--
			cur = append(cur, c)
			endedOnSep = false
		case !inClass && depth == 0 && c < 128 && byte(c) == sep:
			parts = append(parts, string(cur))
			dirOnly = append(dirOnly, true)
			cur = nil
			endedOnSep = true
		default:
			cur = append(cur, c)
			endedOnSep = false
		}
	}

	if !endedOnSep {
		parts = append(parts, string(cur))
		dirOnly = append(dirOnly, false)
	}

	return parts, dirOnly
}
