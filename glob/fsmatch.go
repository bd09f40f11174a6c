package glob

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dlclark/regexp2"
)

// FilesystemMatcher wraps a CompiledMatcher with the filesystem-aware
// validation of §4.8: a globstar match is only accepted if none of the
// directory components it actually spanned crosses a symlink, unless
// FOLLOW was requested. This is grounded on the teacher's pathIsInside.go,
// which does the same kind of stdlib-only Lstat walk for a narrower
// purpose.
type FilesystemMatcher struct {
	matcher *CompiledMatcher
	flags   Flags
}

// NewFilesystemMatcher builds a FilesystemMatcher over patterns, forcing
// REALPATH so the compiler emits capturing groups around every globstar
// body (see emitGlobstar) for this matcher to inspect.
func NewFilesystemMatcher(patterns []string, flags Flags) (*FilesystemMatcher, error) {
	m, err := Compile(patterns, flags|REALPATH)
	if err != nil {
		return nil, err
	}
	return &FilesystemMatcher{matcher: m, flags: flags}, nil
}

// MatchPath implements §4.8. REALPATH's existence gate runs first: path is
// resolved against the current directory if it isn't already rooted, and a
// lexists-style check (os.Lstat, not following the final symlink) must
// succeed or the path is rejected outright, mirroring the original
// implementation's "not exists -> no match" short-circuit ahead of any
// pattern evaluation. If path names an existing directory and doesn't
// already end in a separator, one is appended first so DirOnly segments
// anchor correctly.
func (fm *FilesystemMatcher) MatchPath(path string) (bool, error) {
	if !fm.pathExists(path) {
		return false, nil
	}

	subject := fm.normalizePath(path)
	cache := map[string]bool{}

	matchedPositive := false
	hasPositive := false

	for _, p := range fm.matcher.patterns {
		if !p.negate {
			hasPositive = true
		}

		match, err := p.re.FindStringMatch(subject)
		if err != nil || match == nil {
			if p.negate {
				continue
			}
			continue
		}

		ok := true
		if !fm.flags.Has(FOLLOW) && !p.negate {
			valid, verr := fm.validateGlobstarCaptures(subject, match, cache)
			if verr != nil {
				return false, verr
			}
			ok = valid
		}

		if p.negate {
			if ok {
				return false, nil
			}
			continue
		}
		if ok {
			matchedPositive = true
		}
	}

	if !hasPositive {
		return true, nil
	}
	return matchedPositive, nil
}

// pathExists implements the lexists-style gate: path is resolved against
// the process's current directory when it isn't already rooted (an
// absolute Unix path, or a drive/UNC-rooted Windows path), then probed with
// Lstat so a dangling symlink still counts as "exists" without the final
// component being followed.
func (fm *FilesystemMatcher) pathExists(path string) bool {
	resolved := path
	if !fm.isRooted(path) {
		if cwd, err := os.Getwd(); err == nil {
			resolved = filepath.Join(cwd, path)
		}
	}
	_, err := os.Lstat(resolved)
	return err == nil
}

func (fm *FilesystemMatcher) isRooted(path string) bool {
	if UnixStyle(fm.flags) {
		return strings.HasPrefix(path, "/")
	}
	if strings.HasPrefix(path, `\\`) {
		return true
	}
	if _, _, ok := splitWindowsDrive(path); ok {
		return true
	}
	return strings.HasPrefix(path, `\`) || strings.HasPrefix(path, "/")
}

func (fm *FilesystemMatcher) normalizePath(path string) string {
	sep := string(Separator(fm.flags))
	if strings.HasSuffix(path, sep) {
		return path
	}
	info, err := os.Lstat(path)
	if err == nil && info.IsDir() {
		return path + sep
	}
	return path
}

// validateGlobstarCaptures walks every non-empty capturing group in match
// (one per "**" that fired, per emitGlobstar's REALPATH branch) and
// rejects the match if any directory component inside that captured span
// is itself a symlink. Results are cached per call since the same
// ancestor directory is commonly re-tested across sibling globstar spans.
// An Lstat error other than "does not exist" is returned as is.
func (fm *FilesystemMatcher) validateGlobstarCaptures(subject string, match *regexp2.Match, cache map[string]bool) (bool, error) {
	sep := string(Separator(fm.flags))

	for i, g := range match.Groups() {
		if i == 0 || len(g.Captures) == 0 {
			continue
		}
		if g.String() == "" {
			continue
		}

		last := g.Captures[len(g.Captures)-1]
		runes := []rune(subject)
		components := strings.Split(last.String(), sep)
		// A last component that ends a non-directory subject is the matched
		// file itself, not a directory, and is not tested.
		atEnd := last.Index+last.Length == len(runes) && !strings.HasSuffix(subject, sep)

		leadingSep := strings.HasPrefix(subject, sep)
		cum := strings.Trim(string(runes[:last.Index]), sep)
		for j, part := range components {
			if part == "" || (atEnd && j == len(components)-1) {
				continue
			}
			if cum == "" {
				cum = part
			} else {
				cum = cum + sep + part
			}

			full := cum
			if leadingSep {
				full = sep + cum
			}

			isLink, cached := cache[full]
			if !cached {
				info, err := os.Lstat(full)
				if err != nil && !os.IsNotExist(err) {
					return false, err
				}
				isLink = err == nil && info.Mode()&os.ModeSymlink != 0
				cache[full] = isLink
			}

			if isLink {
				return false, nil
			}
		}
	}

	return true, nil
}
