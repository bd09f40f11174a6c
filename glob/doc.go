// Package glob compiles shell-style wildcard patterns — including brace
// expansion, extended alternation groups, POSIX character classes, globstar,
// and negation — into compiled regular-expression matchers, and applies
// those matchers to real filesystem paths with symlink-aware globstar
// semantics.
//
// The package is split into small collaborators mirroring the pattern's
// natural decomposition: CharStream walks the decoded pattern text, Split
// and PathSplit classify it into sub-patterns and path segments, the
// unexported pattern compiler turns one sub-pattern into a regex source
// string, and CompiledMatcher/FilesystemMatcher apply the result.
package glob
