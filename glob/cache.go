package glob

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// compileCacheSize bounds the process-wide compiled-pattern cache (§5).
const compileCacheSize = 256

var compileCache, _ = lru.New[string, *CompiledMatcher](compileCacheSize)

// cacheKey builds the deterministic lookup key for one (patterns, flags,
// byte-mode) tuple. Pattern order is significant (an OR-matcher over
// [a b] differs from [b a] only in iteration order, never in semantics,
// but keeping order in the key costs nothing and avoids ever having to
// prove that claim).
func cacheKey(patterns []string, flags Flags, isBytes bool) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(flags), 16))
	sb.WriteByte('|')
	if isBytes {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('t')
	}
	for _, p := range patterns {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(len(p)))
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	return sb.String()
}

func cacheLookup(key string) (*CompiledMatcher, bool) {
	return compileCache.Get(key)
}

func cacheStore(key string, m *CompiledMatcher) {
	compileCache.Add(key, m)
}
