package glob

// Adapted from the teacher's pkg/minimatch/balanced.go, itself a port of
// the npm package balanced-match (MIT License). Finds the outermost
// matching pair of delimiters in a string; used by braceExpansion below to
// locate the {...} body to expand next.

import (
	"strings"

	"github.com/pkg/errors"
)

// balancedMatchResult describes the outermost prefix/suffix delimited
// region found in a string.
type balancedMatchResult struct {
	Start int
	End   int
	Pre   string
	Body  string
	Post  string
}

// errNoBalancedMatch is returned when prefix/suffix have no balanced
// occurrence in str.
var errNoBalancedMatch = errors.New("glob: no balanced match found")

func balancedMatch(prefix, suffix, str string) (balancedMatchResult, error) {
	rng := balancedMatchRange(prefix, suffix, str)
	if rng == nil {
		return balancedMatchResult{}, errNoBalancedMatch
	}

	start := rng[0]
	end := rng[1]

	result := balancedMatchResult{
		Start: start,
		End:   end,
		Pre:   str[:start],
	}

	if start+len(prefix) > end {
		result.Body = ""
	} else {
		result.Body = str[start+len(prefix) : end]
	}
	if end+len(suffix) > len(str) {
		result.Post = ""
	} else {
		result.Post = str[end+len(suffix):]
	}

	return result, nil
}

func indexOfFrom(str, substr string, offset int) int {
	value := strings.Index(str[offset:], substr)
	if value < 0 {
		return value
	}
	return value + offset
}

func balancedMatchRange(a, b, str string) *[2]int {
	ai := indexOfFrom(str, a, 0)
	bi := indexOfFrom(str, b, ai+1)
	i := ai

	var result *[2]int

	if ai >= 0 && bi > 0 {
		begs := make([]int, 0)
		left := len(str)
		right := 0

		for i >= 0 && result == nil {
			if i == ai {
				begs = append(begs, i)
				ai = indexOfFrom(str, a, i+1)
			} else if len(begs) == 1 {
				result = &[2]int{begs[0], bi}
				begs = make([]int, 0)
			} else {
				var beg int
				beg, begs = begs[len(begs)-1], begs[:len(begs)-1]

				if beg < left {
					left = beg
					right = bi
				}

				bi = indexOfFrom(str, b, i+1)
			}

			if ai < bi && ai >= 0 {
				i = ai
			} else {
				i = bi
			}
		}

		if len(begs) != 0 {
			result = &[2]int{left, right}
		}
	}

	return result
}
