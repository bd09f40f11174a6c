package glob

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// decodeLatin1 and encodeLatin1 back §4.6.3's byte-pattern path: RAWCHARS
// patterns are matched against arbitrary bytes, which this package
// represents internally as a string of runes in the ISO-8859-1 range so the
// same CharStream/regexp2 machinery used for text patterns can be reused
// unchanged for bytes.
func decodeLatin1(b []byte) (string, error) {
	s, err := charmap.ISO8859_1.NewDecoder().String(string(b))
	if err != nil {
		return "", errors.Wrap(err, "glob: decoding byte pattern")
	}
	return s, nil
}

func encodeLatin1(s string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, errors.Wrap(err, "glob: encoding byte pattern")
	}
	return []byte(out), nil
}
