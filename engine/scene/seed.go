package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultSeed is the world seed used when none is given.
const DefaultSeed uint64 = 0xDEADBEEF

// ErrInvalidSeed is returned when a seed string is not 1 to 16 hexadecimal digits.
var ErrInvalidSeed = errors.New("invalid seed")

// ParseSeed parses a world seed from hexadecimal text. Surrounding whitespace is ignored;
// sign and 0x prefixes are not accepted.
//
// Parameters:
//   - s: 1 to 16 hexadecimal digits, either case
//
// Returns:
//   - uint64: the parsed seed
//   - error: wraps ErrInvalidSeed when s is empty, too long or not hexadecimal
func ParseSeed(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidSeed)
	}
	if len(s) > 16 {
		return 0, fmt.Errorf("%w: %q is longer than 16 hex digits", ErrInvalidSeed, s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidSeed, s, err)
	}
	return v, nil
}

// FormatSeed renders a seed as 16 upper-case, zero-padded hexadecimal digits.
func FormatSeed(seed uint64) string {
	return fmt.Sprintf("%016X", seed)
}
