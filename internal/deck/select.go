package deck

import (
	"strconv"
	"strings"

	"github.com/Iron-Ham/flashdeck/internal/errors"
)

// SelectIndex parses a 1-based ordinal typed by the user and returns the
// 0-based index. resource names the thing being selected ("deck", "card") in
// the returned IndexError.
func SelectIndex(input string, count int, resource string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.NewParseError(input).WithCause(err)
	}
	if n < 1 || n > count {
		return 0, errors.NewIndexError(resource, n, count)
	}
	return n - 1, nil
}
