package evaluation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	evaluationerrors "go-personnel/internal/evaluation/errors"
)

// MaxCUIPAgeYears is how many years after issue a certification stays current.
const MaxCUIPAgeYears = 3

var cuipPattern = regexp.MustCompile(`^(\d{2})([A-Z]{5})(\d{8})$`)

// CUIP is a parsed certification code: two-digit issue year, five-letter
// agency code and eight-digit sequence.
type CUIP struct {
	Raw      string
	Year     int
	Agency   string
	Sequence string
}

func ParseCUIP(s string) (CUIP, error) {
	raw := strings.TrimSpace(s)
	m := cuipPattern.FindStringSubmatch(raw)
	if m == nil {
		return CUIP{}, evaluationerrors.ErrInvalidCUIP
	}
	year, _ := strconv.Atoi(m[1])
	return CUIP{Raw: raw, Year: year, Agency: m[2], Sequence: m[3]}, nil
}

// IsCurrent compares two-digit years only, so a code issued in a later
// two-digit year than now counts as current.
func (c CUIP) IsCurrent(now time.Time) bool {
	return now.Year()%100-c.Year <= MaxCUIPAgeYears
}

// Validate is the strict form of IsCurrent.
func (c CUIP) Validate(now time.Time) error {
	if !c.IsCurrent(now) {
		return evaluationerrors.ErrCUIPExpired
	}
	return nil
}
