package record

import (
	"strconv"
	"strings"
	"time"

	recorderrors "go-personnel/internal/record/errors"
	"go-personnel/internal/shared/apperror"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD form value.
func ParseDate(field, value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, apperror.InvalidField(field)
	}
	return Date{t}, nil
}

// ParseOptionalDate returns nil for a blank value.
func ParseOptionalDate(field, value string) (*Date, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func ParsePersonalID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id <= 0 {
		return 0, recorderrors.ErrInvalidPersonalID
	}
	return id, nil
}

func ParseRecordID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id <= 0 {
		return 0, recorderrors.ErrInvalidRecordID
	}
	return id, nil
}

// Optional trims a form value and maps blank to nil.
func Optional(value string) *string {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	return &v
}
