package handlers

import (
	"bytes"
	"fmt"
	"strconv"
)

// Amount числовое поле формы: принимает JSON число или строку как есть.
// Разбор и проверка значения остаются за расчётом черновика.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*a = ""
		return nil
	case b[0] == '"':
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		*a = Amount(s)
		return nil
	default:
		if _, err := strconv.ParseFloat(string(b), 64); err != nil {
			return fmt.Errorf("amount: invalid number %s", b)
		}
		*a = Amount(b)
		return nil
	}
}

func (a Amount) String() string {
	return string(a)
}
