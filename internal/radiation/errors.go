package radiation

import "fmt"

// InvalidInputError reports a malformed dataset: wrong series length,
// bad month labels or non-finite values.
type InvalidInputError struct {
	Field string
	Msg   string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Msg
	}
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Msg)
}

// DomainError reports a computation that is undefined for the given inputs,
// such as a zero sunshine duration or a zero chart scale.
type DomainError struct {
	Op    string
	Month string
	Msg   string
}

func (e *DomainError) Error() string {
	if e.Month == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("%s (%s): %s", e.Op, e.Month, e.Msg)
}
