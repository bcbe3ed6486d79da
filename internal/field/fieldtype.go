package field

import "fmt"

// FieldType selects the physical quantity a kernel returns: flux density
// B (tesla), field strength H (A/m), magnetization M (A/m) or
// polarization J (tesla). It applies to a whole call, not per instance.
type FieldType int

const (
	FieldB FieldType = iota
	FieldH
	FieldM
	FieldJ
)

func (ft FieldType) String() string {
	switch ft {
	case FieldB:
		return "B"
	case FieldH:
		return "H"
	case FieldM:
		return "M"
	case FieldJ:
		return "J"
	}
	return fmt.Sprintf("FieldType(%d)", int(ft))
}

// ParseFieldType maps the user-facing selector string onto the enum.
func ParseFieldType(s string) (FieldType, error) {
	switch s {
	case "B":
		return FieldB, nil
	case "H":
		return FieldH, nil
	case "M":
		return FieldM, nil
	case "J":
		return FieldJ, nil
	}
	return 0, fmt.Errorf("field type must be one of ('B', 'H', 'M', 'J'), got %q", s)
}

// checkFieldType is the shared validation gate; every kernel calls it
// before doing any numeric work.
func checkFieldType(ft FieldType) error {
	if ft < FieldB || ft > FieldJ {
		return fmt.Errorf("field type must be one of ('B', 'H', 'M', 'J'), got %s", ft)
	}
	return nil
}

// checkLengths enforces the co-indexed batch contract: every parameter
// array must match the observer count.
func checkLengths(n int, params ...batchParam) error {
	for _, p := range params {
		if p.len != n {
			return fmt.Errorf("batch length mismatch: %d observers but %d %s entries", n, p.len, p.name)
		}
	}
	return nil
}

type batchParam struct {
	name string
	len  int
}
