package sim

import (
	"strings"
)

// Named describes an object that has a hierarchical name, such as
// "Device.Cell[3]".
type Named interface {
	Name() string
}

// NameMustBeValid panics if the name does not follow the naming convention.
// A name is a dot-separated list of elements. Each element starts with a
// capital letter, may end with one or more integer indices in brackets, and
// must not contain underscores, dashes or quotes.
func NameMustBeValid(name string) {
	for _, elem := range strings.Split(name, ".") {
		msg := elemProblem(elem)
		if msg != "" {
			panic("Name " + name + " is not valid: " + msg)
		}
	}
}

func elemProblem(elem string) string {
	base, indices, _ := strings.Cut(elem, "[")
	if base == "" {
		return "name element must not be empty"
	}

	if base[0] < 'A' || base[0] > 'Z' {
		return "name element must start with a capital letter"
	}

	if strings.ContainsAny(base, "_\"'-]") {
		return "name element contains an invalid character"
	}

	if indices == "" {
		return ""
	}

	for _, idx := range strings.Split(indices, "[") {
		digits, ok := strings.CutSuffix(idx, "]")
		if !ok || digits == "" || strings.Trim(digits, "0123456789") != "" {
			return "name index must be an integer in brackets"
		}
	}

	return ""
}
