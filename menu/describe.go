package menu

import (
	"fmt"
	"strings"
)

// Describe formats one thali as a display line:
//
//	RAJASTHANI THALI (Veg) - Items: dal, churma - Rs.250.00
//
// It returns "" unless v passes Parse.
func Describe(v any) string {
	t, err := Parse(v)
	if err != nil {
		return ""
	}

	vegType := "Non-Veg"
	if t.IsVeg {
		vegType = "Veg"
	}

	return fmt.Sprintf("%s (%s) - Items: %s - Rs.%s",
		upper(t.Name), vegType, strings.Join(t.Items, ", "), toFixed2(t.Price))
}
