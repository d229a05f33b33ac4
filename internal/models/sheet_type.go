package models

// Sheet types. A room's sheet type is fixed at creation and governs
// auto-population and transfer semantics.
const (
	SheetWalkthrough = "walkthrough"
	SheetChecklist   = "checklist"
	SheetFFE         = "ffe"
)

// ValidSheetType reports whether s is a known sheet type.
func ValidSheetType(s string) bool {
	switch s {
	case SheetWalkthrough, SheetChecklist, SheetFFE:
		return true
	}
	return false
}
