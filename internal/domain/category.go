package domain

// Category classifies a memo. The store accepts free text; the enumeration
// below is what the UI offers and what the API edge enforces.
type Category string

// Known memo categories
const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryIdea     Category = "idea"
	CategoryOther    Category = "other"
)

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryPersonal,
	CategoryWork,
	CategoryStudy,
	CategoryIdea,
	CategoryOther,
}

// categoryLabels maps categories to their display labels.
var categoryLabels = map[Category]string{
	CategoryPersonal: "Personal",
	CategoryWork:     "Work",
	CategoryStudy:    "Study",
	CategoryIdea:     "Idea",
	CategoryOther:    "Other",
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display label for the category. Unrecognized category
// strings fall back to the "other" label.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}
