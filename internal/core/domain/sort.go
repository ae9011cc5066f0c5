package domain

import (
	"sort"
	"strings"
)

// SortByScheduledDate orders check-ins ascending by scheduled date, breaking
// ties by id so the order is stable across stores.
func SortByScheduledDate(checkIns []CheckIn) {
	sort.SliceStable(checkIns, func(i, j int) bool {
		a, b := checkIns[i].ScheduledDate().Time(), checkIns[j].ScheduledDate().Time()
		if a.Equal(b) {
			return checkIns[i].ID() < checkIns[j].ID()
		}
		return a.Before(b)
	})
}

// SortContactsByName orders contacts case-insensitively by name, then id.
func SortContactsByName(contacts []Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		return lessByName(contacts[i].Name, contacts[j].Name, string(contacts[i].ID), string(contacts[j].ID))
	})
}

// SortCategoriesByName orders categories case-insensitively by name, then id.
func SortCategoriesByName(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return lessByName(categories[i].Name, categories[j].Name, string(categories[i].ID), string(categories[j].ID))
	})
}

func lessByName(nameA, nameB, idA, idB string) bool {
	a, b := strings.ToLower(nameA), strings.ToLower(nameB)
	if a == b {
		return idA < idB
	}
	return a < b
}
