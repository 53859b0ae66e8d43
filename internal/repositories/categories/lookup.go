package categories

import (
	"strings"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

// NameIndex maps lowercased category names to ids. With duplicate names the
// first category in list order wins.
type NameIndex map[string]int64

func NewNameIndex(list []models.Category) NameIndex {
	idx := make(NameIndex, len(list))
	for _, c := range list {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if _, ok := idx[key]; !ok {
			idx[key] = c.ID
		}
	}
	return idx
}

// Find looks a name up case-insensitively.
func (idx NameIndex) Find(name string) (int64, bool) {
	id, ok := idx[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}
