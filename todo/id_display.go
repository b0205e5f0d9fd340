package todo

import (
	"fmt"
	"strings"

	"github.com/amonks/td/internal/ids"
)

// IDIndex answers prefix questions about the IDs of a list of todos.
type IDIndex struct {
	ids     []string
	lengths map[string]int
}

// NewIDIndex builds an IDIndex from a slice of todos.
func NewIDIndex(todos []Todo) IDIndex {
	all := make([]string, 0, len(todos))
	for _, t := range todos {
		all = append(all, t.ID)
	}
	unique := ids.NormalizeUniqueIDs(all)
	return IDIndex{ids: unique, lengths: ids.UniquePrefixLengths(unique)}
}

// Resolve maps a full ID or a unique, case-insensitive prefix to the
// matching ID.
func (index IDIndex) Resolve(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrTodoNotFound)
	}

	match, found, ambiguous := ids.MatchPrefix(index.ids, prefix)
	switch {
	case ambiguous:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousTodoIDPrefix, prefix)
	case !found:
		return "", fmt.Errorf("%w: %s", ErrTodoNotFound, prefix)
	}
	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID,
// keyed by lowercased ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return index.lengths
}

// Short returns how id is shown in lists and messages: the usual short
// form, lengthened when needed to stay unambiguous.
func (index IDIndex) Short(id string) string {
	return ids.Short(id, index.lengths[strings.ToLower(id)])
}
