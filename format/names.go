package format

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type nameToken struct {
	token string
	id    ID
}

// tokenIndex holds every name token sorted longest first, ties broken by
// ascending lexical order.
var tokenIndex = buildTokenIndex()

func buildTokenIndex() []nameToken {
	var index []nameToken
	for i := range registry {
		for _, tok := range registry[i].Tokens {
			index = append(index, nameToken{token: strings.ToLower(tok), id: ID(i)})
		}
	}
	slices.SortStableFunc(index, func(a, b nameToken) int {
		if c := cmp.Compare(len(b.token), len(a.token)); c != 0 {
			return c
		}
		return strings.Compare(a.token, b.token)
	})
	return index
}

// FindByNameToken matches text case-insensitively against the name tokens of
// every descriptor and returns the id owning the longest matching token.
// Tokens overlap ("yv12" is inside "yv1210"), so the scan runs longest first.
func FindByNameToken(text string) (ID, error) {
	lower := strings.ToLower(text)
	for _, nt := range tokenIndex {
		if strings.Contains(lower, nt.token) {
			return nt.id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNoMatch, text)
}
