package domain

// TokenSet is an unordered set of tokens.
type TokenSet map[string]struct{}

// NewTokenSet builds a set from the given tokens.
func NewTokenSet(tokens ...string) TokenSet {
	s := make(TokenSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts a token.
func (s TokenSet) Add(token string) { s[token] = struct{}{} }

// Contains reports whether the token is in the set.
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Union returns a new set holding the tokens of both sets.
func (s TokenSet) Union(other TokenSet) TokenSet {
	u := make(TokenSet, len(s)+len(other))
	for t := range s {
		u[t] = struct{}{}
	}
	for t := range other {
		u[t] = struct{}{}
	}
	return u
}

// Jaccard returns the Jaccard overlap of two sets. The second return is
// false when both sets are empty, i.e. there is no evidence either way.
func Jaccard(a, b TokenSet) (float64, bool) {
	if len(a) == 0 && len(b) == 0 {
		return 0, false
	}
	inter := 0
	for t := range a {
		if b.Contains(t) {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union), true
}

// Features are the surface features of one sentence reused by several
// scorers. Computed once per sentence per bundle.
type Features struct {
	CharLen    int
	TokenCount int
	Numbers    TokenSet
	URLs       TokenSet
	ASCII      TokenSet
}
