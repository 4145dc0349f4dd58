package clsx

import "strings"

// linearLimit is the size up to which token lookups scan a slice instead
// of hashing.
const linearLimit = 8

// isSpace reports whether c separates class names (HTML's ASCII whitespace).
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// nextToken returns the first token of s starting at or after offset i,
// along with the offset just past it. tok is empty once s is exhausted.
func nextToken(s string, i int) (tok string, next int) {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	return s[start:i], i
}

// hasSpace reports whether s contains any whitespace.
func hasSpace(s string) bool {
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			return true
		}
	}
	return false
}

// canonical reports whether s is already a single-space separated list of
// distinct tokens with no surrounding whitespace, i.e. whether resolving it
// would return it unchanged.
func canonical(s string) bool {
	if s == "" || isSpace(s[0]) || isSpace(s[len(s)-1]) {
		return false
	}
	tokens := 1
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			if s[i-1] == ' ' {
				return false
			}
			tokens++
			continue
		}
		if isSpace(c) {
			return false
		}
	}
	return tokens == 1 || !hasDuplicate(s, tokens)
}

// hasDuplicate reports whether s, holding n tokens, repeats one of them.
func hasDuplicate(s string, n int) bool {
	if n <= linearLimit {
		var buf [linearLimit]string
		seen := buf[:0]
		for tok, i := nextToken(s, 0); tok != ""; tok, i = nextToken(s, i) {
			for _, t := range seen {
				if t == tok {
					return true
				}
			}
			seen = append(seen, tok)
		}
		return false
	}

	seen := make(map[string]struct{}, n)
	for tok, i := nextToken(s, 0); tok != ""; tok, i = nextToken(s, i) {
		if _, ok := seen[tok]; ok {
			return true
		}
		seen[tok] = struct{}{}
	}
	return false
}

// normalize resolves a single string: absent when blank, s itself when
// already canonical, otherwise its deduplicated tokens.
func normalize(s string) (string, bool) {
	if canonical(s) {
		return s, true
	}
	var set tokenSet
	set.addString(s)
	return set.join()
}

// tokenSet is an insertion-ordered set of tokens. The hash index is only
// built once the set outgrows linearLimit.
type tokenSet struct {
	order []string
	index map[string]struct{}
}

func (s *tokenSet) has(tok string) bool {
	if s.index != nil {
		_, ok := s.index[tok]
		return ok
	}
	for _, t := range s.order {
		if t == tok {
			return true
		}
	}
	return false
}

// add inserts tok unless it is already present. tok must be a token.
func (s *tokenSet) add(tok string) {
	if s.has(tok) {
		return
	}
	s.order = append(s.order, tok)
	if s.index != nil {
		s.index[tok] = struct{}{}
		return
	}
	if len(s.order) > linearLimit {
		s.index = make(map[string]struct{}, 2*len(s.order))
		for _, t := range s.order {
			s.index[t] = struct{}{}
		}
	}
}

// addString inserts every token of str in order.
func (s *tokenSet) addString(str string) {
	for tok, i := nextToken(str, 0); tok != ""; tok, i = nextToken(str, i) {
		s.add(tok)
	}
}

func (s *tokenSet) len() int {
	return len(s.order)
}

// join renders the set, reporting false when it is empty.
func (s *tokenSet) join() (string, bool) {
	switch len(s.order) {
	case 0:
		return "", false
	case 1:
		return s.order[0], true
	}
	return strings.Join(s.order, " "), true
}
