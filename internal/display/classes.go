package display

import "strings"

// ClassList is an ordered set of class tokens, like an element's class attribute.
// The zero value is an empty list ready to use.
type ClassList struct {
	tokens []string
}

// ParseClassList splits a class attribute on whitespace, dropping duplicates.
func ParseClassList(attr string) ClassList {
	var cl ClassList
	cl.Add(strings.Fields(attr)...)
	return cl
}

func (cl *ClassList) Add(tokens ...string) {
	for _, tok := range tokens {
		if tok == "" || cl.Contains(tok) {
			continue
		}
		cl.tokens = append(cl.tokens, tok)
	}
}

func (cl *ClassList) Remove(tokens ...string) {
	if len(tokens) == 0 || len(cl.tokens) == 0 {
		return
	}
	kept := cl.tokens[:0]
	for _, existing := range cl.tokens {
		if !containsToken(tokens, existing) {
			kept = append(kept, existing)
		}
	}
	cl.tokens = kept
}

// Toggle flips a token and reports whether it is now present.
func (cl *ClassList) Toggle(token string) bool {
	if cl.Contains(token) {
		cl.Remove(token)
		return false
	}
	cl.Add(token)
	return true
}

func (cl ClassList) Contains(token string) bool {
	return containsToken(cl.tokens, token)
}

func (cl ClassList) Tokens() []string {
	out := make([]string, len(cl.tokens))
	copy(out, cl.tokens)
	return out
}

func (cl ClassList) Len() int {
	return len(cl.tokens)
}

// String renders the list as a class attribute value.
func (cl ClassList) String() string {
	return strings.Join(cl.tokens, " ")
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
