package naming

import (
	"strconv"
	"strings"
)

// A Name is a hierarchical name made of dot-separated tokens, for example
// "Ruby.L1Cache[2].TriggerQueue".
type Name struct {
	Tokens []Token
}

// Token is one element of a Name.
type Token struct {
	ElemName string
	Index    []int
}

// String converts the name back to its dotted form.
func (n Name) String() string {
	parts := make([]string, len(n.Tokens))
	for i, t := range n.Tokens {
		parts[i] = t.String()
	}

	return strings.Join(parts, ".")
}

// String converts the token back to its bracketed form.
func (t Token) String() string {
	var b strings.Builder

	b.WriteString(t.ElemName)

	for _, i := range t.Index {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(']')
	}

	return b.String()
}

// Parent returns the name without its last token. The parent of a single
// token name is the empty string.
func (n Name) Parent() string {
	if len(n.Tokens) <= 1 {
		return ""
	}

	return Name{Tokens: n.Tokens[:len(n.Tokens)-1]}.String()
}

// Last returns the last token of the name.
func (n Name) Last() Token {
	return n.Tokens[len(n.Tokens)-1]
}

// Parse splits a name string into tokens. It panics if the brackets do not
// match or if an index is not an integer.
func Parse(s string) Name {
	elems := strings.Split(s, ".")
	n := Name{Tokens: make([]Token, len(elems))}

	for i, e := range elems {
		n.Tokens[i] = parseToken(e)
	}

	return n
}

func parseToken(s string) Token {
	bracketsMustMatch(s)

	parts := strings.Split(s, "[")
	t := Token{ElemName: parts[0]}

	for _, p := range parts[1:] {
		index, err := strconv.Atoi(strings.TrimSuffix(p, "]"))
		if err != nil {
			panic("name index must be an integer")
		}

		t.Index = append(t.Index, index)
	}

	return t
}

func bracketsMustMatch(s string) {
	depth := 0

	for _, c := range s {
		switch c {
		case '[':
			depth++
			if depth > 1 {
				panic("name brackets must not nest")
			}
		case ']':
			depth--
			if depth < 0 {
				panic("name brackets must match")
			}
		}
	}

	if depth != 0 {
		panic("name brackets must match")
	}
}

// NameMustBeValid panics if the name does not follow the naming convention:
//  1. Tokens are separated by dots and none of them is empty.
//  2. Every token starts with a capital letter (CamelCase).
//  3. Tokens do not contain '_', '-', or quotes.
//  4. Elements of a series use square brackets, e.g. "DMA[1]".
func NameMustBeValid(name string) {
	defer func() {
		if r := recover(); r != nil {
			panic("name " + name + " is not valid: " + r.(string))
		}
	}()

	for _, t := range Parse(name).Tokens {
		tokenMustBeValid(t)
	}
}

// IsValid reports whether the name follows the naming convention.
func IsValid(name string) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	NameMustBeValid(name)

	return true
}

func tokenMustBeValid(t Token) {
	if t.ElemName == "" {
		panic("name element must not be empty")
	}

	if strings.ContainsAny(t.ElemName, "_-\"'") {
		panic("name element must not contain _, -, or quotes")
	}

	if t.ElemName[0] < 'A' || t.ElemName[0] > 'Z' {
		panic("name element must start with a capital letter")
	}
}

// BuildName joins a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex joins a parent name and an indexed element name, for
// example BuildNameWithIndex("Ruby", "L1Cache", 3) is "Ruby.L1Cache[3]".
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildName(parentName, Token{
		ElemName: elementName,
		Index:    []int{index},
	}.String())
}
