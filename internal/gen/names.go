package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// importNames are the packages the generated file imports.
var importNames = []string{"errors", "fmt", "strconv", "strings"}

// localNames holds receiver, parameter and result names that do not
// shadow any variant of the enum. Method and function names are picked
// in separate scopes.
type localNames struct {
	// Methods.
	Recv   string
	Parsed string
	// Functions.
	Input string
	Rest  string
	Value string
	OK    string
}

type nameScope map[string]struct{}

func newNameScope(reserved ...[]string) nameScope {
	sc := make(nameScope)
	for _, names := range reserved {
		for _, n := range names {
			sc[n] = struct{}{}
		}
	}

	return sc
}

// pick returns the first free candidate and reserves it. When all are
// taken the last candidate is extended with underscores until it is free.
func (sc nameScope) pick(candidates ...string) string {
	for _, c := range candidates {
		if _, ok := sc[c]; !ok {
			sc[c] = struct{}{}
			return c
		}
	}

	c := candidates[len(candidates)-1]
	for {
		c += "_"
		if _, ok := sc[c]; !ok {
			sc[c] = struct{}{}
			return c
		}
	}
}

func pickLocalNames(typeName string, variants []string) localNames {
	methods := newNameScope(variants, importNames, []string{"text", "err"})
	funcs := newNameScope(variants, importNames)

	var n localNames

	n.Recv = methods.pick(receiverName(typeName), "x", "e")
	n.Parsed = methods.pick("v", "val", "value")

	n.Input = funcs.pick("s", "str", "input")
	n.Rest = funcs.pick("rest", "tail", "remainder")
	n.Value = funcs.pick("v", "val", "value")
	n.OK = funcs.pick("ok", "found", "matched")

	return n
}

// receiverName returns the lower-cased first letter of the type name.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return "x"
	}

	return string(unicode.ToLower(r))
}

// commentLines turns free text into // comment lines.
func commentLines(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			lines[i] = "//"
		} else {
			lines[i] = "// " + l
		}
	}

	return strings.Join(lines, "\n")
}
