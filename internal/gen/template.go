package gen

import (
	"strconv"
	"text/template"
)

var templateFuncs = template.FuncMap{
	"quote":   strconv.Quote,
	"comment": commentLines,
}

var fileTemplate = template.Must(template.New("file").Funcs(templateFuncs).Parse(`// Code generated by "{{.Command}}"; DO NOT EDIT.

package {{.PackageName}}

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)
{{range .Enums}}{{template "enum" .}}{{end}}`))

var _ = template.Must(fileTemplate.New("enum").Parse(`
{{- $e := .}}
{{if .Declare}}
{{if .Doc}}{{comment .Doc}}
{{end}}type {{.Type}} {{.Underlying}}

const (
{{range $i, $v := .Variants}}{{if eq $i 0}}	{{$v}} {{$e.Type}} = iota
{{else}}	{{$v}}
{{end}}{{end}})
{{end}}
// {{.Type}}MaxLen is the length in bytes of the longest {{.Type}} representation,
// {{quote .Longest}} ({{.MaxLen}} = {{printf "%#x" .MaxLen}}). No longer input matches a {{.Type}}.
const {{.Type}}MaxLen = {{.MaxLen}}

// ErrUnknown{{.Type}} is returned when a string matches no {{.Type}}.
var ErrUnknown{{.Type}} = errors.New("unknown {{.Type}}")

// String returns the representation of {{.Names.Recv}}.
func ({{.Names.Recv}} {{.Type}}) String() string {
	switch {{.Names.Recv}} {
{{- range .ToString}}
	case {{.Name}}:
		return {{quote .Repr}}
{{- end}}
	}

	return "{{.Type}}(" + strconv.FormatInt(int64({{.Names.Recv}}), 10) + ")"
}

// Len returns the length in bytes of the representation of {{.Names.Recv}}.
func ({{.Names.Recv}} {{.Type}}) Len() int {
	return len({{.Names.Recv}}.String())
}

// IsValid reports whether {{.Names.Recv}} is a declared {{.Type}}.
func ({{.Names.Recv}} {{.Type}}) IsValid() bool {
	switch {{.Names.Recv}} {
	case {{range $i, $a := .ToString}}{{if $i}},
		{{end}}{{$a.Name}}{{end}}:
		return true
	}

	return false
}

// {{.Type}}Values returns every declared {{.Type}} in declaration order.
func {{.Type}}Values() []{{.Type}} {
	return []{{.Type}}{
{{- range .ToString}}
		{{.Name}},
{{- end}}
	}
}

// Parse{{.Type}} returns the {{.Type}} whose representation equals {{.Names.Input}}.
// The error wraps ErrUnknown{{.Type}} when there is none.
func Parse{{.Type}}({{.Names.Input}} string) ({{.Type}}, error) {
	switch {{.Names.Input}} {
{{- range .Exact}}
	case {{quote .Repr}}:
		return {{.Name}}, nil
{{- end}}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknown{{.Type}}, {{.Names.Input}})
}

// Cut{{.Type}}Prefix matches the longest {{.Type}} representation at the start
// of {{.Names.Input}} and returns the remainder of {{.Names.Input}} after it.
// If no representation matches, it returns {{.Names.Input}} unchanged and false.
func Cut{{.Type}}Prefix({{.Names.Input}} string) ({{.Names.Rest}} string, {{.Names.Value}} {{.Type}}, {{.Names.OK}} bool) {
	switch {
{{- range .Prefix}}
	case strings.HasPrefix({{$e.Names.Input}}, {{quote .Repr}}):
		return {{$e.Names.Input}}[{{.Len}}:], {{.Name}}, true
{{- end}}
	}

	return {{.Names.Input}}, 0, false
}
{{if .Text}}
// MarshalText implements encoding.TextMarshaler.
func ({{.Names.Recv}} {{.Type}}) MarshalText() ([]byte, error) {
	if !{{.Names.Recv}}.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown{{.Type}}, int64({{.Names.Recv}}))
	}

	return []byte({{.Names.Recv}}.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func ({{.Names.Recv}} *{{.Type}}) UnmarshalText(text []byte) error {
	{{.Names.Parsed}}, err := Parse{{.Type}}(string(text))
	if err != nil {
		return err
	}

	*{{.Names.Recv}} = {{.Names.Parsed}}

	return nil
}
{{end}}`))
