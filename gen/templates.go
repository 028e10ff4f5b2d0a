package gen

// enumTemplate renders one generated enum. The output is piped through
// imports.Process, which settles final formatting and import grouping, so
// the template only has to be syntactically exact.
const enumTemplate = `
{{- range .Doc}}
// {{.}}
{{- end}}
type {{.Name}} {{.Kind}}
{{- if .Values}}

// Named {{.Name}} values.
const (
{{- range .Values}}
{{- range .Doc}}
	// {{.}}
{{- end}}
	{{.Name}} {{$.Name}} = {{.Literal}}
{{- end}}
)
{{- end}}

// {{.FromRaw}} returns the {{.Name}} holding the raw value v. Every
// {{.Kind}} value is a valid {{.Name}}, named or not.
func {{.FromRaw}}(v {{.Kind}}) {{.Name}} { return {{.Name}}(v) }

// Raw returns the underlying {{.Kind}} value.
func (v {{.Name}}) Raw() {{.Kind}} { return {{.Kind}}(v) }

// Known reports whether v equals one of the named {{.Name}} values.
func (v {{.Name}}) Known() bool {
{{- if .CaseList}}
	switch v {
	case {{.CaseList}}:
		return true
	}
{{- end}}
	return false
}

// String returns the name of v when it equals a named value, and the
// numeric form "{{.Name}}(n)" otherwise.
func (v {{.Name}}) String() string {
{{- if .CaseNames}}
	switch v {
{{- range .CaseNames}}
	case {{.}}:
		return "{{.}}"
{{- end}}
	}
{{- end}}
	return "{{.Name}}(" + {{.FormatExpr}} + ")"
}
{{- if .NeedsParse}}

// {{.ParseFunc}} matches a value name, the "{{.Name}}(n)" fallback form or
// a bare integer literal.
func {{.ParseFunc}}(s string) ({{.Name}}, error) {
{{- if .AllNames}}
	switch s {
{{- range .AllNames}}
	case "{{.}}":
		return {{.}}, nil
{{- end}}
	}
{{- end}}
	num := s
	if strings.HasPrefix(num, "{{.Name}}(") && strings.HasSuffix(num, ")") {
		num = num[len("{{.Name}}(") : len(num)-1]
	}
	n, err := {{.ParseCall}}
	if err != nil {
		return 0, fmt.Errorf("invalid {{.Name}} value %q", s)
	}
	return {{.Name}}(n), nil
}
{{- end}}
{{- if .HasText}}

// MarshalText implements encoding.TextMarshaler.
func (v {{.Name}}) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *{{.Name}}) UnmarshalText(text []byte) error {
	parsed, err := {{.ParseFunc}}(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
{{- end}}
{{- if .HasJSON}}

// MarshalJSON implements json.Marshaler. Known values marshal as their
// name, anything else as the raw number.
func (v {{.Name}}) MarshalJSON() ([]byte, error) {
	if v.Known() {
		return json.Marshal(v.String())
	}
	return json.Marshal({{.Kind}}(v))
}

// UnmarshalJSON implements json.Unmarshaler. Both name strings and raw
// numbers are accepted.
func (v *{{.Name}}) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := {{.ParseFunc}}(s)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	}
	var n {{.Kind}}
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = {{.Name}}(n)
	return nil
}
{{- end}}
{{- if .HasYAML}}

// MarshalYAML implements yaml.Marshaler. Known values marshal as their
// name, anything else as the raw number.
func (v {{.Name}}) MarshalYAML() (any, error) {
	if v.Known() {
		return v.String(), nil
	}
	return {{.Kind}}(v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Both name strings and raw
// numbers are accepted.
func (v *{{.Name}}) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		parsed, perr := {{.ParseFunc}}(s)
		if perr != nil {
			return perr
		}
		*v = parsed
		return nil
	}
	var n {{.Kind}}
	if err := node.Decode(&n); err != nil {
		return err
	}
	*v = {{.Name}}(n)
	return nil
}
{{- end}}
`
