package types

// GeneratedFile is one emitted Go source file.
type GeneratedFile struct {
	Path    string // output path, derived from the declaring file
	Package string // package name of the declaring file
	Source  []byte // formatted Go source
}

// Result is the outcome of a generation run.
type Result struct {
	Enums []*EnumInfo
	Files []*GeneratedFile
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{}
}

// EnumByName returns the resolved enum with the given name, or nil.
func (r *Result) EnumByName(name string) *EnumInfo {
	for _, e := range r.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}
