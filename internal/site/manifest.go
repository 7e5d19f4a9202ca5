package site

// Entry records one output the current run must consider: where it comes
// from, where it goes, and every file whose modification invalidates it.
// Tag pages and the homepage are virtual outputs with no single source file.
type Entry struct {
	SourcePath string
	OutputPath string
	Deps       []string
}

// Manifest is the full set of build entries for one invocation. It is rebuilt
// from scratch every run and never persisted.
type Manifest struct {
	Entries []Entry
}

func (m *Manifest) add(source, output string, deps []string) Entry {
	e := Entry{SourcePath: source, OutputPath: output, Deps: deps}
	m.Entries = append(m.Entries, e)
	return e
}

// depSet concatenates dependency groups into one slice.
func depSet(groups ...[]string) []string {
	var deps []string
	for _, g := range groups {
		deps = append(deps, g...)
	}
	return deps
}
