package types

// Script is a single entry of the manifest's scripts table
type Script struct {
	Name    string `toml:"name"`
	Command string `toml:"command"`
}

// FileTemplate is a file a feature writes into the project.
// Path is relative to the project root; Content is written verbatim.
type FileTemplate struct {
	Path     string `toml:"path"`
	Template string `toml:"template"`
	Content  string `toml:"-"`
}

// Hint is a follow-up command shown in the end-of-run summary
type Hint struct {
	Command     string `toml:"command"`
	Description string `toml:"description"`
}

// Feature is an optional tooling addition: dependencies, manifest scripts
// and file templates. Features are loaded once from the catalog and never
// modified afterwards.
type Feature struct {
	Name            string         `toml:"name"`
	Description     string         `toml:"description"`
	DevDependencies []string       `toml:"dev_dependencies"`
	Dependencies    []string       `toml:"dependencies"`
	SummaryTitle    string         `toml:"summary_title"`
	Notes           []string       `toml:"notes"`
	Scripts         []Script       `toml:"scripts"`
	Files           []FileTemplate `toml:"files"`
	Hints           []Hint         `toml:"hints"`
}

// ScriptNames returns the script names in declaration order
func (f Feature) ScriptNames() []string {
	names := make([]string, len(f.Scripts))
	for i, s := range f.Scripts {
		names[i] = s.Name
	}
	return names
}

// FilePaths returns the template paths in declaration order
func (f Feature) FilePaths() []string {
	paths := make([]string, len(f.Files))
	for i, file := range f.Files {
		paths[i] = file.Path
	}
	return paths
}
