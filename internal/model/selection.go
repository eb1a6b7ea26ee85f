package model

// Decision records why a candidate file was kept or dropped.
type Decision struct {
	Path     Path
	Excluded bool
	// Rule names the first rule that excluded the file.
	Rule string
}

// RuleInfo is the printable description of a selection rule.
type RuleInfo struct {
	Name    string   `yaml:"name"`
	Kind    string   `yaml:"kind"`
	Marker  []string `yaml:"marker,omitempty,flow"`
	Values  []string `yaml:"values,omitempty,flow"`
	Pattern string   `yaml:"pattern,omitempty"`
	Overlay bool     `yaml:"overlay,omitempty"`
}
