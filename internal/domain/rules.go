package domain

import (
	"regexp"
	"slices"
	"strings"

	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

// RuleKind names the shape of an exclusion rule.
type RuleKind string

// Available RuleKind values.
const (
	KindExtension      RuleKind = "extension"
	KindBaseNameSuffix RuleKind = "basename-suffix"
	KindBaseNamePrefix RuleKind = "basename-prefix"
	KindDirectory      RuleKind = "directory"
	KindFiles          RuleKind = "files"
	KindExcept         RuleKind = "except"
	KindPattern        RuleKind = "pattern"
)

// Rule is a named exclusion predicate over a SourceFile. Marker is a
// contiguous run of directory segments that must appear in the file's
// directory path for directory-scoped kinds to fire.
type Rule struct {
	Name    string
	Kind    RuleKind
	Marker  []string
	Values  []string
	Pattern string

	re *regexp.Regexp
}

// OnlyExtensions excludes every file whose extension is not listed.
func OnlyExtensions(name string, exts ...string) Rule {
	return Rule{Name: name, Kind: KindExtension, Values: exts}
}

// BaseNameSuffix excludes files whose base name ends with suffix.
func BaseNameSuffix(name, suffix string) Rule {
	return Rule{Name: name, Kind: KindBaseNameSuffix, Values: []string{suffix}}
}

// BaseNamePrefix excludes files whose base name starts with prefix.
func BaseNamePrefix(name, prefix string) Rule {
	return Rule{Name: name, Kind: KindBaseNamePrefix, Values: []string{prefix}}
}

// UnderDirectory excludes everything below marker.
func UnderDirectory(name string, marker ...string) Rule {
	return Rule{Name: name, Kind: KindDirectory, Marker: marker}
}

// NamedFiles excludes the listed file names below marker.
func NamedFiles(name string, marker []string, files ...string) Rule {
	return Rule{Name: name, Kind: KindFiles, Marker: marker, Values: files}
}

// AllExcept excludes everything below marker but the listed file names.
func AllExcept(name string, marker []string, keep ...string) Rule {
	return Rule{Name: name, Kind: KindExcept, Marker: marker, Values: keep}
}

// BaseNameMatching excludes files below marker whose base name matches pattern.
func BaseNameMatching(name string, marker []string, pattern string) Rule {
	return Rule{Name: name, Kind: KindPattern, Marker: marker, Pattern: pattern, re: regexp.MustCompile(pattern)}
}

// Info describes the rule for display.
func (r Rule) Info() m.RuleInfo {
	return m.RuleInfo{
		Name:    r.Name,
		Kind:    string(r.Kind),
		Marker:  r.Marker,
		Values:  r.Values,
		Pattern: r.Pattern,
	}
}

// Excludes reports whether the rule rejects file.
func (r Rule) Excludes(file m.SourceFile) bool {
	switch r.Kind {
	case KindExtension:
		return !slices.Contains(r.Values, file.Ext)
	case KindBaseNameSuffix:
		return strings.HasSuffix(file.BaseName, r.Values[0])
	case KindBaseNamePrefix:
		return strings.HasPrefix(file.BaseName, r.Values[0])
	case KindDirectory:
		return containsMarker(file.Dirs, r.Marker)
	case KindFiles:
		return containsMarker(file.Dirs, r.Marker) && slices.Contains(r.Values, file.Name)
	case KindExcept:
		return containsMarker(file.Dirs, r.Marker) && !slices.Contains(r.Values, file.Name)
	case KindPattern:
		return containsMarker(file.Dirs, r.Marker) && r.matcher().MatchString(file.BaseName)
	}

	return false
}

// matcher compiles Pattern lazily for rules built without BaseNameMatching.
func (r Rule) matcher() *regexp.Regexp {
	if r.re != nil {
		return r.re
	}

	return regexp.MustCompile(r.Pattern)
}

// containsMarker reports whether marker occurs as a contiguous run in dirs.
func containsMarker(dirs, marker []string) bool {
	if len(marker) == 0 || len(marker) > len(dirs) {
		return false
	}

	for i := 0; i+len(marker) <= len(dirs); i++ {
		if slices.Equal(dirs[i:i+len(marker)], marker) {
			return true
		}
	}

	return false
}

// Evaluate runs every rule against file and returns the name of the first
// one that excludes it. An empty name means the file is selected.
func Evaluate(rules []Rule, file m.SourceFile) (excluded bool, rule string) {
	for _, r := range rules {
		if r.Excludes(file) {
			return true, r.Name
		}
	}

	return false, ""
}
