package model

// Fixture file roles, matched against base names with the extension stripped.
const (
	RoleOriginal = "original"
	RoleExpected = "expected"
)

// FixtureCase is one golden test: the input handed to the tool and the
// content it is expected to produce.
type FixtureCase struct {
	Group    string
	Name     string
	Original Path
	Expected Path
}

// ID is the "group/name" identifier used in reports.
func (c FixtureCase) ID() string {
	return c.Group + "/" + c.Name
}

// FixtureReport is the line diff of a failing fixture.
type FixtureReport struct {
	Case FixtureCase
	Diff string
}
