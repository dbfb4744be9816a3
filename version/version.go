// Package version exposes the module's own semantic version, parsed
// and compared with blang/semver/v4 exactly as the reference
// application parses release tags in its update checker.
package version

import (
	"strings"

	"github.com/blang/semver/v4"
)

// Number is set at build time via -ldflags, same as the reference
// application's version/nameSuffix/distribution globals in main.go.
var Number = "0.0.0-dev"

// Parsed returns Number as a semver.Version, stripping a leading "v"
// the way cli.go's update-check path does.
func Parsed() (semver.Version, error) {
	return semver.Make(strings.TrimLeft(Number, "v"))
}

// IsNewerThan reports whether Number is a newer release than other.
func IsNewerThan(other string) (bool, error) {
	mine, err := Parsed()
	if err != nil {
		return false, err
	}
	theirs, err := semver.Make(strings.TrimLeft(other, "v"))
	if err != nil {
		return false, err
	}
	return mine.Compare(theirs) > 0, nil
}
