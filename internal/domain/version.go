package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionPattern is the shape every publishable version must have after the
// "v" prefix is applied: vMAJOR.MINOR.PATCH with an optional -prerelease or
// +metadata suffix.
var versionPattern = regexp.MustCompile(`^v\d+\.\d+\.\d+([-+].+)?$`)

// ReleaseVersion is a validated, normalized release version. The zero value
// is not usable; construct one with NewReleaseVersion.
type ReleaseVersion struct {
	sv *semver.Version
}

// NewReleaseVersion normalizes and validates a raw version argument. A
// missing "v" prefix is added; anything that does not then match
// vMAJOR.MINOR.PATCH[-/+suffix] is rejected.
func NewReleaseVersion(raw string) (*ReleaseVersion, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return nil, fmt.Errorf("%w: version cannot be empty", ErrValidation)
	}
	if !strings.HasPrefix(normalized, "v") {
		normalized = "v" + normalized
	}
	if !versionPattern.MatchString(normalized) {
		return nil, fmt.Errorf("%w: invalid version %q (expected 1.2.3 or v1.2.3, optionally with -suffix or +suffix)",
			ErrValidation, raw)
	}
	sv, err := semver.StrictNewVersion(strings.TrimPrefix(normalized, "v"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid version %q: %v", ErrValidation, raw, err)
	}
	return &ReleaseVersion{sv: sv}, nil
}

// TagName returns the git tag name for this version, e.g. "v1.2.3-rc1".
func (v *ReleaseVersion) TagName() string {
	return "v" + v.sv.String()
}

// MajorTag returns the floating major tag derived from this version,
// e.g. "v1" for v1.2.3.
func (v *ReleaseVersion) MajorTag() string {
	return fmt.Sprintf("v%d", v.sv.Major())
}

// IsPrerelease reports whether the version carries a pre-release suffix.
func (v *ReleaseVersion) IsPrerelease() bool {
	return v.sv.Prerelease() != ""
}

// String returns the normalized version string with the v prefix.
func (v *ReleaseVersion) String() string {
	return v.TagName()
}
