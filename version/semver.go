package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrMalformed is returned for strings that are not release versions.
var ErrMalformed = errors.New("malformed version")

// Semver is a parsed release version.
type Semver struct {
	Major, Minor, Patch int
	// Pre is the pre-release label, e.g. "rc.1". Empty for final releases.
	Pre string
}

// Parse reads versions such as "1.2.3", "v1.2" or "1.2.3-rc.1".
// A missing minor or patch number reads as zero.
func Parse(s string) (Semver, error) {
	core, pre, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(s), "v"), "-")

	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return Semver{}, fmt.Errorf("%q: %w", s, ErrMalformed)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Semver{}, fmt.Errorf("%q: %w", s, ErrMalformed)
		}
		nums[i] = n
	}

	return Semver{Major: nums[0], Minor: nums[1], Patch: nums[2], Pre: pre}, nil
}

func (v Semver) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	return s
}

// Compare returns 1 if v is newer than o, -1 if older and 0 if equal.
// A pre-release is older than the final release with the same numbers.
func (v Semver) Compare(o Semver) int {
	if c := slices.Compare([]int{v.Major, v.Minor, v.Patch}, []int{o.Major, o.Minor, o.Patch}); c != 0 {
		return c
	}

	switch {
	case v.Pre == o.Pre:
		return 0
	case v.Pre == "":
		return 1
	case o.Pre == "":
		return -1
	default:
		return strings.Compare(v.Pre, o.Pre)
	}
}

// Compare parses a and b and compares them.
func Compare(a, b string) (int, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := Parse(b)
	if err != nil {
		return 0, err
	}

	return av.Compare(bv), nil
}
