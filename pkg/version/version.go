// Package version encodes dotted protocol versions into totally ordered integers and
// tracks the set of versions known to a definition corpus.
package version

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/platinummonkey/codecgen/pkg/definitions"
)

// Multipliers of the integer encoding. Minor and patch must stay below 100.
const (
	MajorMultiplier = 10000
	MinorMultiplier = 100
	PatchMultiplier = 1
)

// Encode maps major.minor.patch to a single integer ordered like the triple
func Encode(major, minor, patch int) int {
	return MajorMultiplier*major + MinorMultiplier*minor + PatchMultiplier*patch
}

// Version is a parsed major.minor[.patch] tag
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses "2.1" or "2.1.5"
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		nums[i] = n
	}

	if nums[1] >= MajorMultiplier/MinorMultiplier || nums[2] >= MinorMultiplier {
		return Version{}, fmt.Errorf("%w: %q", ErrComponentOutOfRange, s)
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParse is Parse for literals known to be valid
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Number returns the integer encoding of the version
func (v Version) Number() int {
	return Encode(v.Major, v.Minor, v.Patch)
}

// Less reports whether v orders before other
func (v Version) Less(other Version) bool {
	return v.Number() < other.Number()
}

func (v Version) String() string {
	if v.Patch == 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsMajorBump reports a x.0.0 version, which needs no predecessor
func (v Version) IsMajorBump() bool {
	return v.Minor == 0 && v.Patch == 0
}

// Predecessor returns the version a bump to v must follow. A patch bump follows the
// previous patch, a minor bump the previous minor. Major bumps have none.
func (v Version) Predecessor() (Version, bool) {
	switch {
	case v.IsMajorBump():
		return Version{}, false
	case v.Patch == 0:
		return Version{Major: v.Major, Minor: v.Minor - 1}, true
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch - 1}, true
	}
}

// Set is the set of distinct versions observed in a corpus
type Set struct {
	versions map[int]Version
}

// NewSet creates a set holding the given version strings. Invalid ones are skipped.
func NewSet(values ...string) *Set {
	s := &Set{versions: make(map[int]Version)}
	for _, value := range values {
		_ = s.Add(value)
	}
	return s
}

// Add parses and records a version string
func (s *Set) Add(value string) error {
	v, err := Parse(value)
	if err != nil {
		return err
	}
	s.versions[v.Number()] = v
	return nil
}

// Contains reports whether v was observed
func (s *Set) Contains(v Version) bool {
	_, ok := s.versions[v.Number()]
	return ok
}

// Len returns the number of distinct versions
func (s *Set) Len() int {
	return len(s.versions)
}

// First returns the smallest known version
func (s *Set) First() (Version, bool) {
	sorted := s.Sorted()
	if len(sorted) == 0 {
		return Version{}, false
	}
	return sorted[0], true
}

// Sorted returns the known versions in ascending order
func (s *Set) Sorted() []Version {
	out := make([]Version, 0, len(s.versions))
	for _, v := range s.versions {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}

// Follows reports whether v semantically continues the known versions: the first
// known version and major bumps always do, any other version needs its
// predecessor to be known.
func (s *Set) Follows(v Version) bool {
	if first, ok := s.First(); ok && first == v {
		return true
	}
	prev, ok := v.Predecessor()
	if !ok {
		return true
	}
	return s.Contains(prev)
}

// Collect gathers every since value of the corpus: methods, request, response and
// event params, events, custom types and custom type params. Unparsable values are
// left out and reported by validation.
func Collect(corpus *definitions.Corpus) *Set {
	s := NewSet()

	addParams := func(params []definitions.Parameter) {
		for _, p := range params {
			_ = s.Add(p.Since)
		}
	}

	for _, svc := range corpus.Services {
		for _, method := range svc.Methods {
			_ = s.Add(method.Since)
			addParams(method.Request.Params)
			addParams(method.Response.Params)
			for _, event := range method.Events {
				_ = s.Add(event.Since)
				addParams(event.Params)
			}
		}
	}

	for _, ct := range corpus.AllCustomTypes() {
		_ = s.Add(ct.Since)
		addParams(ct.Params)
	}

	return s
}
