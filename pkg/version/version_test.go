package version

import (
	"testing"

	"github.com/platinummonkey/codecgen/pkg/definitions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Monotonic(t *testing.T) {
	assert.Less(t, Encode(2, 0, 0), Encode(2, 1, 0))
	assert.Less(t, Encode(2, 1, 0), Encode(2, 1, 5))
	assert.Less(t, Encode(2, 1, 5), Encode(3, 0, 0))
	assert.Less(t, Encode(2, 99, 99), Encode(3, 0, 0))
	assert.Equal(t, 20105, Encode(2, 1, 5))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr error
	}{
		{in: "2.0", want: Version{2, 0, 0}},
		{in: "2.1.5", want: Version{2, 1, 5}},
		{in: " 2.10 ", want: Version{2, 10, 0}},
		{in: "2", wantErr: ErrInvalidVersion},
		{in: "2.x", wantErr: ErrInvalidVersion},
		{in: "2.1.2.3", wantErr: ErrInvalidVersion},
		{in: "2.-1", wantErr: ErrInvalidVersion},
		{in: "2.100", wantErr: ErrComponentOutOfRange},
		{in: "2.1.100", wantErr: ErrComponentOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "2.1", MustParse("2.1.0").String())
	assert.Equal(t, "2.1.5", MustParse("2.1.5").String())
}

func TestVersion_Predecessor(t *testing.T) {
	_, ok := MustParse("3.0").Predecessor()
	assert.False(t, ok)

	prev, ok := MustParse("2.2").Predecessor()
	assert.True(t, ok)
	assert.Equal(t, MustParse("2.1"), prev)

	prev, ok = MustParse("2.1.3").Predecessor()
	assert.True(t, ok)
	assert.Equal(t, MustParse("2.1.2"), prev)
}

func TestSet_Follows(t *testing.T) {
	known := NewSet("2.0", "2.1")

	tests := []struct {
		version string
		want    bool
	}{
		{"2.0", true},   // first known version
		{"2.1", true},   // 2.0 known
		{"2.2", true},   // 2.1 known
		{"2.3", false},  // 2.2 missing
		{"3.0", true},   // major bump
		{"2.1.1", true}, // 2.1.0 known
		{"2.1.2", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, known.Follows(MustParse(tt.version)))
		})
	}
}

func TestSet_FirstVersionAlwaysFollows(t *testing.T) {
	known := NewSet("2.5", "2.6")
	assert.True(t, known.Follows(MustParse("2.5")))
	assert.True(t, known.Follows(MustParse("2.6")))
	assert.False(t, known.Follows(MustParse("2.8")))
}

func TestSet_Sorted(t *testing.T) {
	s := NewSet("2.2", "2.0", "not-a-version", "2.1.1", "2.0")
	sorted := s.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "2.0", sorted[0].String())
	assert.Equal(t, "2.1.1", sorted[1].String())
	assert.Equal(t, "2.2", sorted[2].String())

	first, ok := s.First()
	assert.True(t, ok)
	assert.Equal(t, "2.0", first.String())

	_, ok = NewSet().First()
	assert.False(t, ok)
}

func TestCollect(t *testing.T) {
	corpus := definitions.NewCorpus(
		[]definitions.Service{{
			Name: "Map",
			Methods: []definitions.Method{{
				Since:    "2.0",
				Request:  definitions.Request{Params: []definitions.Parameter{{Since: "2.1"}}},
				Response: definitions.Response{Params: []definitions.Parameter{{Since: "2.2"}}},
				Events: []definitions.Event{{
					Since:  "2.3",
					Params: []definitions.Parameter{{Since: "2.4"}},
				}},
			}},
		}},
		[]definitions.CustomTypesDocument{{
			CustomTypes: []definitions.CustomType{{
				Since:  "2.5",
				Params: []definitions.Parameter{{Since: "2.6"}},
			}},
		}},
	)

	s := Collect(corpus)
	assert.Equal(t, 7, s.Len())
	for _, v := range []string{"2.0", "2.1", "2.2", "2.3", "2.4", "2.5", "2.6"} {
		assert.True(t, s.Contains(MustParse(v)), v)
	}
}
