package turkish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuffixMatchAndRemove(t *testing.T) {
	s4 := NominalVerbSuffixes.Get("S4")
	require.NotNil(t, s4)
	assert.True(t, s4.Match("satıyorsunuz"))
	assert.Equal(t, "satıyor", s4.Remove("satıyorsunuz"))
	assert.False(t, s4.Match("satıyor"))
	assert.Equal(t, "satıyor", s4.Remove("satıyor"))

	ki := NounSuffixes.Get("S18")
	require.NotNil(t, ki)
	assert.False(t, ki.CheckHarmony)
	assert.Equal(t, "-ki (S18)", ki.String())
}

func TestSuffixOptionalLetter(t *testing.T) {
	s6 := NounSuffixes.Get("S6")
	letter, ok := s6.OptionalLetter("kapıs")
	assert.True(t, ok)
	assert.Equal(t, 's', letter)

	_, ok = s6.OptionalLetter("kapı")
	assert.False(t, ok)

	_, ok = NominalVerbSuffixes.Get("S4").OptionalLetter("satıyory")
	assert.False(t, ok)

	letter, ok = NounSuffixes.Get("S2").OptionalLetter("guzeli")
	assert.True(t, ok)
	assert.Equal(t, 'i', letter)
}

func TestSuffixSurfacesShareLength(t *testing.T) {
	for _, table := range []SuffixTable{NominalVerbSuffixes, NounSuffixes, DerivationalSuffixes} {
		for _, s := range table {
			n := len([]rune(s.Surfaces()[0]))
			for _, surface := range s.Surfaces() {
				assert.Len(t, []rune(surface), n, s.String())
			}
		}
	}
}

func TestSuffixTableGet(t *testing.T) {
	assert.Nil(t, DerivationalSuffixes.Get("S2"))
	assert.Equal(t, "-lU", DerivationalSuffixes.Get("S1").Name)
	assert.Len(t, NominalVerbSuffixes, 15)
	assert.Len(t, NounSuffixes, 19)
}
