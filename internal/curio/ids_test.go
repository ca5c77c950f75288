package curio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionByName(t *testing.T) {
	for _, r := range Regions() {
		got, ok := RegionByName(r.String())
		assert.True(t, ok, r.String())
		assert.Equal(t, r, got)
	}
	_, ok := RegionByName("Atlantis")
	assert.False(t, ok)
	_, ok = RegionByName("")
	assert.False(t, ok)
}

func TestRegionsExcludesSentinels(t *testing.T) {
	rs := Regions()
	assert.Len(t, rs, 8)
	assert.NotContains(t, rs, NoRegion)
}

func TestModalByName(t *testing.T) {
	m, ok := ModalByName("Fog Catching")
	assert.True(t, ok)
	assert.Equal(t, ModalFogCatching, m)
	_, ok = ModalByName("Cloud Seeding")
	assert.False(t, ok)
}

func TestHitTargetString(t *testing.T) {
	assert.Equal(t, "Region(Egypt)", Region(RegionEgypt).String())
	assert.Equal(t, "Math(plus)", Math(Up).String())
	assert.Equal(t, "Room(Shower)", Room(ScreenShower).String())
	assert.Equal(t, "None", HitTarget{}.String())
}

func TestScreenByName(t *testing.T) {
	s, ok := ScreenByName("Research")
	assert.True(t, ok)
	assert.Equal(t, ScreenResearch, s)
	_, ok = ScreenByName("Attic")
	assert.False(t, ok)
	_, ok = ScreenByName("")
	assert.False(t, ok)
}
