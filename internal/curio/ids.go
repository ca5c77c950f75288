// Package curio holds the identifiers shared by every screen of the curio:
// which screen is showing, which map region or research modal is open, and
// what a click landed on.
package curio

// ScreenID identifies a registered surface.
type ScreenID uint8

const (
	ScreenHouse ScreenID = iota
	ScreenShower
	ScreenMap
	ScreenResearch
	ScreenCount // sentinel
)

var screenNames = [ScreenCount]string{"House", "Shower", "Map", "Research"}

func (s ScreenID) String() string {
	if s < ScreenCount {
		return screenNames[s]
	}
	return "Unknown"
}

// ScreenByName maps a screen name ("Shower", "Map", ...) to its ScreenID.
func ScreenByName(name string) (ScreenID, bool) {
	for i := ScreenHouse; i < ScreenCount; i++ {
		if screenNames[i] == name {
			return i, true
		}
	}
	return 0, false
}

// RegionID is one of the fixed country pages on the map screen.
type RegionID uint8

const (
	NoRegion RegionID = iota
	RegionBangladesh
	RegionSouthAfrica
	RegionBarbados
	RegionDRCongo
	RegionPakistan
	RegionEgypt
	RegionUAEmirates
	RegionChile
	RegionCount // sentinel
)

var regionNames = [RegionCount]string{
	"", "Bangladesh", "South Africa", "Barbados", "DR Congo",
	"Pakistan", "Egypt", "UA Emirates", "Chile",
}

func (r RegionID) String() string {
	if r < RegionCount {
		return regionNames[r]
	}
	return "Unknown"
}

// RegionByName maps a display title back to its RegionID.
func RegionByName(name string) (RegionID, bool) {
	for i := RegionBangladesh; i < RegionCount; i++ {
		if regionNames[i] == name {
			return i, true
		}
	}
	return NoRegion, false
}

// Regions returns every real region in map order.
func Regions() []RegionID {
	out := make([]RegionID, 0, RegionCount-1)
	for i := RegionBangladesh; i < RegionCount; i++ {
		out = append(out, i)
	}
	return out
}

// ModalID identifies a research modal.
type ModalID uint8

const (
	NoModal ModalID = iota
	ModalDesalination
	ModalFogCatching
	ModalCount // sentinel
)

var modalNames = [ModalCount]string{"", "Desalination", "Fog Catching"}

func (m ModalID) String() string {
	if m < ModalCount {
		return modalNames[m]
	}
	return "Unknown"
}

// ModalByName maps a modal title back to its ModalID.
func ModalByName(name string) (ModalID, bool) {
	for i := ModalDesalination; i < ModalCount; i++ {
		if modalNames[i] == name {
			return i, true
		}
	}
	return NoModal, false
}

// Direction is the sense of a shower math button.
type Direction uint8

const (
	Down Direction = iota // minus
	Up                    // plus
)
