package curio

import "fmt"

// HitKind discriminates a HitTarget.
type HitKind uint8

const (
	HitNone   HitKind = iota
	HitHome           // back to the house
	HitRegion         // a map marker
	HitMath           // shower plus/minus
	HitSubmit         // shower submit
	HitRoom           // a room of the house
	HitModal          // a research modal button
)

// HitTarget is the tagged value a clickable node carries. Only the payload
// field matching Kind is meaningful.
type HitTarget struct {
	Kind   HitKind
	Region RegionID
	Dir    Direction
	Screen ScreenID
	Modal  ModalID
}

func Home() HitTarget { return HitTarget{Kind: HitHome} }
func Submit() HitTarget { return HitTarget{Kind: HitSubmit} }
func Region(r RegionID) HitTarget { return HitTarget{Kind: HitRegion, Region: r} }
func Math(d Direction) HitTarget { return HitTarget{Kind: HitMath, Dir: d} }
func Room(s ScreenID) HitTarget { return HitTarget{Kind: HitRoom, Screen: s} }
func ModalButton(m ModalID) HitTarget { return HitTarget{Kind: HitModal, Modal: m} }

func (h HitTarget) String() string {
	switch h.Kind {
	case HitHome:
		return "Home"
	case HitRegion:
		return fmt.Sprintf("Region(%s)", h.Region)
	case HitMath:
		if h.Dir == Up {
			return "Math(plus)"
		}
		return "Math(minus)"
	case HitSubmit:
		return "Submit"
	case HitRoom:
		return fmt.Sprintf("Room(%s)", h.Screen)
	case HitModal:
		return fmt.Sprintf("Modal(%s)", h.Modal)
	default:
		return "None"
	}
}
