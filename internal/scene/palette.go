package scene

import "image/color"

// Palette indices.
const (
	ColorBlack = iota
	ColorWhite
	ColorHouseSky
	ColorShowerBG
	ColorMapBG
	ColorResearchBG
	ColorButton
	ColorButtonLight
	ColorWater
	ColorSolid
	ColorBrine
	ColorChemical
	ColorCover
	ColorPlaceholder
	ColorWall
	ColorRoof
	ColorDoor
	ColorGrass
	ColorPath
	ColorFloor
	ColorCount
)

// Palette holds every fixed colour the screens draw with. Map marker
// colours come from content instead.
var Palette = [ColorCount]color.RGBA{
	{0, 0, 0, 255},       // Black
	{255, 255, 255, 255}, // White
	{11, 253, 249, 255},  // House sky
	{218, 247, 220, 255}, // Shower background
	{170, 255, 247, 255}, // Map background
	{169, 188, 208, 255}, // Research background
	{255, 128, 0, 255},   // Button
	{255, 178, 102, 255}, // Secondary button
	{0, 0, 255, 255},     // Water
	{153, 102, 51, 255},  // Filtered solids
	{170, 170, 170, 255}, // Brine
	{255, 45, 85, 255},   // Chemicals
	{0, 255, 255, 255},   // Transition cover
	{120, 120, 120, 255}, // Image placeholder frame
	{120, 90, 70, 255},   // Wall
	{170, 60, 40, 255},   // Roof
	{90, 60, 30, 255},    // Door
	{85, 170, 85, 255},   // Grass
	{200, 180, 140, 255}, // Path
	{230, 215, 190, 255}, // Floor
}
