package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/blockscope/blockscope/pkg/block"
)

// Color is an RGB color in [0,1] channels.
type Color = colorful.Color

// Base palette.
var (
	ColorAccentBlue = mustHex("#4a90d9") // requires edges, core blocks
	ColorGreen      = mustHex("#34a853") // enables edges, feature blocks
	ColorGold       = mustHex("#d9a23a") // modifies edges
	ColorRed        = mustHex("#d94a4a") // conflicts edges, cycle highlight
	ColorPurple     = mustHex("#8a5cc9") // presentation blocks
	ColorAmber      = mustHex("#e0862e") // bonus blocks
	ColorGrey       = mustHex("#8a8f98") // disabled blocks
	colorWhite      = mustHex("#ffffff")
)

// fillTintAmount is how far border colors are blended toward white to
// produce node fills.
const fillTintAmount = 0.85

// EdgeColor returns the stroke color for an edge kind.
func EdgeColor(kind block.EdgeKind) Color {
	switch kind {
	case block.EdgeRequires:
		return ColorAccentBlue
	case block.EdgeEnables:
		return ColorGreen
	case block.EdgeModifies:
		return ColorGold
	case block.EdgeConflicts:
		return ColorRed
	}
	return ColorGrey
}

// CategoryColor returns the border color assigned to a category.
func CategoryColor(c block.Category) Color {
	switch c {
	case block.CategoryCore:
		return ColorAccentBlue
	case block.CategoryFeature:
		return ColorGreen
	case block.CategoryPresentation:
		return ColorPurple
	case block.CategoryBonus:
		return ColorAmber
	}
	return ColorGrey
}

// NodeBorderColor applies the node color precedence: cycle membership
// beats the enabled category color, which beats the disabled grey.
func NodeBorderColor(n block.Block, inCycle bool) Color {
	switch {
	case inCycle:
		return ColorRed
	case n.Enabled:
		return CategoryColor(n.Category)
	default:
		return ColorGrey
	}
}

// Tint returns the fill variant of a border color.
func Tint(c Color) Color {
	return c.BlendLab(colorWhite, fillTintAmount).Clamped()
}

func mustHex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
