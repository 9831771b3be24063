package watergen

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// RenderScheme defines how the diagnostic image colours tiles.
type RenderScheme struct {
	OffZone   color.Color // tiles outside the water region
	Water     color.Color // open lake interior
	FreePath  color.Color // guaranteed-reachable water
	Blocked   color.Color // blocked / consumed water tiles
	Preserved color.Color // neighbour border with a kept connection
	Severed   color.Color // neighbour border without one
}

// DefaultRenderScheme returns a readable default palette.
func DefaultRenderScheme() *RenderScheme {
	return &RenderScheme{
		OffZone:   colornames.Whitesmoke,
		Water:     colornames.Royalblue,
		FreePath:  colornames.Lightskyblue,
		Blocked:   colornames.Dimgray,
		Preserved: colornames.Gold,
		Severed:   colornames.Crimson,
	}
}

// RenderPNG writes a diagnostic image of the water zone to fpath: one
// pixel per map tile, coloured by what the zone knows about it (lake
// interior, reachable water, blocked tiles, preserved or severed borders).
// Purely a debugging aid; it reads the same state Dump does.
func (w *WaterZone) RenderPNG(fpath string, scheme *RenderScheme) error {
	if scheme == nil {
		scheme = DefaultRenderScheme()
	}

	bounds := w.m.Bounds()
	ctx := gg.NewContext(bounds.Dx(), bounds.Dy())

	free := w.region.FreePaths()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t := image.Pt(x, y)
			var c color.Color
			switch w.Dump(t) {
			case '?':
				c = scheme.OffZone
			case '=':
				c = scheme.Preserved
			case '~':
				switch {
				case w.m.Occupancy(t) == TileBlocked || w.m.Occupancy(t) == TileUsed:
					c = scheme.Blocked
				case free.Contains(t):
					c = scheme.FreePath
				default:
					c = scheme.Water
				}
			default: // a neighbour id digit
				c = scheme.Severed
			}
			ctx.SetColor(c)
			ctx.SetPixel(x-bounds.Min.X, y-bounds.Min.Y)
		}
	}

	if err := ctx.SavePNG(fpath); err != nil {
		return errors.Wrapf(err, "watergen: saving %s", fpath)
	}
	return nil
}
