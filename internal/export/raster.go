package export

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// rasterize draws one page at scale onto a white canvas.
func rasterize(res *Resource, p page, width, height int, scale float64) image.Image {
	dc := gg.NewContext(int(float64(width)*scale), int(float64(height)*scale))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	faces := map[float64]font.Face{}
	for _, it := range p.items {
		switch it.kind {
		case itemRule:
			dc.SetColor(it.color)
			dc.SetLineWidth(scale)
			dc.DrawLine(it.x*scale, it.y*scale, (it.x+it.width)*scale, it.y*scale)
			dc.Stroke()
		case itemText:
			face, ok := faces[it.size]
			if !ok {
				face = res.Face(it.size * scale)
				faces[it.size] = face
			}
			dc.SetFontFace(face)
			dc.SetColor(it.color)
			dc.DrawString(it.text, it.x*scale, it.y*scale)
		}
	}
	return dc.Image()
}
