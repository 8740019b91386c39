package export

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
)

// Page geometry. The document is laid out at a fixed CSS-pixel width and
// placed on A4 portrait pages with half-inch margins.
const (
	PageWidthPx = 794
	RenderScale = 2
	JPEGQuality = 98
	MarginIn    = 0.5
	a4WidthIn   = 210 / 25.4
	a4HeightIn  = 297 / 25.4
)

// ContentWidthIn and ContentHeightIn are the printable area of a page.
const (
	ContentWidthIn  = a4WidthIn - 2*MarginIn
	ContentHeightIn = a4HeightIn - 2*MarginIn
)

// PageHeightPx is the height of one page slice at PageWidthPx.
var PageHeightPx = int(math.Floor(PageWidthPx * ContentHeightIn / ContentWidthIn))

const (
	padding    = 24.0
	lineHeight = 1.5
	cardGap    = 18.0
)

var (
	colorText    = color.RGBA{30, 41, 59, 255}    // slate-800
	colorLabel   = color.RGBA{37, 99, 235, 255}   // blue-600
	colorAnswer  = color.RGBA{22, 101, 52, 255}   // green-800
	colorExplain = color.RGBA{21, 128, 61, 255}   // green-700
	colorRule    = color.RGBA{226, 232, 240, 255} // slate-200
)

type itemKind int

const (
	itemText itemKind = iota
	itemRule
)

// item is one positioned drawing instruction. Text items are anchored at
// their baseline.
type item struct {
	kind  itemKind
	text  string
	x, y  float64
	width float64 // rules only
	size  float64
	color color.Color
}

type page struct {
	items []item
}

// style describes a run of text in the flow.
type style struct {
	size   float64
	color  color.Color
	indent float64
	before float64 // vertical space before the block
}

// flow places wrapped text top to bottom, starting a new page whenever
// the next line would cross the bottom edge.
type flow struct {
	res      *Resource
	width    float64
	height   float64
	pages    []page
	cur      *page
	y        float64
	measures map[float64]*gg.Context
}

func newFlow(res *Resource, width, height float64) *flow {
	f := &flow{res: res, width: width, height: height, measures: map[float64]*gg.Context{}}
	f.newPage()
	return f
}

// measure returns a scratch context whose face is set to size, used only
// for wrapping.
func (f *flow) measure(size float64) *gg.Context {
	if dc, ok := f.measures[size]; ok {
		return dc
	}
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(f.res.Face(size))
	f.measures[size] = dc
	return dc
}

func (f *flow) newPage() {
	f.pages = append(f.pages, page{})
	f.cur = &f.pages[len(f.pages)-1]
	f.y = padding
}

func (f *flow) text(s string, st style) {
	if s == "" {
		return
	}
	f.y += st.before
	dc := f.measure(st.size)
	lh := st.size * lineHeight
	x := padding + st.indent
	for _, line := range dc.WordWrap(s, f.width-x-padding) {
		if f.y+lh > f.height-padding && len(f.cur.items) > 0 {
			f.newPage()
		}
		// Baseline sits roughly 80% into the line box.
		f.cur.items = append(f.cur.items, item{
			kind:  itemText,
			text:  line,
			x:     x,
			y:     f.y + (lh+st.size)/2 - st.size*0.2,
			size:  st.size,
			color: st.color,
		})
		f.y += lh
	}
}

func (f *flow) rule(before float64) {
	f.y += before
	if f.y > f.height-padding {
		f.newPage()
		return
	}
	f.cur.items = append(f.cur.items, item{
		kind:  itemRule,
		x:     padding,
		y:     f.y,
		width: f.width - 2*padding,
		color: colorRule,
	})
}

// layoutDocument flows doc into pages of PageWidthPx × PageHeightPx.
func layoutDocument(res *Resource, doc Document) []page {
	f := newFlow(res, PageWidthPx, float64(PageHeightPx))

	if doc.ShowTitle && doc.Title != "" {
		f.text(doc.Title, style{size: 24, color: colorText})
		f.rule(6)
	}

	for i, c := range doc.Cards {
		if i > 0 {
			f.rule(cardGap / 2)
		}
		f.text(c.Label, style{size: 13, color: colorLabel, before: cardGap / 2})
		f.text(strconv.Itoa(c.Number)+". "+c.Question, style{size: 15, color: colorText, before: 6})
		for j, opt := range c.Options {
			f.text(strconv.Itoa(j+1)+". "+opt, style{size: 14, color: colorText, indent: 12, before: 4})
		}
		if c.ShowAnswer {
			f.text(AnswerPrefix+c.Answer, style{size: 14, color: colorAnswer, indent: 12, before: 10})
			f.text(strings.TrimSpace(c.Explanation), style{size: 13, color: colorExplain, indent: 12, before: 4})
		}
	}
	return f.pages
}
