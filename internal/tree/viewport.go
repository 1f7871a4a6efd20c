package tree

// Viewport decides the scroll offset that keeps the cursor line inside the
// central third of the visible rows: the view scrolls only when the cursor
// would leave the band between Height/3 and 2*Height/3.
type Viewport struct {
	Height int // visible rows, borders excluded
	Offset int // first visible line
}

func (v *Viewport) upper() int { return v.Height/3 + v.Offset }
func (v *Viewport) lower() int { return 2*v.Height/3 + v.Offset }

// ScrollUp adjusts the offset after an upward cursor move landing on line.
func (v *Viewport) ScrollUp(line int) {
	if line < v.upper() {
		v.Offset -= v.upper() - line
	}
}

// ScrollDown adjusts the offset after a downward cursor move landing on line.
func (v *Viewport) ScrollDown(line int) {
	if line > v.lower() {
		v.Offset += line - v.lower()
	}
}

// Clamp bounds the offset to [0, max(0, total-Height)]. Called every frame
// so a collapse that shrinks the document immediately pulls the view back.
func (v *Viewport) Clamp(total int) {
	max := total - v.Height
	if max < 0 {
		max = 0
	}
	if v.Offset > max {
		v.Offset = max
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}
