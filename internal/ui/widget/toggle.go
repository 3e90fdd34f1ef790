package widget

// boxRow lays out a square marker followed by its label and returns both rects.
func (c *Context) boxRow(label string) (row, box Rect) {
	size := c.line
	row = c.next(label, size+ItemSpacing+c.textWidth(label), size)
	box = Rect{X: row.X, Y: row.Y, W: size, H: size}
	c.text(label, box.X+size+ItemSpacing, row.Y, TextColor)
	return row, box
}

// Checkbox flips *v when clicked and reports the change.
func (c *Context) Checkbox(label string, v *bool) bool {
	row, box := c.boxRow(label)

	changed := false
	if c.clicked(row) {
		*v = !*v
		changed = true
	}

	color := OffColor // Red when disabled
	if *v {
		color = OnColor // Green when enabled
	}
	if c.hovered(row) {
		color = color.Mul(1.2) // Brighten on hover
	}
	c.rect(box, color, 0.85)
	return changed
}

// RadioButton selects value into *v when clicked. Like a button it reports
// every click, also on the option that is already selected.
func (c *Context) RadioButton(label string, v *int, value int) bool {
	row, box := c.boxRow(label)

	clicked := c.clicked(row)
	if clicked {
		*v = value
	}

	color := ButtonColor
	if c.hovered(row) {
		color = HoverColor
	}
	c.rect(box, color, 1)
	if *v == value {
		inset := box.W / 4
		c.rect(Rect{X: box.X + inset, Y: box.Y + inset, W: box.W - 2*inset, H: box.H - 2*inset}, OnColor.Mul(1.5), 1)
	}
	return clicked
}
