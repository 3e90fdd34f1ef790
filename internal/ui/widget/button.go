package widget

const buttonPad = 6

// Button draws a text button sized to its label and reports a click.
func (c *Context) Button(label string) bool {
	r := c.next(label, c.textWidth(label)+2*buttonPad, c.line+buttonPad)

	color := ButtonColor
	if c.hovered(r) {
		color = HoverColor
	}
	c.rect(r, color, 1)
	c.text(label, r.X+buttonPad, r.Y+buttonPad/2, TextColor)

	return c.clicked(r)
}

// TabBar draws a row of tabs and returns the selected index, remembered per bar id.
func (c *Context) TabBar(id string, labels ...string) int {
	if len(labels) == 0 {
		return -1
	}
	key := c.id(id)
	active := c.state.tabs[key]
	if active < 0 || active >= len(labels) {
		active = 0
	}

	rects := make([]Rect, len(labels))
	h := c.line + buttonPad
	for i, label := range labels {
		w := c.textWidth(label) + 2*buttonPad
		if i == 0 {
			rects[i] = c.next(label, w, h)
		} else {
			rects[i] = c.nextInRow(label, rects[i-1], w, h)
		}
		if c.clicked(rects[i]) {
			active = i
		}
	}
	c.state.tabs[key] = active

	for i, label := range labels {
		r := rects[i]
		color := ButtonColor
		switch {
		case i == active:
			color = TitleColor
		case c.hovered(r):
			color = HoverColor
		}
		c.rect(r, color, 1)
		c.text(label, r.X+buttonPad, r.Y+buttonPad/2, TextColor)
	}
	return active
}
