package widget

// Text draws one line of text.
func (c *Context) Text(s string) {
	r := c.next("", c.textWidth(s), c.line)
	c.text(s, r.X, r.Y, TextColor)
}

// Separator draws a horizontal rule across the window.
func (c *Context) Separator() {
	r := c.next("", 0, 1)
	c.cmds = append(c.cmds, command{kind: cmdSeparator, rect: r, color: DimColor, alpha: 0.6})
}
