package widget

// TreeNode draws a collapsible header. When it returns true the caller adds
// the children and must call TreePop.
func (c *Context) TreeNode(label string) bool {
	key := c.id(label)
	open := c.state.open[key]

	r := c.next(label, c.textWidth("+ "+label), c.line)
	if c.clicked(r) {
		open = !open
		c.state.open[key] = open
	}
	marker := "+ "
	if open {
		marker = "- "
	}

	color := TextColor
	if c.hovered(r) {
		color = ThumbColor
	}
	c.text(marker+label, r.X, r.Y, color)

	if open {
		c.ids = append(c.ids, label)
		c.indent += Indent
	}
	return open
}

// TreePop closes the innermost open TreeNode.
func (c *Context) TreePop() {
	if len(c.ids) == 0 {
		return
	}
	c.ids = c.ids[:len(c.ids)-1]
	c.indent -= Indent
}
