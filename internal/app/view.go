package app

// CenterViewVerticallyAroundCursor scrolls so the primary cursor's line is
// in the middle of the view.
func (a *Application) CenterViewVerticallyAroundCursor() error {
	line := a.PrimaryCursorPosition().Line
	next, err := a.view.CenterVerticallyAround(line, a.buf)
	if err != nil {
		return viewError("center_view", err)
	}
	a.view = next
	return nil
}

// ScrollViewUp scrolls the view up by amount lines.
func (a *Application) ScrollViewUp(amount int) error {
	next, err := a.view.ScrollUp(amount)
	if err != nil {
		return viewError("scroll_up", err)
	}
	a.view = next
	return nil
}

// ScrollViewDown scrolls the view down by amount lines.
func (a *Application) ScrollViewDown(amount int) error {
	next, err := a.view.ScrollDown(amount, a.buf)
	if err != nil {
		return viewError("scroll_down", err)
	}
	a.view = next
	return nil
}

// ScrollViewLeft scrolls the view left by amount columns.
func (a *Application) ScrollViewLeft(amount int) error {
	next, err := a.view.ScrollLeft(amount)
	if err != nil {
		return viewError("scroll_left", err)
	}
	a.view = next
	return nil
}

// ScrollViewRight scrolls the view right by amount columns.
func (a *Application) ScrollViewRight(amount int) error {
	next, err := a.view.ScrollRight(amount, a.buf)
	if err != nil {
		return viewError("scroll_right", err)
	}
	a.view = next
	return nil
}

// ScrollToCursor moves the view just enough to show the primary cursor.
func (a *Application) ScrollToCursor() {
	pos := a.PrimaryCursorPosition()
	a.view = a.view.FollowCursor(pos.Line, pos.Column)
}
