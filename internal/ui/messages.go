package ui

// helpPagerMsg contains the result of a help pager run
type helpPagerMsg struct {
	err error
}
