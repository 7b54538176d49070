package ui

// Widget geometry.
const (
	// searchHeight is the height of the search and info row, borders included.
	searchHeight = 3

	// infoWidth is the width of the info box, borders included.
	infoWidth = 10

	// footerHeight is the status line below the list.
	footerHeight = 1

	// helpWidth is the width of the help modal.
	helpWidth = 44

	// minListHeight keeps at least one row visible on tiny terminals.
	minListHeight = 3
)
