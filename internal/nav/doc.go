// Package nav holds the navigation state of the browser: the path of folders
// entered so far, the cursor, the display mode and the entries currently on
// screen.
//
// A Controller never pops its root frame. Navigation (Expand and Back) is
// only honoured in structured mode; full-path mode lists everything below the
// folder that was current when the mode was switched on.
//
// The last successful search pattern is re-applied whenever the scope
// changes, so a filter typed in one folder keeps filtering after Expand or
// Back. FocusState decides whether keys go to the list or the search box.
package nav
