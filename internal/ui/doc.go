// Package ui provides the Bubble Tea terminal interface of navigator.
//
// # Layout
//
// The screen is split into three widgets and a status line:
//
//   - Search: a text input whose content is applied as a regex on every
//     keystroke. A pattern that does not compile is drawn in the danger
//     color and the list keeps showing the last valid result.
//   - Info: the number of displayed entries.
//   - List: the current scope, titled with the breadcrumb. Folders carry the
//     folder prefix, matched text and path joiners are colored by the theme.
//
// Widgets are a closed set (WidgetSearch, WidgetList, WidgetInfo) sharing
// title and content renderers; the focused widget gets the selected border
// color.
//
// # Keys
//
// In the list: j/k move, l/h enter and leave folders, g/G jump, ctrl+d/u
// page, / opens the search box, p toggles full paths, y copies, T cycles the
// theme, ? shows help, enter commits the selection and q quits. In the
// search box enter returns to the list (refused while nothing matches) and
// esc clears the pattern.
//
// # Output
//
// Run draws on stderr and reads keys from the terminal so that stdin can
// carry the outline and stdout the committed selection.
package ui
