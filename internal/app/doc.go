// Package app is the composition root of navigator.
//
// # Overview
//
// Run wires the pieces together in order:
//
//  1. Load ~/.config/navigator/config.toml (or the given path)
//  2. Open the diagnostic log when a log path is configured
//  3. Read the outline (argument, file or stdin) and build the forest
//  4. Create the search engine and the navigation controller
//  5. Run the terminal UI until the user commits or quits
//  6. Print the committed name, or full path, to stdout
//
// Flags win over the config file, which wins over saved preferences. The
// theme is the only value read from preferences.
//
// # Error Handling
//
// Configuration, input and terminal errors are returned wrapped with the step
// that failed ("load config: ...", "load input: ..."). Quitting without a
// selection is not an error and prints nothing.
package app
