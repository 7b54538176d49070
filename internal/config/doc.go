// Package config loads navigator's TOML configuration.
//
// # Overview
//
// Load reads ~/.config/navigator/config.toml (or an explicit path). A
// missing file is not an error: every field has a default. A file that
// exists but does not parse is an error.
//
// # Keys
//
//	selector  = "> "            # marker in front of the selected row
//	lame      = false           # plain titles, no emoji
//	theme     = "Nightfox"      # overrides the saved preference
//	separator = "\t"            # indentation token
//	log_file  = "~/navigator.log"
//
//	[prefixes]
//	search = "🔍"
//	list   = "📂"
//	folder = "📁"
//
//	[border]
//	selected = "#719cd6"        # empty uses the theme
//	default  = "#646464"
//
//	[search]
//	ignore_case = false
//
// Selector and separator are used verbatim so that whitespace tokens such as
// two spaces survive. Other string values are trimmed and empty values fall
// back to their defaults. Colors are normalized to lower-case "#rrggbb" or
// "#rgb".
package config
