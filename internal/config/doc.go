// Package config loads the optional versetab TOML configuration file.
//
// Lookup order when no path is given: ~/.config/versetab/config.toml, then
// versetab.toml in the working directory. A missing default file yields the
// built-in defaults; a missing file named explicitly is an error. Command
// line flags are applied on top of the loaded values by the CLI.
package config
