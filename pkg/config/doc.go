// Package config loads cork settings.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/cork/config.toml or an explicit path;
//     .toml, .yaml and .yml files are accepted
//  3. CORK_<SECTION>_<KEY> environment variables
//  4. explicit overrides, usually command line flags
package config
