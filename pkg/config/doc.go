// Package config loads vitestarter's settings.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config, $XDG_CONFIG_HOME/vitestarter/config.toml
//  3. the project config, .vitestarter.toml in the project directory
//  4. VITESTARTER_* environment variables, where "_" separates keys
//     (VITESTARTER_INSTALL_COMMAND=pnpm sets install.command)
//
// Command-line flags are applied on top by the CLI.
package config
