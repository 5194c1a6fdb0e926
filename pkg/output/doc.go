// Package output writes the user-facing progress of a setup run.
//
// Two formats exist. FormatText writes plain lines and is used when output
// is piped, NO_COLOR is set or the terminal has no color support.
// FormatTerminal colors status symbols with pterm, styles headings with the
// lipgloss styles declared in styles.yaml and renders the closing summary
// as markdown with glamour.
//
// Diagnostics go through pkg/logging, never through this package.
package output
