// Package types defines the core data types shared across vitestarter.
// This includes the Feature descriptor with its scripts and file templates,
// the ordered Selection of features chosen for a run, and the FS interface
// every file-touching package writes through.
package types
