// Package setup runs the scaffolding pipeline: select features, merge the
// manifest, write template files, save the manifest, install dependencies
// and print a summary.
//
// The manifest is read and merged before anything is written, so a
// malformed package.json aborts the run with the project untouched. File
// and manifest failures are fatal. A failed install is reported and the
// run still completes.
package setup
