// Package version holds the application version string.
package version

// Version is the current application version.
var Version = "0.3.1"
