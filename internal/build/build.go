// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Number is the monotonic build identifier.
// It defaults to empty and can be overwritten by linker flags.
var Number = ""
