// Command systheme prints and follows the operating system's appearance settings.
package main

import (
	"runtime"

	"github.com/bnema/systheme/internal/cli/cmd"
	"github.com/bnema/systheme/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// AppKit observers must be registered from the main thread
	runtime.LockOSThread()
}

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
