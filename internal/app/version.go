package app

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/limbcalc/internal/config"
	"github.com/agbru/limbcalc/internal/limb"
)

// Build information, set at link time:
//
//	go build -ldflags "-X github.com/agbru/limbcalc/internal/app.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version. Only flags before
// the command count, so an operand such as "-V" after "eval" is not taken.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		case "--", config.CommandEval, config.CommandCheck, config.CommandOps,
			config.CommandRepl, config.CommandCompletion:
			return false
		}
	}
	return false
}

// PrintVersion writes the build information and the limb configuration.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "limbcalc %s\n", Version)
	fmt.Fprintf(out, "  commit:  %s\n", Commit)
	fmt.Fprintf(out, "  built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "  limbs:   %d-bit, %s\n", limb.Width, limb.DetectFeatures())
}
