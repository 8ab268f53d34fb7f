package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/limbcalc/internal/config"
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/ui"
)

// PrintCheckConfig displays the settings of a self-check run: sample count,
// operand size, worker count, seed and the host environment.
func PrintCheckConfig(cfg config.AppConfig, seed uint64, features limb.Features, out io.Writer) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "%s\n", t.Title.Render("--- Self-check Configuration ---"))
	fmt.Fprintf(out, "Checking %s samples per property with operands up to %s bits, timeout %s.\n",
		t.Value.Render(fmt.Sprint(cfg.Samples)), t.Value.Render(fmt.Sprint(cfg.MaxBits)), t.Value.Render(cfg.Timeout.String()))
	fmt.Fprintf(out, "Workers: %s, seed: %s.\n",
		t.Value.Render(fmt.Sprint(cfg.Workers)), t.Value.Render(fmt.Sprint(seed)))
	fmt.Fprintf(out, "Environment: %s logical processors, Go %s, %d-bit limbs, %s.\n",
		t.Label.Render(fmt.Sprint(runtime.NumCPU())), t.Label.Render(runtime.Version()), limb.Width, features)
}
