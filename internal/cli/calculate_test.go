package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/limbcalc/internal/config"
	"github.com/agbru/limbcalc/internal/limb"
)

func TestPrintCheckConfig(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	cfg := config.AppConfig{Samples: 500, MaxBits: 256, Workers: 4, Timeout: time.Minute}
	PrintCheckConfig(cfg, 42, limb.Features{Arch: "amd64", ADX: true}, &buf)
	out := buf.String()
	for _, want := range []string{"500 samples", "256 bits", "Workers: 4", "seed: 42", "amd64"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output lacks %q:\n%s", want, out)
		}
	}
}
