package limb

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the host capabilities relevant to the vector kernels.
type Features struct {
	Arch        string
	Accelerated bool
	ADX         bool
	BMI2        bool
	AVX2        bool
	ASIMD       bool
}

// DetectFeatures reports the CPU features the runtime will use for limb
// arithmetic.
func DetectFeatures() Features {
	return Features{
		Arch:        runtime.GOARCH,
		Accelerated: Accelerated,
		ADX:         cpu.X86.HasADX,
		BMI2:        cpu.X86.HasBMI2,
		AVX2:        cpu.X86.HasAVX2,
		ASIMD:       cpu.ARM64.HasASIMD,
	}
}

// String returns a compact summary such as "amd64 accelerated adx,bmi2,avx2".
func (f Features) String() string {
	var flags []string
	for _, fl := range []struct {
		name string
		on   bool
	}{
		{"adx", f.ADX},
		{"bmi2", f.BMI2},
		{"avx2", f.AVX2},
		{"asimd", f.ASIMD},
	} {
		if fl.on {
			flags = append(flags, fl.name)
		}
	}
	mode := "portable"
	if f.Accelerated {
		mode = "accelerated"
	}
	s := f.Arch + " " + mode
	if len(flags) > 0 {
		s += " " + strings.Join(flags, ",")
	}
	return s
}
