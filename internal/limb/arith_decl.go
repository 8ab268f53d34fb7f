//go:build !limb32 && (amd64 || arm64) && !purego

// This file links the vector kernels of math/big into the package. They are
// assembly on amd64 and arm64 and operate on big.Word, which has the same size
// and representation as a 64-bit Limb on those architectures.
//
// The functions below are unexported in math/big and reached with
// //go:linkname. They are on math/big's list of symbols kept stable for
// external linkers, but the signatures must match exactly; review them against
// math/big/arith_decl.go after a Go upgrade. Building with the purego tag
// disables this path.

package limb

import (
	"math/big"
	"unsafe"
)

//go:linkname addVV math/big.addVV
func addVV(z, x, y []big.Word) (c big.Word)

//go:linkname subVV math/big.subVV
func subVV(z, x, y []big.Word) (c big.Word)

//go:linkname addVW math/big.addVW
func addVW(z, x []big.Word, y big.Word) (c big.Word)

//go:linkname subVW math/big.subVW
func subVW(z, x []big.Word, y big.Word) (c big.Word)

//go:linkname shlVU math/big.shlVU
func shlVU(z, x []big.Word, s uint) (c big.Word)

//go:linkname mulAddVWW math/big.mulAddVWW
func mulAddVWW(z, x []big.Word, y, r big.Word) (c big.Word)

//go:linkname addMulVVW math/big.addMulVVW
func addMulVVW(z, x []big.Word, y big.Word) (c big.Word)

// word is the math/big digit type the linked kernels operate on.
type word = big.Word

// words reinterprets a limb slice as a big.Word slice without copying.
func words(x []Limb) []big.Word {
	return unsafe.Slice((*big.Word)(unsafe.Pointer(unsafe.SliceData(x))), len(x))
}

// Accelerated reports whether vector operations use the math/big kernels.
const Accelerated = true
