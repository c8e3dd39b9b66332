package controller

import (
	"crypto/aes"
	"math/rand"

	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/sliceops"
)

type resolvingListEntry struct {
	peer     rootcanal.AddressWithType
	peerIrk  [16]byte
	localIrk [16]byte
}

// ah is the random address hash function [Vol 3, Part H, 2.2.2]. irk and
// prand use HCI byte order, least significant byte first.
func ah(irk [16]byte, prand [3]byte) [3]byte {
	key := sliceops.SwapBuf(irk[:])
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	var in, out [16]byte
	in[13], in[14], in[15] = prand[2], prand[1], prand[0]
	block.Encrypt(out[:], in[:])

	return [3]byte{out[15], out[14], out[13]}
}

// resolveRpa reports whether a was generated from irk.
func resolveRpa(a rootcanal.Address, irk [16]byte) bool {
	if !a.IsRpa() {
		return false
	}
	hash := ah(irk, [3]byte{a[3], a[4], a[5]})
	return hash == [3]byte{a[0], a[1], a[2]}
}

// generateRpa derives a fresh resolvable private address from irk.
func generateRpa(irk [16]byte, r *rand.Rand) rootcanal.Address {
	var a rootcanal.Address
	a[3] = uint8(r.Intn(256))
	a[4] = uint8(r.Intn(256))
	a[5] = uint8(r.Intn(64)) | 0x40

	hash := ah(irk, [3]byte{a[3], a[4], a[5]})
	a[0], a[1], a[2] = hash[0], hash[1], hash[2]
	return a
}
