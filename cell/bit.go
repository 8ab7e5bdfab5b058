package cell

// bitAt returns the bit at index i where i=0 is the MSB of data[0].
func bitAt(data []byte, i int) bool {
	return data[i>>3]&(0x80>>uint(i&7)) != 0
}

// setBit sets or clears the bit at index i where i=0 is the MSB of data[0].
func setBit(data []byte, i int, v bool) {
	mask := byte(0x80 >> uint(i&7))
	if v {
		data[i>>3] |= mask
		return
	}
	data[i>>3] &^= mask
}

// bytesFor returns ceil(n/8).
func bytesFor(n int) int {
	return (n + 7) >> 3
}

// copyBits copies n bits from src at bit offset srcOff to dst at bit offset
// dstOff. Bits of dst outside the target range are left as they are.
//
// The caller must ensure both ranges are in bounds.
func copyBits(dst []byte, dstOff int, src []byte, srcOff int, n int) {
	if n <= 0 {
		return
	}
	// Whole bytes can be moved directly when both offsets are byte aligned.
	if dstOff&7 == 0 && srcOff&7 == 0 {
		full := n >> 3
		copy(dst[dstOff>>3:dstOff>>3+full], src[srcOff>>3:srcOff>>3+full])
		done := full << 3
		dstOff += done
		srcOff += done
		n -= done
	}
	for i := 0; i < n; i++ {
		setBit(dst, dstOff+i, bitAt(src, srcOff+i))
	}
}
