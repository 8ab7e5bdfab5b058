package cell

import "encoding/binary"

func readU64BE(b []byte) uint64     { return binary.BigEndian.Uint64(b) }
func writeU64BE(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }
