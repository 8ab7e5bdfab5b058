package boc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixValues(t *testing.T) {
	require.Equal(t, [4]byte{0x68, 0xff, 0x65, 0xf3}, SerializedBocIdx.Bytes())
	require.Equal(t, [4]byte{0xac, 0xc3, 0xa7, 0x28}, SerializedBocIdxCrc32c.Bytes())
	require.Equal(t, [4]byte{0xb5, 0xee, 0x9c, 0x72}, SerializedBoc.Bytes())
}

func TestParsePrefixRoundTrip(t *testing.T) {
	for _, p := range Prefixes {
		t.Run(p.String(), func(t *testing.T) {
			b := p.Bytes()
			got, err := ParsePrefix(b[:])
			require.NoError(t, err)
			require.Equal(t, p, got)
		})
	}
}

func TestParsePrefixRejects(t *testing.T) {
	_, err := ParsePrefix([]byte{0xb5, 0xee, 0x9c})
	require.ErrorIs(t, err, ErrShortHeader)

	_, err = ParsePrefix([]byte{0xde, 0xad, 0xbe, 0xef})
	require.ErrorIs(t, err, ErrUnknownPrefix)
	require.Equal(t, "Prefix(deadbeef)", Prefix(0xdeadbeef).String())
}

func TestPrefixImpliedFlags(t *testing.T) {
	tests := []struct {
		p        Prefix
		hasIndex bool
		hasCRC   bool
	}{
		{SerializedBocIdx, true, false},
		{SerializedBocIdxCrc32c, true, true},
		{SerializedBoc, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			require.Equal(t, tt.hasIndex, tt.p.HasIndex())
			require.Equal(t, tt.hasCRC, tt.p.HasCRC32C())
		})
	}
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags(0b1100_0010)
	require.NoError(t, err)
	require.Equal(t, Flags{HasIndex: true, HasCRC32C: true, RefSize: 2}, f)

	f, err = ParseFlags(0b0011_1001)
	require.NoError(t, err)
	require.Equal(t, Flags{HasCacheBits: true, Reserved: 3, RefSize: 1}, f)

	b, err := f.Byte()
	require.NoError(t, err)
	require.Equal(t, byte(0b0011_1001), b)

	_, err = ParseFlags(0b1000_0000)
	require.ErrorIs(t, err, ErrBadRefSize)
	_, err = ParseFlags(0b0000_0101)
	require.ErrorIs(t, err, ErrBadRefSize)
}

func TestFlagsByteRejects(t *testing.T) {
	_, err := Flags{RefSize: 0}.Byte()
	require.ErrorIs(t, err, ErrBadRefSize)
	_, err = Flags{RefSize: 1, Reserved: 4}.Byte()
	require.ErrorIs(t, err, ErrBadFlags)
}

func TestHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		h    Header
		want []byte
	}{
		{
			"generic crc",
			Header{Prefix: SerializedBoc, Flags: Flags{HasCRC32C: true, RefSize: 1}},
			[]byte{0xb5, 0xee, 0x9c, 0x72, 0x41},
		},
		{
			"generic idx cache",
			Header{Prefix: SerializedBoc, Flags: Flags{HasIndex: true, HasCacheBits: true, RefSize: 4}},
			[]byte{0xb5, 0xee, 0x9c, 0x72, 0xa4},
		},
		{
			"idx",
			Header{Prefix: SerializedBocIdx, Flags: Flags{HasIndex: true, RefSize: 3}},
			[]byte{0x68, 0xff, 0x65, 0xf3, 0x03},
		},
		{
			"idx crc32c",
			Header{Prefix: SerializedBocIdxCrc32c, Flags: Flags{HasIndex: true, HasCRC32C: true, RefSize: 2}},
			[]byte{0xac, 0xc3, 0xa7, 0x28, 0x02},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, HeaderBytes)
			require.NoError(t, EncodeHeader(buf, tt.h))
			require.Equal(t, tt.want, buf)

			got, err := DecodeHeader(buf)
			require.NoError(t, err)
			require.Equal(t, tt.h, got)
		})
	}
}

func TestHeaderRejects(t *testing.T) {
	_, err := DecodeHeader([]byte{0xb5, 0xee, 0x9c, 0x72})
	require.ErrorIs(t, err, ErrShortHeader)

	_, err = DecodeHeader([]byte{0x68, 0xff, 0x65, 0xf3, 0x09})
	require.ErrorIs(t, err, ErrBadRefSize)

	buf := make([]byte, HeaderBytes)
	err = EncodeHeader(buf, Header{Prefix: SerializedBocIdx, Flags: Flags{HasIndex: true, HasCRC32C: true, RefSize: 1}})
	require.ErrorIs(t, err, ErrFlagsMismatch)
	err = EncodeHeader(buf, Header{Prefix: SerializedBocIdx, Flags: Flags{RefSize: 1}})
	require.ErrorIs(t, err, ErrFlagsMismatch)
	err = EncodeHeader(buf, Header{Prefix: Prefix(1), Flags: Flags{RefSize: 1}})
	require.ErrorIs(t, err, ErrUnknownPrefix)
	err = EncodeHeader(buf[:2], Header{Prefix: SerializedBoc, Flags: Flags{RefSize: 1}})
	require.ErrorIs(t, err, ErrShortHeader)

	// Nothing was written by the failed encodes.
	require.Equal(t, make([]byte, HeaderBytes), buf)
}
