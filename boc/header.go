package boc

import "fmt"

// Header is the prefix and descriptor byte that open every bag of cells.
type Header struct {
	Prefix Prefix
	Flags  Flags
}

// DecodeHeader decodes the first HeaderBytes bytes of b.
//
// For the indexed prefixes the flags are implied by the prefix and only the
// ref size is read from the descriptor byte.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderBytes {
		return Header{}, fmt.Errorf("%d bytes: %w", len(b), ErrShortHeader)
	}
	p, err := ParsePrefix(b)
	if err != nil {
		return Header{}, err
	}
	desc := b[PrefixBytes]

	if p == SerializedBoc {
		f, err := ParseFlags(desc)
		if err != nil {
			return Header{}, err
		}
		return Header{Prefix: p, Flags: f}, nil
	}

	if err := checkRefSize(desc); err != nil {
		return Header{}, err
	}
	return Header{
		Prefix: p,
		Flags: Flags{
			HasIndex:  p.HasIndex(),
			HasCRC32C: p.HasCRC32C(),
			RefSize:   desc,
		},
	}, nil
}

// EncodeHeader writes h into the first HeaderBytes bytes of dst.
//
// The indexed prefixes can only express the flags they imply; anything else
// fails with ErrFlagsMismatch.
func EncodeHeader(dst []byte, h Header) error {
	if len(dst) < HeaderBytes {
		return fmt.Errorf("%d bytes: %w", len(dst), ErrShortHeader)
	}
	if !h.Prefix.Valid() {
		return fmt.Errorf("%08x: %w", uint32(h.Prefix), ErrUnknownPrefix)
	}

	var desc byte
	if h.Prefix == SerializedBoc {
		b, err := h.Flags.Byte()
		if err != nil {
			return err
		}
		desc = b
	} else {
		if err := checkRefSize(h.Flags.RefSize); err != nil {
			return err
		}
		f := h.Flags
		if !f.HasIndex || f.HasCRC32C != h.Prefix.HasCRC32C() || f.HasCacheBits || f.Reserved != 0 {
			return fmt.Errorf("%s: %w", h.Prefix, ErrFlagsMismatch)
		}
		desc = f.RefSize
	}

	writeU32BE(dst[:PrefixBytes], uint32(h.Prefix))
	dst[PrefixBytes] = desc
	return nil
}
