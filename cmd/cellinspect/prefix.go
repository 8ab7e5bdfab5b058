package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/forestrie/go-cells/boc"

	"github.com/urfave/cli/v2"
)

var cmdPrefix = &cli.Command{
	Name:      "prefix",
	Usage:     "identify the variant of a bag-of-cells header",
	ArgsUsage: `<hex>`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "read the header from a serialized BOC file instead of an argument",
		},
	},
	Action: runPrefix,
}

func runPrefix(cctx *cli.Context) error {
	w := cctx.App.Writer
	var raw []byte
	if path := cctx.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		raw = make([]byte, boc.HeaderBytes)
		n, err := io.ReadFull(f, raw)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		raw = raw[:n]
		slog.Debug("read header", "path", path, "bytes", n)
	} else {
		arg := cctx.Args().First()
		if arg == "" {
			return fmt.Errorf("need to provide a hex header or --file")
		}
		b, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(arg), "0x"))
		if err != nil {
			return fmt.Errorf("decoding hex: %w", err)
		}
		raw = b
	}

	// A bare prefix is enough to name the variant.
	if len(raw) < boc.HeaderBytes {
		p, err := boc.ParsePrefix(raw)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "prefix: %s\n", p)
		return nil
	}

	h, err := boc.DecodeHeader(raw)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "prefix: %s\n", h.Prefix)
	fmt.Fprintf(w, "has_index: %t\n", h.Flags.HasIndex)
	fmt.Fprintf(w, "has_crc32c: %t\n", h.Flags.HasCRC32C)
	fmt.Fprintf(w, "has_cache_bits: %t\n", h.Flags.HasCacheBits)
	fmt.Fprintf(w, "ref_size: %d\n", h.Flags.RefSize)
	return nil
}
