package main

import (
	"fmt"
	"log/slog"

	"github.com/forestrie/go-cells/cell"

	"github.com/urfave/cli/v2"
)

var cmdBits = &cli.Command{
	Name:      "bits",
	Usage:     "load a bit string into a slice and read values from it",
	ArgsUsage: `<bitstring>`,
	Flags: []cli.Flag{
		&cli.UintFlag{
			Name:  "load",
			Usage: "split off this many bits from the front before anything else",
		},
		&cli.BoolFlag{
			Name:  "load-int",
			Usage: "read a 257 bit integer after --load",
		},
	},
	Action: runBits,
}

func runBits(cctx *cli.Context) error {
	w := cctx.App.Writer
	bits, err := cell.ParseBitString(cctx.Args().First())
	if err != nil {
		return err
	}
	s, err := cell.NewSlice(bits)
	if err != nil {
		return err
	}
	slog.Debug("built slice", "bits", s.Len())
	fmt.Fprintf(w, "length: %d\n", s.Len())

	if cctx.IsSet("load") {
		n := cctx.Uint("load")
		if n > cell.MaxBits {
			return fmt.Errorf("--load %d: %w", n, cell.ErrCapacityExceeded)
		}
		head, err := s.LoadBits(uint16(n))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "loaded: %s\n", head)
	}

	if cctx.Bool("load-int") {
		v, err := s.LoadInt()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "int257: %s\n", v)
	}

	fmt.Fprintf(w, "remaining: %s\n", s)
	return nil
}
