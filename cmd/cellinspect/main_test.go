package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forestrie/go-cells/boc"
	"github.com/forestrie/go-cells/cell"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"cellinspect"}, args...))
	return out.String(), err
}

func TestPrefixCommand(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
		err  error
	}{
		{
			name: "generic crc32c",
			arg:  "b5ee9c7241",
			want: "prefix: SerializedBoc\nhas_index: false\nhas_crc32c: true\nhas_cache_bits: false\nref_size: 1\n",
		},
		{
			name: "0x prefixed upper case idx",
			arg:  "0x68FF65F303",
			want: "prefix: SerializedBocIdx\nhas_index: true\nhas_crc32c: false\nhas_cache_bits: false\nref_size: 3\n",
		},
		{
			name: "bare prefix",
			arg:  "acc3a728",
			want: "prefix: SerializedBocIdxCrc32c\n",
		},
		{name: "unknown prefix", arg: "deadbeef01", err: boc.ErrUnknownPrefix},
		{name: "bad ref size", arg: "b5ee9c7280", err: boc.ErrBadRefSize},
		{name: "short prefix", arg: "b5ee9c", err: boc.ErrShortHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, "prefix", tt.arg)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestPrefixCommandRejectsBadInput(t *testing.T) {
	_, err := runApp(t, "prefix", "zz")
	require.ErrorContains(t, err, "decoding hex")

	_, err = runApp(t, "prefix")
	require.ErrorContains(t, err, "--file")
}

func TestPrefixCommandFile(t *testing.T) {
	dir := t.TempDir()

	full := filepath.Join(dir, "full.boc")
	require.NoError(t, os.WriteFile(full, []byte{0xb5, 0xee, 0x9c, 0x72, 0xc2, 0x01, 0x02, 0x03}, 0o644))
	out, err := runApp(t, "prefix", "--file", full)
	require.NoError(t, err)
	require.Contains(t, out, "prefix: SerializedBoc\n")
	require.Contains(t, out, "has_index: true\n")
	require.Contains(t, out, "has_crc32c: true\n")
	require.Contains(t, out, "ref_size: 2\n")

	// A file shorter than a header still names its variant.
	short := filepath.Join(dir, "short.boc")
	require.NoError(t, os.WriteFile(short, []byte{0x68, 0xff, 0x65, 0xf3}, 0o644))
	out, err = runApp(t, "prefix", "-f", short)
	require.NoError(t, err)
	require.Equal(t, "prefix: SerializedBocIdx\n", out)

	empty := filepath.Join(dir, "empty.boc")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = runApp(t, "prefix", "--file", empty)
	require.ErrorIs(t, err, io.EOF)

	_, err = runApp(t, "prefix", "--file", filepath.Join(dir, "missing.boc"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBitsCommand(t *testing.T) {
	five := strings.Repeat("0", cell.IntBits-3) + "101"

	tests := []struct {
		name string
		args []string
		want string
		err  error
	}{
		{
			name: "plain",
			args: []string{"1011"},
			want: "length: 4\nremaining: 1011\n",
		},
		{
			name: "load then int",
			args: []string{"--load", "3", "--load-int", "111" + five},
			want: "length: 260\nloaded: 111\nint257: 5\nremaining: \n",
		},
		{
			name: "load only",
			args: []string{"--load", "2", "0110"},
			want: "length: 4\nloaded: 01\nremaining: 10\n",
		},
		{name: "load past end", args: []string{"--load", "5", "101"}, err: cell.ErrUnderflow},
		{name: "int past end", args: []string{"--load-int", "101"}, err: cell.ErrUnderflow},
		{name: "load too wide", args: []string{"--load", "2000", "1"}, err: cell.ErrCapacityExceeded},
		{name: "bad char", args: []string{"10x"}, err: cell.ErrBadBitString},
		{name: "too long", args: []string{strings.Repeat("1", cell.MaxBits+1)}, err: cell.ErrCapacityExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, append([]string{"bits"}, tt.args...)...)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestTreeCommand(t *testing.T) {
	out, err := runApp(t, "tree", "--depth", "2", "--fanout", "3", "--payload-bits", "4")
	require.NoError(t, err)
	require.Contains(t, out, "[4 bits, 3 refs] 0000")
	require.Contains(t, out, "level: 2\n")
	require.Contains(t, out, "cells: 4\n")
	require.Contains(t, out, "bits: 16\n")

	_, err = runApp(t, "tree", "--fanout", "5")
	require.ErrorIs(t, err, cell.ErrTooManyRefs)
}

func TestUnknownLogLevel(t *testing.T) {
	_, err := runApp(t, "--log-level", "loud", "bits", "1")
	require.ErrorContains(t, err, "unknown --log-level")

	out, err := runApp(t, "--log-level", "debug", "bits", "1")
	require.NoError(t, err)
	require.Equal(t, "length: 1\nremaining: 1\n", out)
}
