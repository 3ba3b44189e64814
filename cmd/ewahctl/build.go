package main

import (
	"bufio"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-ewah/ewah"
)

func buildCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "build <positions-file>",
		Short: "Build a compact bitmap from a file of ascending, whitespace-separated positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, err := readPositions(args[0])
			if err != nil {
				return err
			}
			b, err := ewah.FromPositions(positions)
			if err != nil {
				return errors.Wrap(err, "ewahctl: build")
			}
			return writeBitmap(b, outPath)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (defaults to stdout)")
	return cmd
}

func readPositions(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ewahctl: opening positions file")
	}
	defer f.Close()

	var positions []uint64
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		n, err := strconv.ParseUint(scanner.Text(), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "ewahctl: parsing position %q", scanner.Text())
		}
		positions = append(positions, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "ewahctl: reading positions file")
	}
	return positions, nil
}

func writeBitmap(b *ewah.Bitmap, outPath string) error {
	if outPath == "" {
		_, err := b.WriteTo(os.Stdout)
		return errors.Wrap(err, "ewahctl: writing bitmap to stdout")
	}
	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "ewahctl: creating output file")
	}
	defer f.Close()
	_, err = b.WriteTo(f)
	return errors.Wrap(err, "ewahctl: writing bitmap")
}

func readBitmap(path string) (*ewah.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ewahctl: opening bitmap file")
	}
	defer f.Close()

	b := ewah.New()
	if _, err := b.ReadFrom(f); err != nil {
		return nil, errors.Wrap(err, "ewahctl: reading bitmap")
	}
	return b, nil
}
