package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-ewah/ewah"
)

func cardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "card <bitmap-file>",
		Short: "Print a compact bitmap's cardinality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBitmap(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.Cardinality())
			return nil
		},
	}
}

func combineCmd(name string, op func(a, b *ewah.Bitmap) *ewah.Bitmap) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   name + " <bitmap-a> <bitmap-b>",
		Short: "Combine two compact bitmaps with " + name,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readBitmap(args[0])
			if err != nil {
				return err
			}
			b, err := readBitmap(args[1])
			if err != nil {
				return err
			}
			return writeBitmap(op(a, b), outPath)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (defaults to stdout)")
	return cmd
}

func intersectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersects <bitmap-a> <bitmap-b>",
		Short: "Report whether two compact bitmaps share any set bit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readBitmap(args[0])
			if err != nil {
				return err
			}
			b, err := readBitmap(args[1])
			if err != nil {
				return err
			}
			if !ewah.Intersects(a, b) {
				fmt.Fprintln(cmd.OutOrStdout(), "false")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "true")
			return nil
		},
	}
}

func dumpCmd() *cobra.Command {
	var positions bool

	cmd := &cobra.Command{
		Use:   "dump <bitmap-file>",
		Short: "Print a textual view of a compact bitmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBitmap(args[0])
			if err != nil {
				return err
			}
			if !positions {
				return errors.Wrap(b.Dump(cmd.OutOrStdout()), "ewahctl: dump")
			}
			it := b.Iterator()
			for it.Next() {
				fmt.Fprintln(cmd.OutOrStdout(), it.Position())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&positions, "positions", false, "print set bit positions instead of the marker layout")
	return cmd
}
