// Command orientctl is a small inspection tool for the orientation
// algebra: list the 24 rotations, cycle a packed byte through presets,
// compose two orientations, or print where a rotation sends a face.
// It exists for the game-logic "preset cycling" collaborator spec.md
// §6 describes, not as a production asset pipeline tool.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gekko3d/voxorient"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "orientctl",
		Short: "Inspect and manipulate the cube orientation algebra",
	}
	root.AddCommand(listCmd(), cycleCmd(), composeCmd(), faceCmd())
	return root
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all 24 rotations with their packed byte",
		RunE: func(cmd *cobra.Command, args []string) error {
			for idx := 0; idx < orient.NumRotations; idx++ {
				r := orient.RotationFromIndex(idx)
				fmt.Printf("%2d  %-28s 0x%02x\n", idx, r, r.Pack())
			}
			return nil
		},
	}
}

func cycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle <packed-byte> <offset>",
		Short: "Cycle a packed Rotation byte by offset presets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseByte(args[0])
			if err != nil {
				return err
			}
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid offset %q: %w", args[1], err)
			}
			r := orient.UnpackRotation(b).Cycle(offset)
			fmt.Printf("%s  0x%02x\n", r, r.Pack())
			return nil
		},
	}
}

func composeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose <packed-byte-a> <packed-byte-b>",
		Short: "Reorient Orientation a by Orientation b (apply a, then b), verifying the Deorient round-trip",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseByte(args[0])
			if err != nil {
				return err
			}
			b, err := parseByte(args[1])
			if err != nil {
				return err
			}
			oa := orient.UnpackOrientation(a)
			ob := orient.UnpackOrientation(b)
			result := oa.Reorient(ob)
			fmt.Printf("%s  0x%02x\n", result, result.Pack())

			if back := result.Deorient(ob); back != oa {
				return fmt.Errorf("round-trip check failed: Deorient(Reorient(a, b), b) = %s, want %s", back, oa)
			}
			fmt.Println("round-trip ok: Deorient(Reorient(a, b), b) == a")
			return nil
		},
	}
}

func faceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "face <packed-byte> <face>",
		Short: "Print reface(o, face) for a packed Orientation byte",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseByte(args[0])
			if err != nil {
				return err
			}
			f, err := parseFace(args[1])
			if err != nil {
				return err
			}
			o := orient.UnpackOrientation(b)
			fmt.Println(o.Reface(f))
			return nil
		},
	}
}

func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid packed byte %q: %w", s, err)
	}
	return byte(v), nil
}

func parseFace(s string) (orient.Face, error) {
	switch s {
	case "+Y", "up":
		return orient.PosY, nil
	case "-Y", "down":
		return orient.NegY, nil
	case "+X", "right":
		return orient.PosX, nil
	case "-X", "left":
		return orient.NegX, nil
	case "+Z", "forward":
		return orient.PosZ, nil
	case "-Z", "backward":
		return orient.NegZ, nil
	default:
		return 0, fmt.Errorf("unrecognized face %q (want one of +Y -Y +X -X +Z -Z)", s)
	}
}
