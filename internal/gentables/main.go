// Command gentables prints the reface table, as computed by the
// package's public Reface over every rotation and face, as Go source
// on stdout. The source_face and face_angle tables are not printed. It
// exists so a coordinate-convention
// change only requires editing the six-face neighbor table in
// face.go and rerunning this: the init()-time tables in tables_gen.go
// already do the same computation at every process start, so running
// this generator is an optional optimization, not a correctness
// requirement.
package main

import (
	"fmt"

	"github.com/gekko3d/voxorient"
)

func main() {
	fmt.Println("// Code generated by internal/gentables; DO NOT EDIT unless")
	fmt.Println("// the reference coordinate convention itself is changing.")
	fmt.Println()
	fmt.Println("var refaceLiteral = [...]orient.Face{")
	for idx := 0; idx < orient.NumRotations; idx++ {
		r := orient.RotationFromIndex(idx)
		for f := orient.Face(0); f < orient.NumFaces; f++ {
			fmt.Printf("\t%s, // rotation %d face %d\n", r.Reface(f), idx, f)
		}
	}
	fmt.Println("}")
}
