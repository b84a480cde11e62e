package orient

// Pack encodes r into a single byte: bits 0-2 are the up tag, bits 3-4
// are the angle. The zero byte is the identity Rotation.
func (r Rotation) Pack() byte {
	return byte(r.angle)<<3 | byte(r.up)
}

// UnpackRotation decodes a byte produced by Pack. Bits above bit 4 are
// ignored, so a byte produced by Orientation.Pack can be passed here
// to recover just its rotation component.
func UnpackRotation(b byte) Rotation {
	return Rotation{
		up:    Face(b & 0x07),
		angle: (b >> 3) & 0x03,
	}
}

// Pack encodes o into a single byte: bits 0-2 up tag, bits 3-4 angle,
// bits 5-7 flip (x=bit5, y=bit6, z=bit7). The zero byte is the
// identity Orientation, so default-initialized storage never needs an
// explicit "no orientation" sentinel.
func (o Orientation) Pack() byte {
	return o.Rotation.Pack() | byte(o.Flip)<<5
}

// UnpackOrientation decodes a byte produced by Orientation.Pack.
func UnpackOrientation(b byte) Orientation {
	return Orientation{
		Rotation: UnpackRotation(b),
		Flip:     Flip(b >> 5),
	}
}
