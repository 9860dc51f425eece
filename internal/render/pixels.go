package render

// FillRGBA unpacks 0x00RRGGBB pixels into opaque RGBA bytes in buf. buf must
// hold at least 4*len(pixels) bytes.
func FillRGBA(buf []byte, pixels []uint32) {
	for i, v := range pixels {
		base := i * 4
		buf[base+0] = uint8(v >> 16)
		buf[base+1] = uint8(v >> 8)
		buf[base+2] = uint8(v)
		buf[base+3] = 0xff
	}
}
