package upload

import (
	"bytes"
	"encoding/binary"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// sniffDimensions extracts pixel dimensions from an encoded image without a
// full decode. Failures yield zeros rather than an error so an odd encoding
// does not block the upload.
func sniffDimensions(data []byte) (width, height int) {
	if w, h, ok := webpDimensions(data); ok {
		return w, h
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// webpDimensions parses the RIFF container headers for the VP8, VP8L and
// VP8X chunk formats. The standard library has no webp decoder.
func webpDimensions(data []byte) (width, height int, ok bool) {
	if len(data) < 16 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		return 0, 0, false
	}
	switch string(data[12:16]) {
	case "VP8 ":
		// Lossy: dimensions live in the frame header after the 3-byte
		// frame tag and the 3-byte start code.
		if len(data) < 30 || data[23] != 0x9d || data[24] != 0x01 || data[25] != 0x2a {
			return 0, 0, false
		}
		w := int(binary.LittleEndian.Uint16(data[26:28]) & 0x3fff)
		h := int(binary.LittleEndian.Uint16(data[28:30]) & 0x3fff)
		return w, h, true
	case "VP8L":
		if len(data) < 25 || data[20] != 0x2f {
			return 0, 0, false
		}
		bits := binary.LittleEndian.Uint32(data[21:25])
		w := int(bits&0x3fff) + 1
		h := int((bits>>14)&0x3fff) + 1
		return w, h, true
	case "VP8X":
		if len(data) < 30 {
			return 0, 0, false
		}
		w := int(uint32(data[24])|uint32(data[25])<<8|uint32(data[26])<<16) + 1
		h := int(uint32(data[27])|uint32(data[28])<<8|uint32(data[29])<<16) + 1
		return w, h, true
	}
	return 0, 0, false
}
