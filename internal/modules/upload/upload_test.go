package upload

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(filename, contentType string, size int64) *multipart.FileHeader {
	h := &multipart.FileHeader{Filename: filename, Size: size}
	h.Header = textproto.MIMEHeader{}
	if contentType != "" {
		h.Header.Set("Content-Type", contentType)
	}
	return h
}

func TestCheckFile(t *testing.T) {
	assert.NoError(t, checkFile(header("photo.png", "image/png", 1024)))
	assert.NoError(t, checkFile(header("PHOTO.JPG", "image/jpeg", 1024)))
	assert.NoError(t, checkFile(header("anim.webp", "", 1024)))

	assert.NoError(t, checkFile(header("photo.png", "image/png; charset=binary", 1024)))

	err := checkFile(header("doc.pdf", "application/pdf", 1024))
	assert.ErrorIs(t, err, errBadType)

	err = checkFile(header("photo.png", "text/html", 1024))
	assert.ErrorIs(t, err, errBadType)

	// An image MIME type outside the allow-list does not pass either.
	err = checkFile(header("photo.png", "image/svg+xml", 1024))
	assert.ErrorIs(t, err, errBadType)

	err = checkFile(header("photo.png", "image/tiff", 1024))
	assert.ErrorIs(t, err, errBadType)

	err = checkFile(header("photo.png", "image/png", maxUploadSize+1))
	assert.ErrorIs(t, err, errTooLarge)
}

func TestBuildKey(t *testing.T) {
	key := buildKey("My Photo.PNG", "")
	assert.True(t, strings.HasPrefix(key, defaultFolder+"/my-photo-"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)

	key = buildKey("banner.jpg", "/projects/")
	assert.True(t, strings.HasPrefix(key, "projects/banner-"), key)

	// Keys are unique per upload.
	assert.NotEqual(t, buildKey("a.png", "x"), buildKey("a.png", "x"))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "hello-world", sanitizeName("Hello World"))
	assert.Equal(t, "a-b_c", sanitizeName("A b_C"))
	assert.Equal(t, "image", sanitizeName("日本語"))
}

func TestSniffDimensionsPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 320, 200))))

	w, h := sniffDimensions(buf.Bytes())
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)
}

func TestSniffDimensionsGarbage(t *testing.T) {
	w, h := sniffDimensions([]byte("not an image"))
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestWebpDimensionsLossless(t *testing.T) {
	// Minimal VP8L header for a 100x50 image.
	data := make([]byte, 25)
	copy(data[0:4], "RIFF")
	copy(data[8:12], "WEBP")
	copy(data[12:16], "VP8L")
	data[20] = 0x2f
	bits := uint32(100-1) | uint32(50-1)<<14
	binary.LittleEndian.PutUint32(data[21:25], bits)

	w, h, ok := webpDimensions(data)
	require.True(t, ok)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
}

func TestWebpDimensionsExtended(t *testing.T) {
	// VP8X stores width-1 and height-1 as 24-bit little-endian values.
	data := make([]byte, 30)
	copy(data[0:4], "RIFF")
	copy(data[8:12], "WEBP")
	copy(data[12:16], "VP8X")
	put24 := func(off, v int) {
		data[off] = byte(v)
		data[off+1] = byte(v >> 8)
		data[off+2] = byte(v >> 16)
	}
	put24(24, 640-1)
	put24(27, 480-1)

	w, h, ok := webpDimensions(data)
	require.True(t, ok)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestWebpDimensionsRejectsOther(t *testing.T) {
	_, _, ok := webpDimensions([]byte("RIFF1234WAVEfmt "))
	assert.False(t, ok)

	_, _, ok = webpDimensions([]byte("short"))
	assert.False(t, ok)
}
