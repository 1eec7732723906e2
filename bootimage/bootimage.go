// Package bootimage validates the second-stage boot image that the mask
// ROM loads from the start of flash. The shell never reads the image at
// run time; it only has to be linked in place untouched.
package bootimage

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/ezrec/picoshell/translate"
)

var f = translate.From

const (
	BOOT2_SIZE    = 256                 // Size of the image in bytes.
	BOOT2_PAYLOAD = BOOT2_SIZE - 4      // Bytes covered by the checksum.
	CRC_POLY      = uint32(0x04c11db7)  // CRC-32/MPEG-2 polynomial.
	CRC_INIT      = uint32(0xffff_ffff) // CRC-32/MPEG-2 initial value.
)

var (
	ErrImageSize = errors.New(f("boot image size"))
)

// ErrChecksum reports a checksum mismatch.
type ErrChecksum struct {
	Want uint32
	Got  uint32
}

func (err *ErrChecksum) Error() string {
	return f("boot image checksum 0x%08x, expected 0x%08x", err.Got, err.Want)
}

// Image is a complete second-stage boot image.
type Image [BOOT2_SIZE]byte

// Checksum computes the unreflected CRC-32 used by the mask ROM.
func Checksum(data []byte) (crc uint32) {
	crc = CRC_INIT
	for _, b := range data {
		crc ^= uint32(b) << 24
		for range 8 {
			if crc&0x8000_0000 != 0 {
				crc = (crc << 1) ^ CRC_POLY
			} else {
				crc <<= 1
			}
		}
	}
	return
}

// Seal builds an image from a payload, appending its checksum.
func Seal(payload [BOOT2_PAYLOAD]byte) (img Image) {
	copy(img[:], payload[:])
	binary.LittleEndian.PutUint32(img[BOOT2_PAYLOAD:], Checksum(payload[:]))
	return
}

// Sum returns the checksum stored in the image.
func (img *Image) Sum() uint32 {
	return binary.LittleEndian.Uint32(img[BOOT2_PAYLOAD:])
}

// Verify checks the stored checksum against the payload.
func (img *Image) Verify() (err error) {
	want := Checksum(img[:BOOT2_PAYLOAD])
	if got := img.Sum(); got != want {
		err = &ErrChecksum{Want: want, Got: got}
	}
	return
}

// Load reads and verifies an image. The reader must hold exactly
// BOOT2_SIZE bytes.
func Load(rd io.Reader) (img *Image, err error) {
	img = &Image{}

	_, err = io.ReadFull(rd, img[:])
	if err != nil {
		img = nil
		err = ErrImageSize
		return
	}

	var extra [1]byte
	n, _ := rd.Read(extra[:])
	if n != 0 {
		img = nil
		err = ErrImageSize
		return
	}

	err = img.Verify()
	if err != nil {
		img = nil
	}

	return
}
