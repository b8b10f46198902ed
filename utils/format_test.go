package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexAddress(t *testing.T) {
	addr := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa,
		0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00, 0x11, 0x22, 0x33, 0x44}

	got := HexAddress(addr)
	// Hex() applies EIP-55 checksum casing; compare case-insensitively.
	assert.Equal(t, "0x112233445566778899aabbccddeeff0011223344", strings.ToLower(got))

	// A 32-byte left-padded word yields the same address.
	padded := append(make([]byte, 12), addr...)
	assert.Equal(t, got, HexAddress(padded))

	assert.Equal(t, "0x0000000000000000000000000000000000000000", HexAddress(nil))
}

func TestHexHash(t *testing.T) {
	assert.Equal(t,
		"0x0000000000000000000000000000000000000000000000000000000000000001",
		HexHash([]byte{0x01}))
}

func TestHexBytes(t *testing.T) {
	assert.Equal(t, "0xdeadbeef", HexBytes([]byte{0xde, 0xad, 0xbe, 0xef}))
	assert.Equal(t, "0x", HexBytes(nil))
}

func TestDecimalString(t *testing.T) {
	assert.Equal(t, "0", DecimalString(nil))
	assert.Equal(t, "255", DecimalString([]byte{0xff}))
	assert.Equal(t, "65536", DecimalString([]byte{0x01, 0x00, 0x00}))
}
