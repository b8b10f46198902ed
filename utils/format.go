// Package utils normalizes raw byte-string fields from ledger and chain
// payloads into the canonical text forms stored in the mirror.
package utils

import (
	"encoding/hex"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// HexAddress renders raw address bytes as a 0x-prefixed 20-byte hex string.
// Leading zero padding (e.g. a 32-byte left-padded word) is stripped; an
// empty or all-zero input normalizes to the canonical zero address.
func HexAddress(b []byte) string {
	return ethcommon.BytesToAddress(b).Hex()
}

// HexHash renders raw hash bytes as a 0x-prefixed 32-byte hex string,
// left-padding short inputs.
func HexHash(b []byte) string {
	return ethcommon.BytesToHash(b).Hex()
}

// HexBytes renders arbitrary bytes as 0x-prefixed hex without any width
// normalization. Used for signatures.
func HexBytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// DecimalString renders big-endian unsigned integer bytes as a decimal
// string. Empty input is "0".
func DecimalString(b []byte) string {
	return new(big.Int).SetBytes(b).String()
}
