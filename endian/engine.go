// Package endian provides byte order utilities for reasoning about raw byte
// views of in-memory buffers.
//
// The raw byte views exposed by the buffer and array packages are
// reinterpretations of native memory, so their contents depend on the host
// byte order. This package combines encoding/binary's ByteOrder and
// AppendByteOrder interfaces into a single EndianEngine and reports which
// engine matches the host, letting callers (and this module's own tests)
// build expected byte images without hardcoding an architecture.
//
// All functions are safe for concurrent use; the returned engines are the
// stateless binary.LittleEndian and binary.BigEndian values.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations. It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness determines the host's byte order from a fixed integer value.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the LSB (0x00) is stored first,
	// on a big-endian host the MSB (0x01) is.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetNativeEngine returns the engine matching the host byte order.
//
// Use it to compute the expected contents of a raw byte view: encoding a
// value with the native engine yields exactly the bytes the view exposes.
func GetNativeEngine() EndianEngine {
	if IsNativeLittleEndian() {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
