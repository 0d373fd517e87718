package random

import (
	"crypto/rand"
	"encoding/binary"
)

func entropy32() uint32 {
	var data [4]byte
	if _, err := rand.Read(data[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint32(data[:])
}
