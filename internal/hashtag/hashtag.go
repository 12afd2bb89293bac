package hashtag

import (
	"strings"
)

// SlotNumber is the number of hash slots in a Redis Cluster.
const SlotNumber = 16384

// Key returns the part of key that is used for slot hashing: the content
// of the first non-empty {...} section, or the whole key otherwise.
func Key(key string) string {
	if s := strings.IndexByte(key, '{'); s > -1 {
		if e := strings.IndexByte(key[s+1:], '}'); e > 0 {
			return key[s+1 : s+e+1]
		}
	}
	return key
}

// Slot returns the cluster hash slot of key.
func Slot(key string) int {
	return int(crc16sum(Key(key)) % SlotNumber)
}

// SameSlot reports whether all keys hash to one slot and returns that slot.
// An empty key list reports -1 and true.
func SameSlot(keys ...string) (int, bool) {
	if len(keys) == 0 {
		return -1, true
	}
	slot := Slot(keys[0])
	for _, key := range keys[1:] {
		if Slot(key) != slot {
			return slot, false
		}
	}
	return slot, true
}

// CRC16-CCITT (XMODEM), polynomial 0x1021, as used by Redis Cluster.
func crc16sum(key string) (crc uint16) {
	for i := 0; i < len(key); i++ {
		crc ^= uint16(key[i]) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
