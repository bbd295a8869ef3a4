package quiz

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
)

// dailyIndex derives the daily challenge question index from an ISO
// date string. Every player sees the same question on the same day.
func dailyIndex(dateISO string, poolSize int) int {
	if poolSize <= 0 {
		return -1
	}
	sum := md5.Sum([]byte(dateISO))
	prefix := hex.EncodeToString(sum[:])[:8]
	v, err := strconv.ParseUint(prefix, 16, 64)
	if err != nil {
		return 0
	}
	return int(v % uint64(poolSize))
}
