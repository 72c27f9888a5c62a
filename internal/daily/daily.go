// internal/daily/daily.go
//
// Deterministic "word of the day" source.
// The day's word index is HMAC-SHA256(salt, YYYY-MM-DD) mod len(words), so every
// reset on the same UTC day starts a round with the same word.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Source picks the word of the day from Words.
type Source struct {
	Words []string
	Salt  string
	Now   func() time.Time // defaults to time.Now
}

// PickWord returns today's word, or "" when Words is empty.
func (s Source) PickWord() string {
	if len(s.Words) == 0 {
		return ""
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return s.Words[WordIndex(now(), s.Salt, len(s.Words))]
}
