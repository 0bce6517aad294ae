package booking

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const ReferencePrefix = "HTL"

var ErrInvalidReference = errors.New("invalid transaction reference")

// Reference correlates the reservation, the provider transaction and the
// verification lookup. Once minted for a submission attempt it never changes.
type Reference string

var referenceSeq atomic.Uint64

// MakeReference mints a URL-safe reference from the wall clock, a
// process-wide sequence and four random bytes.
func MakeReference() Reference {
	timestamp := strconv.FormatInt(time.Now().UnixNano(), 36)
	seq := strconv.FormatUint(referenceSeq.Add(1), 36)

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return Reference(fmt.Sprintf("%s-%s-%s", ReferencePrefix, timestamp, seq))
	}

	return Reference(fmt.Sprintf("%s-%s-%s%s", ReferencePrefix, timestamp, seq, hex.EncodeToString(randomBytes)))
}

// ParseReference accepts provider-echoed references. Only URL-unreserved
// characters are allowed so the value can be placed in a path segment.
func ParseReference(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 128 {
		return "", ErrInvalidReference
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == '~':
		default:
			return "", ErrInvalidReference
		}
	}
	return Reference(s), nil
}

func (r Reference) String() string {
	return string(r)
}

func (r Reference) IsZero() bool {
	return r == ""
}
