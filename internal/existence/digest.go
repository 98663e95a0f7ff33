package existence

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Domain prefix for content-addressed identity. Version suffix enables
// future algorithm migration.
const DomainEntity = "aleph/entity/v1"

// DigestOf computes the content-addressed digest of an entity.
//
// Format: SHA256(domain + 0x00 + NFC(kind) + 0x00 + payload + 0x00 +
// sorted member digests, each followed by 0x00). The null separators
// prevent boundary ambiguity between fields; sorting the member digests
// makes the combination order-independent, which is what gives set
// semantics to structural equality.
//
// The kind tag is NFC normalized at the hashing boundary so that
// canonically-equivalent Unicode spellings produce one identity.
func DigestOf(kind string, payload []byte, members []Existence) string {
	h := sha256.New()
	h.Write([]byte(DomainEntity))
	h.Write([]byte{0x00})
	h.Write([]byte(norm.NFC.String(kind)))
	h.Write([]byte{0x00})
	h.Write(payload)
	h.Write([]byte{0x00})

	digests := make([]string, len(members))
	for i, m := range members {
		digests[i] = m.Digest()
	}
	sort.Strings(digests)
	for _, d := range digests {
		h.Write([]byte(d))
		h.Write([]byte{0x00})
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Equal reports whether two entities are structurally equal, i.e. whether
// their kinds, payloads and member sets coincide recursively. Both nil is
// equal; one nil is not.
func Equal(a, b Existence) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Digest() == b.Digest()
}
