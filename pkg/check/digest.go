package check

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Digest returns the lowercase hex SHA-1 digest of v's canonical string
// form. The canonical form is Go's default formatting, fmt.Sprintf("%v", v),
// so strings hash as-is and composite values hash their printed structure.
// Expected digests recorded against this function remain stable as long as
// the value's %v form does.
func Digest(v interface{}) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%v", v)))
	return hex.EncodeToString(sum[:])
}
