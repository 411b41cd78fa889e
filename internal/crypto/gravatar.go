package crypto

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
)

// AvatarURL derives a default Gravatar URL from an email address.
// Email case and surrounding whitespace do not affect the result.
// Size, rating, and fallback parameters are fixed.
func AvatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	q := url.Values{}
	q.Set("s", "200")
	q.Set("r", "pg")
	q.Set("d", "mm")

	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?" + q.Encode()
}
