package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// GravatarURL builds the Gravatar image URL for an email address.
// Gravatar hashes the lowercased, trimmed address with md5. The "retro"
// default mirrors what the blog shows for commenters without an avatar.
func GravatarURL(email string, size int) string {
	if size <= 0 {
		size = 100
	}
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d&d=retro&r=g", hex.EncodeToString(sum[:]), size)
}
