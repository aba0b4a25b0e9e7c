/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// AccessorPrefix starts every accessor name.
const AccessorPrefix = "get"

// ConvertProperty converts an accessor name into a record key. For example,
// "getLoremIpsum" is converted into "loremIpsum". Only the first rune after
// the prefix changes case; "get" on its own converts to the empty key.
func ConvertProperty(property string) string {
	clipped := strings.TrimPrefix(property, AccessorPrefix)
	if clipped == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(clipped)
	if r == utf8.RuneError && size == 1 {
		// invalid leading byte has no case; keep it as is
		return clipped
	}
	return string(unicode.ToLower(r)) + clipped[size:]
}

// AccessorName is the inverse of ConvertProperty: "loremIpsum" becomes
// "getLoremIpsum".
func AccessorName(key string) string {
	if key == "" {
		return AccessorPrefix
	}

	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError && size == 1 {
		return AccessorPrefix + key
	}
	return AccessorPrefix + string(unicode.ToUpper(r)) + key[size:]
}

// IsAccessorName reports whether name follows the accessor convention: the
// prefix followed by at least one more character.
func IsAccessorName(name string) bool {
	return len(name) > len(AccessorPrefix) && strings.HasPrefix(name, AccessorPrefix)
}
