package extract

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// legacyEncodings is the fallback chain tried when content is not valid
// UTF-8. Windows-1251 first: Cyrillic review exports are the most common
// legacy case.
var legacyEncodings = []*charmap.Charmap{
	charmap.Windows1251,
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// decodeText converts raw file bytes to a UTF-8 string, trying UTF-8 first
// and then each legacy encoding. A decode "succeeds" when it produces no
// replacement characters. As a last resort invalid bytes are replaced so the
// caller always gets usable text.
func decodeText(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}

	for _, enc := range legacyEncodings {
		decoded, err := enc.NewDecoder().Bytes(content)
		if err != nil {
			continue
		}
		if !strings.ContainsRune(string(decoded), utf8.RuneError) {
			return string(decoded)
		}
	}

	return strings.ToValidUTF8(string(content), "�")
}
