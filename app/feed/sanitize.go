package feed

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	xmlPrologRe   = regexp.MustCompile(`(?i)^\s*<\?xml[^>]*\?>`)
	xmlEncodingRe = regexp.MustCompile(`(?i)encoding=["']([^"']+)["']`)
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeToUTF8 converts a feed document to valid UTF-8. A BOM wins over
// whatever the prolog declares; without one, a charset declared in the XML
// prolog is decoded. The prolog is rewritten after decoding so downstream
// parsers do not decode twice, and any remaining invalid bytes are replaced
// with U+FFFD. The worst input still comes back as valid UTF-8: encoding
// problems are never an error.
func normalizeToUTF8(data []byte) []byte {
	if decoded, ok := decodeBOM(data); ok {
		data = decoded
	} else if rest, ok := bytes.CutPrefix(data, utf8BOM); ok {
		data = rewriteEncodingDecl(rest)
	} else if decoded, ok := decodeDeclared(data); ok {
		data = decoded
	}

	if utf8.Valid(data) {
		return data
	}
	return bytes.ToValidUTF8(data, []byte(string(utf8.RuneError)))
}

func decodeBOM(data []byte) ([]byte, bool) {
	if len(data) < 2 {
		return nil, false
	}

	le := data[0] == 0xFF && data[1] == 0xFE
	be := data[0] == 0xFE && data[1] == 0xFF
	if !le && !be {
		return nil, false
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, false
	}
	return rewriteEncodingDecl(decoded), true
}

func decodeDeclared(data []byte) ([]byte, bool) {
	label := prologEncoding(data)
	if label == "" || label == "utf-8" || label == "utf8" {
		return nil, false
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, false
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, false
	}
	return rewriteEncodingDecl(decoded), true
}

func prologEncoding(data []byte) string {
	prolog := xmlPrologRe.Find(data)
	if prolog == nil {
		return ""
	}

	m := xmlEncodingRe.FindSubmatch(prolog)
	if m == nil {
		return ""
	}
	return strings.ToLower(string(m[1]))
}

// rewriteEncodingDecl updates the prolog so downstream XML parsers do not
// decode the already-decoded bytes a second time.
func rewriteEncodingDecl(data []byte) []byte {
	prolog := xmlPrologRe.Find(data)
	if prolog == nil || !xmlEncodingRe.Match(prolog) {
		return data
	}

	rewritten := xmlEncodingRe.ReplaceAll(prolog, []byte(`encoding="UTF-8"`))
	return append(rewritten, data[len(prolog):]...)
}
