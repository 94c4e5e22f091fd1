package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrUnterminated = errors.New("unterminated quoted string")
	ErrBadEscape    = errors.New("bad escape")
)

// reserved plain scalars that YAML 1.1 or 1.2 resolve to non-strings.
var reserved = map[string]bool{
	"true": true, "false": true, "null": true, "~": true,
	"yes": true, "no": true, "on": true, "off": true, "y": true, "n": true,
	".inf": true, "-.inf": true, "+.inf": true, ".nan": true,
}

// NeedsQuote reports whether v must be quoted to read back as the same
// string. flow selects the stricter rules inside [...] and {...}.
func NeedsQuote(v string, flow bool) bool {
	if v == "" {
		return true
	}
	if !utf8.ValidString(v) {
		return true
	}
	if reserved[strings.ToLower(v)] {
		return true
	}
	switch v[0] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	case '!', '&', '*', '[', ']', '{', '}', '|', '>', '\'', '"', '%', '@', '`', '#', ',':
		return true
	case ' ', '\t':
		return true
	case '-', '?', ':':
		if flow || len(v) == 1 || v[1] == ' ' || v[1] == '\t' {
			return true
		}
	}
	switch v[0] {
	case '-', '+', '.':
		if len(v) > 1 && (v[1] >= '0' && v[1] <= '9' || v[1] == '.') {
			return true
		}
	}
	if strings.HasPrefix(v, "---") || strings.HasPrefix(v, "...") {
		return true
	}
	last := v[len(v)-1]
	if last == ' ' || last == '\t' || last == ':' {
		return true
	}
	if strings.Contains(v, ": ") || strings.Contains(v, ":\t") || strings.Contains(v, " #") || strings.Contains(v, "\t#") {
		return true
	}
	if flow && strings.ContainsAny(v, ",[]{}:") {
		return true
	}
	for _, r := range v {
		if !Printable(r) {
			return true
		}
	}
	return false
}

// Printable reports whether r may appear unescaped in a YAML scalar.
func Printable(r rune) bool {
	switch {
	case r == '\t':
		return true
	case r == utf8.RuneError, r == 0xFEFF:
		return false
	case r < 0x20, r == 0x7F:
		return false
	case r >= 0x80 && r < 0xA0:
		return false
	}
	return unicode.IsPrint(r) || r == ' '
}

// Quote returns v as a YAML quoted scalar. Double quotes with escapes are
// used unless autoSingle is set and v can be single quoted, which needs no
// escapes other than doubling '.
func Quote(v string, autoSingle bool) string {
	if autoSingle && singleQuotable(v) {
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\a':
			d = append(d, '\\', 'a')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case '\v':
			d = append(d, '\\', 'v')
		case 0:
			d = append(d, '\\', '0')
		case utf8.RuneError:
			d = append(d, "\\uFFFD"...)
		default:
			switch {
			case Printable(r):
				d = utf8.AppendRune(d, r)
			case r <= 0xFF:
				d = fmt.Appendf(d, "\\x%02X", r)
			case r <= 0xFFFF:
				d = fmt.Appendf(d, "\\u%04X", r)
			default:
				d = fmt.Appendf(d, "\\U%08X", r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

func singleQuotable(v string) bool {
	if !utf8.ValidString(v) {
		return false
	}
	for _, r := range v {
		if !Printable(r) {
			return false
		}
	}
	return true
}

// Unquote reverses Quote for double and single quoted scalars.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != v[len(v)-1] || (v[0] != '"' && v[0] != '\'') {
		return "", ErrUnterminated
	}
	body := v[1 : len(v)-1]
	if v[0] == '\'' {
		return strings.ReplaceAll(body, "''", "'"), nil
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", ErrUnterminated
		}
		switch body[i] {
		case '"', '\\', '/':
			b.WriteByte(body[i])
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case 'x', 'u', 'U':
			n := map[byte]int{'x': 2, 'u': 4, 'U': 8}[body[i]]
			if i+n >= len(body) {
				return "", ErrUnterminated
			}
			cp, err := strconv.ParseUint(body[i+1:i+1+n], 16, 32)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrBadEscape, err)
			}
			b.WriteRune(rune(cp))
			i += n
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, body[i])
		}
	}
	return b.String(), nil
}
