package extraction

import (
	"encoding/hex"
	"strings"
)

// decodeContentText recovers readable text from a decoded PDF content stream.
// It tokenizes the stream, buffers string operands, and emits them when a
// text-showing operator (Tj, TJ, ', ") consumes them. Text-positioning
// operators (Td, TD, T*) and ET emit line breaks so downstream line-oriented
// patterns see the page layout.
func decodeContentText(data []byte) string {
	var out strings.Builder
	var pending []string

	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == '%':
			i = skipComment(data, i)
		case c == '(':
			s, next := parseLiteralString(data, i)
			pending = append(pending, s)
			i = next
		case c == '<' && i+1 < len(data) && data[i+1] == '<':
			i += 2
		case c == '<':
			s, next := parseHexString(data, i)
			pending = append(pending, s)
			i = next
		case c == '\'' || c == '"':
			pending = emit(&out, pending)
			i++
		case isRegular(c):
			token, next := parseToken(data, i)
			i = next
			switch token {
			case "Tj", "TJ":
				pending = emit(&out, pending)
			case "Td", "TD", "T*", "ET":
				out.WriteByte('\n')
				pending = pending[:0]
			}
		default:
			i++
		}
	}

	return out.String()
}

func emit(out *strings.Builder, pending []string) []string {
	for _, s := range pending {
		out.WriteString(s)
	}
	if len(pending) > 0 {
		out.WriteByte(' ')
	}
	return pending[:0]
}

func isRegular(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '*'
}

func parseToken(data []byte, start int) (string, int) {
	i := start
	for i < len(data) && isRegular(data[i]) {
		i++
	}
	return string(data[start:i]), i
}

func skipComment(data []byte, start int) int {
	i := start
	for i < len(data) && data[i] != '\n' {
		i++
	}
	return i
}

// parseLiteralString consumes a PDF literal string starting at the opening
// parenthesis, handling balanced nesting, escape sequences, and octal codes.
func parseLiteralString(data []byte, start int) (string, int) {
	var out strings.Builder
	depth := 1
	i := start + 1

	for i < len(data) && depth > 0 {
		c := data[i]
		switch c {
		case '\\':
			if i+1 >= len(data) {
				i++
				continue
			}
			i++
			esc := data[i]
			switch esc {
			case 'n':
				out.WriteByte('\n')
			case 'r':
				out.WriteByte('\r')
			case 't':
				out.WriteByte('\t')
			case 'b', 'f':
			case '(', ')', '\\':
				out.WriteByte(esc)
			case '\n':
			default:
				if esc >= '0' && esc <= '7' {
					val := int(esc - '0')
					for k := 0; k < 2 && i+1 < len(data) && data[i+1] >= '0' && data[i+1] <= '7'; k++ {
						i++
						val = val*8 + int(data[i]-'0')
					}
					out.WriteByte(byte(val))
				} else {
					out.WriteByte(esc)
				}
			}
			i++
		case '(':
			depth++
			out.WriteByte(c)
			i++
		case ')':
			depth--
			if depth > 0 {
				out.WriteByte(c)
			}
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), i
}

// parseHexString consumes a PDF hex string starting at the opening angle
// bracket. An odd final digit is padded with zero per the PDF spec.
func parseHexString(data []byte, start int) (string, int) {
	i := start + 1
	var digits []byte

	for i < len(data) && data[i] != '>' {
		c := data[i]
		if isHexDigit(c) {
			digits = append(digits, c)
		}
		i++
	}
	if i < len(data) {
		i++
	}

	if len(digits)%2 != 0 {
		digits = append(digits, '0')
	}

	decoded := make([]byte, len(digits)/2)
	if _, err := hex.Decode(decoded, digits); err != nil {
		return "", i
	}

	var out strings.Builder
	for _, b := range decoded {
		if b >= 0x20 && b < 0x7f {
			out.WriteByte(b)
		}
	}
	return out.String(), i
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
