package lexer

import (
	"loom/internal/diag"
	"loom/internal/token"
)

// scanNumber scans integer and float literals: decimal, 0b/0o/0x-prefixed
// integers, and decimal floats with an optional fractional part and
// exponent. Underscore digit separators are accepted anywhere inside the
// digit run. Suffixes (u8, f32, ...) are left in Token.Text for a later
// phase to interpret; Kind only distinguishes IntLit from FloatLit.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	kind := token.IntLit

	// scanNumber is only ever entered on a decimal digit (see Next()'s
	// dispatch); a bare leading '.' always lexes as its own Dot token, per
	// the grammar's `float = dec-int '.' dec-int exponent? | dec-int
	// exponent` — there is no bare-leading-dot float production.

	// Leading '0' introduces a base prefix.
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			for {
				b := lx.cursor.Peek()
				if b == '0' || b == '1' || b == '_' {
					lx.cursor.Bump()
				} else {
					break
				}
			}
			return lx.emitNumber(start, kind)
		case 'o', 'O':
			lx.cursor.Bump()
			for {
				b := lx.cursor.Peek()
				if (b >= '0' && b <= '7') || b == '_' {
					lx.cursor.Bump()
				} else {
					break
				}
			}
			return lx.emitNumber(start, kind)
		case 'x', 'X':
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			return lx.emitNumber(start, kind)
		default:
			// just "0", possibly followed by a decimal fraction
		}
	}

	// decimal integer part
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// fractional part: only consume the '.' when a decimal digit actually
	// follows it. A bare trailing dot (e.g. "1." before "method") belongs to
	// the next token, not this number — "1.method" lexes as
	// IntLit("1"), Dot, Identifier("method"), never a float.
	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		switch {
		case ok && b0 == '.' && (b1 == '.' || b1 == '='):
			// '..' or '..=' immediately follows: this is a range, not a
			// decimal point.
		case isDec(b1):
			lx.cursor.Bump()
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		default:
			// leave the '.' for the next Next() call to emit as Dot
		}
	}

	return lx.scanNumberExponent(start, kind)
}

func (lx *Lexer) scanNumberExponent(start Mark, kind token.Kind) token.Token {
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Illegal, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}
	return lx.emitNumber(start, kind)
}

func (lx *Lexer) emitNumber(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
