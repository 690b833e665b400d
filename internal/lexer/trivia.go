package lexer

import (
	"strings"

	"loom/internal/diag"
	"loom/internal/token"
)

// collectLeadingTrivia gathers the run of trivia preceding the next
// significant token:
//   - ' ' and '\t' coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline
//   - "//..." up to '\n' becomes TriviaLineComment
//   - "/* ... */" becomes TriviaBlockComment, nesting to arbitrary depth
//   - "///..." up to '\n' becomes TriviaDocLine
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '/' {
			if lx.scanCommentOrDocLineIntoHold() {
				continue
			}
		}

		break
	}
}

// scanCommentOrDocLineIntoHold scans one "//...", "///...", or "/*...*/"
// fragment, appending it to lx.hold. It returns false and leaves the cursor
// untouched when the next byte after '/' is neither '/' nor '*'.
func (lx *Lexer) scanCommentOrDocLineIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		isDoc := false
		if lx.cursor.Peek() == '/' {
			lx.cursor.Bump()
			isDoc = true
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		tv := token.Trivia{Kind: token.TriviaLineComment, Span: sp, Text: text}
		if isDoc {
			tv.Kind = token.TriviaDocLine
			if dir := parseDirective(text); dir != nil {
				tv.Kind = token.TriviaDirective
				tv.Directive = dir
			}
		}
		lx.hold = append(lx.hold, tv)
		return true

	case '*':
		lx.cursor.Bump()
		isDoc := lx.cursor.Peek() == '*'
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if depth > 0 {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		kind := token.TriviaBlockComment
		if isDoc {
			kind = token.TriviaDocBlock
		}
		lx.hold = append(lx.hold, token.Trivia{
			Kind: kind,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}

// parseDirective recognizes a doc-line comment of the shape
// "/// @module.path:name payload" and returns its parsed form, or nil if the
// comment is an ordinary doc comment.
func parseDirective(text string) *token.Directive {
	body := strings.TrimPrefix(text, "///")
	body = strings.TrimLeft(body, " \t")
	if !strings.HasPrefix(body, "@") {
		return nil
	}
	body = body[1:]
	colon := strings.IndexByte(body, ':')
	if colon < 0 {
		return nil
	}
	module := body[:colon]
	rest := body[colon+1:]
	name := rest
	payload := ""
	if sp := strings.IndexAny(rest, " \t"); sp >= 0 {
		name = rest[:sp]
		payload = strings.TrimLeft(rest[sp+1:], " \t")
	}
	if module == "" || name == "" {
		return nil
	}
	return &token.Directive{Module: module, Name: name, Payload: payload}
}
