// Package token defines the lexical token kinds and trivia for the Loom
// front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Attributes are lexed as '@' (Kind: At) + Ident; no per-attribute token kinds.
//   - Directives (/// ...) are represented as leading Trivia (TriviaDirective) and
//     never appear in the main token stream.
//   - Built-in type names (i32, u8, f64, bool, ...) are identifiers.
//     They are recognized by the semantic layer, not the lexer.
package token
