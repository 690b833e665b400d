package ast

import "loom/internal/source"

// Module is the root of one file's AST: an ordered slice of top-level
// declarations. An empty Decls slice is a legal, empty module.
//
// Module owns the Exprs, Patterns, Stmts and Decls arenas for everything
// parsed out of its file; nodes never outlive or cross into another
// Module's arenas.
type Module struct {
	File  source.FileID
	Span  source.Span
	Decls []DeclID

	Exprs    *Exprs
	Patterns *Patterns
	Stmts    *Stmts
	Decl     *Decls
}

// NewModule creates an empty Module backed by freshly allocated arenas.
func NewModule(file source.FileID) *Module {
	return &Module{
		File:     file,
		Exprs:    NewExprs(0),
		Patterns: NewPatterns(0),
		Stmts:    NewStmts(0),
		Decl:     NewDecls(0),
	}
}
