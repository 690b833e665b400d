package ast

import "loom/internal/source"

// DeclKind discriminates the payload arena a Decl's Payload indexes into.
type DeclKind uint8

const (
	DeclFn DeclKind = iota
	DeclStruct
	DeclEnum
	DeclUnion
	DeclTrait
	DeclImpl
	DeclMacro
	DeclUse
	DeclExtern
	DeclTypeAlias
	DeclGlobalVar
)

// Decl is the base node shared by every declaration kind.
type Decl struct {
	Kind    DeclKind
	Span    source.Span
	Payload PayloadID
}

// TypeParam is one entry of a generic parameter list.
type TypeParam struct {
	Name   source.SymbolID
	Bounds []ExprID
}

// Decls owns the declaration arena and every per-kind payload arena. The
// per-kind constructors and accessors live alongside their data types in
// decl_fn.go, decl_struct.go, and so on.
type Decls struct {
	Arena *Arena[Decl]

	Fns        *Arena[DeclFnData]
	Structs    *Arena[DeclStructData]
	Enums      *Arena[DeclEnumData]
	Unions     *Arena[DeclUnionData]
	Traits     *Arena[DeclTraitData]
	Impls      *Arena[DeclImplData]
	Macros     *Arena[DeclMacroData]
	Uses       *Arena[DeclUseData]
	Externs    *Arena[DeclExternData]
	TypeAlises *Arena[DeclTypeAliasData]
	GlobalVars *Arena[DeclGlobalVarData]
}

func NewDecls(capHint uint) *Decls {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Decls{
		Arena:      NewArena[Decl](capHint),
		Fns:        NewArena[DeclFnData](capHint),
		Structs:    NewArena[DeclStructData](capHint),
		Enums:      NewArena[DeclEnumData](capHint),
		Unions:     NewArena[DeclUnionData](capHint),
		Traits:     NewArena[DeclTraitData](capHint),
		Impls:      NewArena[DeclImplData](capHint),
		Macros:     NewArena[DeclMacroData](capHint),
		Uses:       NewArena[DeclUseData](capHint),
		Externs:    NewArena[DeclExternData](capHint),
		TypeAlises: NewArena[DeclTypeAliasData](capHint),
		GlobalVars: NewArena[DeclGlobalVarData](capHint),
	}
}

func (d *Decls) new(kind DeclKind, span source.Span, payload PayloadID) DeclID {
	return DeclID(d.Arena.Allocate(Decl{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the declaration with the given ID, or nil for NoDeclID.
func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}
