package sqlast

// ObjectKind identifies the kind of database object a statement creates,
// drops, or alters. Object identity is by (Kind, Name) within a Tree.
type ObjectKind string

const (
	KindTable     ObjectKind = "TABLE"
	KindIndex     ObjectKind = "INDEX"
	KindType      ObjectKind = "TYPE"
	KindExtension ObjectKind = "EXTENSION"
	KindDomain    ObjectKind = "DOMAIN"
)

type (
	// Statement is a tagged union over the supported DDL forms (spec.md §3).
	// Exactly one field is non-nil. Unsupported carries anything the parser
	// adapter recognized as a top-level statement but couldn't model, so a
	// parse never fails outright on an unfamiliar construct. Migrate fails
	// with a NotImplemented error on one in the tree being migrated; Diff,
	// and Migrate on the migration side, skip it.
	Statement struct {
		CreateTable     *CreateTable
		AlterTable      *AlterTable
		Drop            *Drop
		CreateIndex     *CreateIndex
		CreateType      *CreateType
		AlterType       *AlterType
		CreateExtension *CreateExtension
		DropExtension   *DropExtension
		CreateDomain    *CreateDomain
		DropDomain      *DropDomain
		Unsupported     *Unsupported
	}

	// CreateTable is CREATE TABLE [IF NOT EXISTS] name (columns...) [ON CLUSTER cluster].
	CreateTable struct {
		Name        string
		Columns     []ColumnDef
		IfNotExists bool
		OnCluster   string
	}

	// ColumnDef is a single column within a CreateTable or Composite CreateType.
	ColumnDef struct {
		Name     string
		DataType string
		Options  []ColumnOption
	}

	// ColumnOptionKind enumerates the column option variants the migrate
	// engine understands (spec.md §3's AlterColumn operations act on these).
	ColumnOptionKind string

	ColumnOption struct {
		Kind ColumnOptionKind
		// Default holds the default expression text when Kind == ColumnOptionDefault.
		Default string
		// Generated holds identity/generated-column details when Kind == ColumnOptionGenerated.
		Generated *GeneratedOption
		// Raw holds the verbatim option text for anything not individually modeled
		// (e.g. PRIMARY KEY, UNIQUE, CHECK(...)), preserved for round-trip printing.
		Raw string
	}

	GeneratedAs string

	GeneratedOption struct {
		As              GeneratedAs
		SequenceOptions string
	}

	// AlterTable is ALTER TABLE [IF EXISTS] name op, op, ...
	AlterTable struct {
		Name       string
		IfExists   bool
		Operations []AlterTableOperation
	}

	// AlterTableOperation is a tagged union over the supported ALTER TABLE clauses.
	AlterTableOperation struct {
		AddColumn    *AddColumnOp
		DropColumn   *DropColumnOp
		AlterColumn  *AlterColumnOp
		RenameColumn *RenameColumnOp
		RenameTable  *RenameTableOp
		Unsupported  *UnsupportedOp
	}

	AddColumnOp struct {
		IfNotExists bool
		Column      ColumnDef
	}

	DropColumnOp struct {
		IfExists bool
		Name     string
	}

	AlterColumnKind string

	AlterColumnOp struct {
		Name      string
		Kind      AlterColumnKind
		Default   string // for AlterColumnSetDefault
		DataType  string // for AlterColumnSetDataType
		Generated *GeneratedOption
	}

	RenameColumnOp struct {
		OldName string
		NewName string
	}

	RenameTableOp struct {
		NewName string
	}

	// UnsupportedOp carries an ALTER TABLE clause the adapter parsed the shape
	// of but that migrate/diff don't implement, named for diagnostics.
	UnsupportedOp struct {
		OpName string
		Raw    string
	}

	// Drop is DROP <kind> [IF EXISTS] name, name, ... [CASCADE|RESTRICT] [PURGE] [TEMPORARY].
	Drop struct {
		Kind      ObjectKind
		Names     []string
		IfExists  bool
		Cascade   bool
		Restrict  bool
		Purge     bool
		Temporary bool
	}

	// CreateIndex is CREATE [UNIQUE] INDEX [name] ON table (cols...).
	CreateIndex struct {
		Name        string // empty when unnamed
		HasName     bool
		TableName   string
		Columns     []string
		Unique      bool
		IfNotExists bool
	}

	// CreateType is CREATE TYPE name AS (ENUM (...) | (attr type, ...)).
	CreateType struct {
		Name      string
		Enum      *EnumRepresentation
		Composite *CompositeRepresentation
	}

	EnumRepresentation struct {
		Labels []string
	}

	CompositeRepresentation struct {
		Attributes []ColumnDef
	}

	// AlterType is ALTER TYPE name <operation>.
	AlterType struct {
		Name      string
		Operation AlterTypeOperation
	}

	AlterTypeOperation struct {
		Rename      *RenameTypeOp
		AddValue    *AddValueOp
		RenameValue *RenameValueOp
	}

	RenameTypeOp struct {
		NewName string
	}

	AddValuePosition struct {
		Before string
		After  string
		// HasPosition is false when no BEFORE/AFTER clause is present (append at end).
		HasPosition bool
		// IsBefore distinguishes BEFORE from AFTER when HasPosition is true.
		IsBefore bool
	}

	AddValueOp struct {
		Value       string
		IfNotExists bool
		Position    *AddValuePosition
	}

	RenameValueOp struct {
		From string
		To   string
	}

	// CreateExtension is CREATE EXTENSION [IF NOT EXISTS] name.
	CreateExtension struct {
		Name        string
		IfNotExists bool
	}

	// DropExtension is DROP EXTENSION [IF EXISTS] name, name, ... [CASCADE].
	DropExtension struct {
		Names    []string
		IfExists bool
		Cascade  bool
	}

	// CreateDomain is CREATE DOMAIN name AS data_type [constraint ...].
	CreateDomain struct {
		Name        string
		DataType    string
		Constraints []string
	}

	// DropDomain is DROP DOMAIN [IF EXISTS] name.
	DropDomain struct {
		Name     string
		IfExists bool
	}

	// Unsupported is a top-level statement the parser adapter recognized as
	// DDL but doesn't model further. Raw holds the verbatim statement text
	// (without the trailing semicolon).
	Unsupported struct {
		Keyword string
		Raw     string
	}
)

const (
	ColumnOptionNotNull   ColumnOptionKind = "NOT_NULL"
	ColumnOptionDefault   ColumnOptionKind = "DEFAULT"
	ColumnOptionGenerated ColumnOptionKind = "GENERATED"
	ColumnOptionOther     ColumnOptionKind = "OTHER"
)

const (
	GeneratedAlways    GeneratedAs = "ALWAYS"
	GeneratedByDefault GeneratedAs = "BY DEFAULT"
)

const (
	AlterColumnSetNotNull   AlterColumnKind = "SET_NOT_NULL"
	AlterColumnDropNotNull  AlterColumnKind = "DROP_NOT_NULL"
	AlterColumnSetDefault   AlterColumnKind = "SET_DEFAULT"
	AlterColumnDropDefault  AlterColumnKind = "DROP_DEFAULT"
	AlterColumnSetDataType  AlterColumnKind = "SET_DATA_TYPE"
	AlterColumnAddGenerated AlterColumnKind = "ADD_GENERATED"
)

// Identity reports the (Kind, Name) a Create* statement defines, and whether
// s is a named Create* statement (an unnamed CreateIndex reports false, as
// it has no name to be identified by). Object identity is by qualified name within
// its kind (spec.md §3's invariant); two statements name the same object iff
// both Kind and Name match.
func (s Statement) Identity() (kind ObjectKind, name string, ok bool) {
	switch {
	case s.CreateTable != nil:
		return KindTable, s.CreateTable.Name, true
	case s.CreateIndex != nil && s.CreateIndex.HasName:
		return KindIndex, s.CreateIndex.Name, true
	case s.CreateType != nil:
		return KindType, s.CreateType.Name, true
	case s.CreateExtension != nil:
		return KindExtension, s.CreateExtension.Name, true
	case s.CreateDomain != nil:
		return KindDomain, s.CreateDomain.Name, true
	default:
		return "", "", false
	}
}

// IsCreate reports whether s is one of the CreateX variants.
func (s Statement) IsCreate() bool {
	return s.CreateTable != nil || s.CreateIndex != nil || s.CreateType != nil ||
		s.CreateExtension != nil || s.CreateDomain != nil
}
