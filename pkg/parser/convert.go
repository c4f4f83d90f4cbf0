package parser

import "github.com/pseudomuto/sqlschema/internal/sqlast"

// toTree converts a parsed grammar into the sqlast representation the rest
// of the module operates on. Anything the grammar matched via unsupportedStmt
// becomes an sqlast.Unsupported statement instead of being dropped.
func toTree(g *grammar) sqlast.Tree {
	statements := make([]sqlast.Statement, 0, len(g.Statements))
	for _, s := range g.Statements {
		statements = append(statements, toStatement(s))
	}
	return sqlast.New(statements)
}

func toStatement(s *statement) sqlast.Statement {
	switch {
	case s.CreateTable != nil:
		return sqlast.Statement{CreateTable: toCreateTable(s.CreateTable)}
	case s.AlterTable != nil:
		return sqlast.Statement{AlterTable: toAlterTable(s.AlterTable)}
	case s.CreateIndex != nil:
		return sqlast.Statement{CreateIndex: toCreateIndex(s.CreateIndex)}
	case s.CreateType != nil:
		return sqlast.Statement{CreateType: toCreateType(s.CreateType)}
	case s.AlterType != nil:
		return sqlast.Statement{AlterType: toAlterType(s.AlterType)}
	case s.CreateExtension != nil:
		return sqlast.Statement{CreateExtension: &sqlast.CreateExtension{
			Name:        normalizeIdent(s.CreateExtension.Name),
			IfNotExists: s.CreateExtension.IfNotExists,
		}}
	case s.DropExtension != nil:
		return sqlast.Statement{DropExtension: &sqlast.DropExtension{
			Names:    normalizeIdents(s.DropExtension.Names),
			IfExists: s.DropExtension.IfExists,
			Cascade:  s.DropExtension.Cascade,
		}}
	case s.CreateDomain != nil:
		return sqlast.Statement{CreateDomain: &sqlast.CreateDomain{
			Name:        normalizeIdent(s.CreateDomain.Name),
			DataType:    s.CreateDomain.Type.String(),
			Constraints: s.CreateDomain.Constraints,
		}}
	case s.DropDomain != nil:
		return sqlast.Statement{DropDomain: &sqlast.DropDomain{
			Name:     normalizeIdent(s.DropDomain.Name),
			IfExists: s.DropDomain.IfExists,
		}}
	case s.Drop != nil:
		return sqlast.Statement{Drop: toDrop(s.Drop)}
	default:
		return sqlast.Statement{Unsupported: toUnsupported(s.Unsupported)}
	}
}

func normalizeIdents(raw []string) []string {
	out := make([]string, len(raw))
	for i, r := range raw {
		out[i] = normalizeIdent(r)
	}
	return out
}

func toCreateTable(s *createTableStmt) *sqlast.CreateTable {
	cols := make([]sqlast.ColumnDef, len(s.Columns))
	for i, c := range s.Columns {
		cols[i] = toColumnDef(c)
	}
	ct := &sqlast.CreateTable{
		Name:        s.Name.String(),
		Columns:     cols,
		IfNotExists: s.IfNotExists,
	}
	if s.OnCluster != nil {
		ct.OnCluster = normalizeIdent(*s.OnCluster)
	}
	return ct
}

func toColumnDef(c columnDef) sqlast.ColumnDef {
	def := sqlast.ColumnDef{
		Name:     normalizeIdent(c.Name),
		DataType: c.Type.String(),
	}
	for _, opt := range c.Options {
		def.Options = append(def.Options, toColumnOption(opt))
	}
	return def
}

func toColumnOption(opt columnOption) sqlast.ColumnOption {
	switch {
	case opt.NotNull:
		return sqlast.ColumnOption{Kind: sqlast.ColumnOptionNotNull, Raw: "NOT NULL"}
	case opt.Default != nil:
		return sqlast.ColumnOption{Kind: sqlast.ColumnOptionDefault, Default: *opt.Default}
	case opt.Generated != nil:
		return sqlast.ColumnOption{Kind: sqlast.ColumnOptionGenerated, Generated: toGeneratedOption(opt.Generated)}
	case opt.PrimaryKey:
		return sqlast.ColumnOption{Kind: sqlast.ColumnOptionOther, Raw: "PRIMARY KEY"}
	case opt.RawCheck != nil:
		return sqlast.ColumnOption{Kind: sqlast.ColumnOptionOther, Raw: "CHECK (" + *opt.RawCheck + ")"}
	case opt.RawUnique:
		return sqlast.ColumnOption{Kind: sqlast.ColumnOptionOther, Raw: "UNIQUE"}
	default:
		return sqlast.ColumnOption{Kind: sqlast.ColumnOptionOther}
	}
}

func toGeneratedOption(g *generatedOption) *sqlast.GeneratedOption {
	as := sqlast.GeneratedAlways
	if g.ByDefault {
		as = sqlast.GeneratedByDefault
	}
	opt := &sqlast.GeneratedOption{As: as}
	if g.Sequence != nil {
		opt.SequenceOptions = *g.Sequence
	}
	return opt
}

func toAlterTable(s *alterTableStmt) *sqlast.AlterTable {
	ops := make([]sqlast.AlterTableOperation, len(s.Operations))
	for i, op := range s.Operations {
		ops[i] = toAlterTableOperation(op)
	}
	return &sqlast.AlterTable{
		Name:       s.Name.String(),
		IfExists:   s.IfExists,
		Operations: ops,
	}
}

func toAlterTableOperation(op alterTableOperation) sqlast.AlterTableOperation {
	switch {
	case op.AddColumn != nil:
		return sqlast.AlterTableOperation{AddColumn: &sqlast.AddColumnOp{
			IfNotExists: op.AddColumn.IfNotExists,
			Column:      toColumnDef(op.AddColumn.Column),
		}}
	case op.DropColumn != nil:
		return sqlast.AlterTableOperation{DropColumn: &sqlast.DropColumnOp{
			IfExists: op.DropColumn.IfExists,
			Name:     normalizeIdent(op.DropColumn.Name),
		}}
	case op.AlterColumn != nil:
		return sqlast.AlterTableOperation{AlterColumn: toAlterColumnOp(op.AlterColumn)}
	case op.RenameColumn != nil:
		return sqlast.AlterTableOperation{RenameColumn: &sqlast.RenameColumnOp{
			OldName: normalizeIdent(op.RenameColumn.OldName),
			NewName: normalizeIdent(op.RenameColumn.NewName),
		}}
	case op.RenameTable != nil:
		return sqlast.AlterTableOperation{RenameTable: &sqlast.RenameTableOp{
			NewName: op.RenameTable.NewName.String(),
		}}
	default:
		return sqlast.AlterTableOperation{Unsupported: &sqlast.UnsupportedOp{OpName: "UNKNOWN"}}
	}
}

func toAlterColumnOp(op *alterColumnOp) *sqlast.AlterColumnOp {
	name := normalizeIdent(op.Name)
	switch {
	case op.SetNotNull:
		return &sqlast.AlterColumnOp{Name: name, Kind: sqlast.AlterColumnSetNotNull}
	case op.DropNull:
		return &sqlast.AlterColumnOp{Name: name, Kind: sqlast.AlterColumnDropNotNull}
	case op.SetDefault != nil:
		return &sqlast.AlterColumnOp{Name: name, Kind: sqlast.AlterColumnSetDefault, Default: *op.SetDefault}
	case op.DropDef:
		return &sqlast.AlterColumnOp{Name: name, Kind: sqlast.AlterColumnDropDefault}
	case op.SetType != nil:
		return &sqlast.AlterColumnOp{Name: name, Kind: sqlast.AlterColumnSetDataType, DataType: op.SetType.String()}
	case op.AddGen != nil:
		return &sqlast.AlterColumnOp{Name: name, Kind: sqlast.AlterColumnAddGenerated, Generated: toGeneratedOption(op.AddGen)}
	default:
		return &sqlast.AlterColumnOp{Name: name}
	}
}

func toDrop(s *dropStmt) *sqlast.Drop {
	names := make([]string, len(s.Names))
	for i, n := range s.Names {
		names[i] = n.String()
	}
	return &sqlast.Drop{
		Kind:      sqlast.ObjectKind(s.Kind),
		Names:     names,
		IfExists:  s.IfExists,
		Cascade:   s.Cascade,
		Restrict:  s.Restrict,
		Purge:     s.Purge,
		Temporary: s.Temporary,
	}
}

func toCreateIndex(s *createIndexStmt) *sqlast.CreateIndex {
	ci := &sqlast.CreateIndex{
		TableName:   s.Table.String(),
		Columns:     normalizeIdents(s.Columns),
		Unique:      s.Unique,
		IfNotExists: s.IfNotExists,
	}
	if s.Name != nil {
		ci.HasName = true
		ci.Name = normalizeIdent(*s.Name)
	}
	return ci
}

func toCreateType(s *createTypeStmt) *sqlast.CreateType {
	ct := &sqlast.CreateType{Name: s.Name.String()}
	switch {
	case s.Enum != nil:
		ct.Enum = &sqlast.EnumRepresentation{Labels: unquoteStrings(s.Enum.Labels)}
	case s.Composite != nil:
		attrs := make([]sqlast.ColumnDef, len(s.Composite.Attributes))
		for i, a := range s.Composite.Attributes {
			attrs[i] = sqlast.ColumnDef{Name: normalizeIdent(a.Name), DataType: a.Type.String()}
		}
		ct.Composite = &sqlast.CompositeRepresentation{Attributes: attrs}
	}
	return ct
}

func toAlterType(s *alterTypeStmt) *sqlast.AlterType {
	at := &sqlast.AlterType{Name: s.Name.String()}
	switch {
	case s.Operation.Rename != nil:
		at.Operation.Rename = &sqlast.RenameTypeOp{NewName: s.Operation.Rename.NewName.String()}
	case s.Operation.AddValue != nil:
		op := s.Operation.AddValue
		add := &sqlast.AddValueOp{Value: unquote(op.Value), IfNotExists: op.IfNotExists}
		switch {
		case op.BeforeTarget != nil:
			add.Position = &sqlast.AddValuePosition{HasPosition: true, IsBefore: true, Before: unquote(*op.BeforeTarget)}
		case op.AfterTarget != nil:
			add.Position = &sqlast.AddValuePosition{HasPosition: true, IsBefore: false, After: unquote(*op.AfterTarget)}
		}
		at.Operation.AddValue = add
	case s.Operation.RenameValue != nil:
		at.Operation.RenameValue = &sqlast.RenameValueOp{
			From: unquote(s.Operation.RenameValue.From),
			To:   unquote(s.Operation.RenameValue.To),
		}
	}
	return at
}

func toUnsupported(s *unsupportedStmt) *sqlast.Unsupported {
	raw := s.Keyword
	for _, tok := range s.Rest {
		raw += " " + tok
	}
	return &sqlast.Unsupported{Keyword: s.Keyword, Raw: raw}
}

// unquote strips the surrounding single quotes a String token always carries.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

func unquoteStrings(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = unquote(s)
	}
	return out
}
