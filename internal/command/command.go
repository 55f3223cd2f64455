package command

// MetaMarker prefixes every administrative command.
const MetaMarker = "."

// StatementTerminator ends every data command.
const StatementTerminator = ";"

type Type int

const (
	Meta Type = iota + 1
	SQL
)

func (t Type) String() string {
	switch t {
	case Meta:
		return "meta"
	case SQL:
		return "sql"
	default:
		return "unknown"
	}
}

type MetaKind int

const (
	MetaUnknown MetaKind = iota
	Exit
	Help
	Open
)

func (k MetaKind) String() string {
	switch k {
	case Exit:
		return ".exit"
	case Help:
		return ".help"
	case Open:
		return ".open"
	default:
		return "Unknown command"
	}
}

// MetaCommand is a session-control instruction. Raw is set only for Open,
// the handler extracts the target from it.
type MetaCommand struct {
	Kind MetaKind
	Raw  string
}

func (c MetaCommand) String() string {
	return c.Kind.String()
}

type SQLKind int

const (
	SQLUnknown SQLKind = iota
	Insert
	Delete
	Update
	CreateTable
	Select
)

func (k SQLKind) String() string {
	switch k {
	case Insert:
		return "INSERT"
	case Delete:
		return "DELETE"
	case Update:
		return "UPDATE"
	case CreateTable:
		return "CREATE TABLE"
	case Select:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// SQLCommand carries the full statement text verbatim, whatever its kind.
type SQLCommand struct {
	Kind SQLKind
	Raw  string
}

func (c SQLCommand) String() string {
	return c.Raw
}

// Command is exactly one of a MetaCommand or an SQLCommand, selected by Type.
type Command struct {
	Type Type
	Meta MetaCommand
	SQL  SQLCommand
}

func (c Command) IsMeta() bool {
	return c.Type == Meta
}

func (c Command) String() string {
	if c.IsMeta() {
		return c.Meta.String()
	}
	return c.SQL.String()
}
