package protocol

// Messages are single JSON documents terminated by a newline, one response
// line per request line.

const (
	RequestSQL  = "sql"
	RequestPing = "ping"
)

type Request struct {
	Type string `json:"type"`
	SQL  string `json:"sql,omitempty"`
}

// Column and Value keep the field names the server encodes them with.
type Column struct {
	Kind int    `json:"Kind"`
	Size uint32 `json:"Size"`
	Name string `json:"Name"`
}

type Value struct {
	Value any  `json:"Value"`
	Valid bool `json:"Valid"`
}

type Response struct {
	Kind         int       `json:"kind,omitempty"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	Columns      []Column  `json:"columns,omitempty"`
	Rows         [][]Value `json:"rows,omitempty"`
	RowsAffected int       `json:"rows_affected,omitempty"`
	Message      string    `json:"message,omitempty"`
}
