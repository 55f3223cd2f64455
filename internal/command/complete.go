package command

import (
	"strings"
)

type Completeness int

const (
	Incomplete Completeness = iota
	Complete
)

func (c Completeness) String() string {
	if c == Complete {
		return "complete"
	}
	return "incomplete"
}

// IsComplete reports whether the accumulated buffer can be submitted.
// Meta commands are single line and always complete, statements need a
// trailing terminator. An empty or blank buffer is never complete.
func IsComplete(buffer string) Completeness {
	trimmed := strings.TrimSpace(buffer)
	if trimmed == "" {
		return Incomplete
	}
	if strings.HasPrefix(trimmed, MetaMarker) {
		return Complete
	}
	if strings.HasSuffix(trimmed, StatementTerminator) {
		return Complete
	}
	return Incomplete
}
