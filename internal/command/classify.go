package command

import (
	"strings"
)

var sqlKeywords = map[string]SQLKind{
	"insert": Insert,
	"update": Update,
	"delete": Delete,
	"create": CreateTable,
	"select": Select,
}

// Classify maps any input text to exactly one command. It never fails,
// content the handlers cannot make sense of is classified as Unknown.
func Classify(text string) Command {
	if strings.HasPrefix(text, MetaMarker) {
		return Command{Type: Meta, Meta: classifyMeta(text)}
	}
	return Command{Type: SQL, SQL: classifySQL(text)}
}

func classifyMeta(text string) MetaCommand {
	args := strings.Fields(text)
	if len(args) == 0 {
		return MetaCommand{Kind: MetaUnknown}
	}

	switch args[0] {
	case ".exit":
		return MetaCommand{Kind: Exit}
	case ".help":
		return MetaCommand{Kind: Help}
	case ".open":
		return MetaCommand{Kind: Open, Raw: text}
	default:
		return MetaCommand{Kind: MetaUnknown}
	}
}

func classifySQL(text string) SQLCommand {
	// Split on single spaces only, "select\t*" is not a select.
	first, _, _ := strings.Cut(text, " ")
	kind, ok := sqlKeywords[first]
	if !ok {
		kind = SQLUnknown
	}
	return SQLCommand{Kind: kind, Raw: text}
}

// Keywords lists every command word the classifier recognises, meta
// commands first.
func Keywords() []string {
	return []string{".exit", ".help", ".open", "create", "delete", "insert", "select", "update"}
}
