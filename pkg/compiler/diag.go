package compiler

import "fmt"

// DiagKind identifies the category of a parse diagnostic.
type DiagKind int

const (
	// UnexpectedToken reports a token (or end of input) where the
	// grammar required something else.
	UnexpectedToken DiagKind = iota
	// UnsupportedConstruct reports input that was recognized but falls
	// outside the supported language subset.
	UnsupportedConstruct
)

var diagKindNames = [...]string{
	UnexpectedToken:      "UnexpectedToken",
	UnsupportedConstruct: "UnsupportedConstruct",
}

func (k DiagKind) String() string {
	if int(k) >= 0 && int(k) < len(diagKindNames) {
		return diagKindNames[k]
	}
	return fmt.Sprintf("DiagKind(%d)", int(k))
}

// Diagnostic records one problem found during parsing. Diagnostics are
// plain values: the parser collects them and keeps going, so no
// diagnostic is fatal and a parse always completes.
type Diagnostic struct {
	Kind     DiagKind
	Line     int    // 1-based source line of the offending position
	Column   int    // 1-based column on that line
	Expected string // for UnexpectedToken: what the grammar required
	Found    string // the offending lexeme, or "end of input"
	Msg      string // human-readable summary
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d, col %d: %s", d.Line, d.Column, d.Msg)
}
