package compiler

// Analyze runs the whole front end over src: tokenize, then parse. It is
// the one-call entry point for callers that do not need the token slice
// separately.
func Analyze(src string) (*Program, []Diagnostic) {
	return Parse(Tokenize(src))
}
