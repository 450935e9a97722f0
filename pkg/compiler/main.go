// Package compiler provides the front end of a C-subset compiler: a
// tokenizer and a diagnosing recursive-descent parser.
//
// Pipeline: C source → Tokenize → Parse → AST + diagnostics
package compiler
