// Package graphfile reads and writes graphs of named vertices as TOML
// documents.
//
// Format
//
//	[[vertex]]
//	name = "donkey"
//
//	[[vertex]]
//	name = "sheep"
//
//	[[edge]]
//	from = "donkey"
//	to = "sheep"
//	weight = 9.0   # optional, defaults to 1
//
// Pipeline
//
//	Decode / Load  – parse TOML, reject unknown keys
//	Validate       – struct rules plus cross-references, all problems reported at once
//	Build          – materialize a builder.Network (core.Graph[string] + name index)
//	Encode         – write any core.Graph[string] back out
//
// Errors
//
//	ErrInvalidDocument – syntax, unknown keys or a violated field rule
//	ErrDuplicateVertex – a vertex name declared twice (or, on Encode, two
//	                     vertices sharing a payload)
//	ErrUnknownVertex   – an edge endpoint that no [[vertex]] declares
package graphfile
