// This file declares the participle grammar of the cluster record format.
package dataset

import "github.com/alecthomas/participle/v2"

// fileAST is the root rule: zero or more cluster records.
type fileAST struct {
	Records []*recordAST `@@*`
}

// recordAST is one cluster record.
type recordAST struct {
	ID     string     `"cluster" @String`
	N      int        `"n" "=" @Int`
	Energy string     `"energy" "=" @("-"? (Float | Int))`
	Bonds  []*bondAST `"{" @@* "}"`
}

// bondAST is one directed hydrogen bond, donor>acceptor, 1-based indices.
type bondAST struct {
	From int `@Int`
	To   int `">" @Int`
}

// recordParser is built once; ParseString is safe for concurrent use.
var recordParser = participle.MustBuild[fileAST](
	participle.Unquote("String"),
)
