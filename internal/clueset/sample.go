package clueset

import _ "embed"

// SampleFilename is the name reported for the built-in clue set
const SampleFilename = "sample.json"

//go:embed sample.json
var sampleJSON []byte

// Sample returns the built-in clue set, useful for a quick game or a rehearsal
func Sample() (*ClueSet, error) {
	return Load(sampleJSON)
}

// SampleDocument returns the raw built-in clue set, a template for hosts
// writing their own.
func SampleDocument() []byte {
	out := make([]byte, len(sampleJSON))
	copy(out, sampleJSON)
	return out
}
