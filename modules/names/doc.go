// Package names synthesizes candidate business names in Arabic and English
// using eight interchangeable strategies: an AI-backed strategy that asks a
// conversational-completion provider (with a canned fallback list when the
// provider fails), and seven local strategies built from fixed word lists and
// an injectable random source.
//
// Strategy dispatch is closed: an unrecognized tag is an error, never a
// silent default. All randomized strategies draw from the Generator's random
// source so tests can supply a deterministic seed.
package names
