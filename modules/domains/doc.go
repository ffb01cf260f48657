// Package domains estimates domain-name availability for a candidate
// business name.
//
// A free-text name is normalized into a bare label (generic entity words
// stripped, a fixed table of Arabic business terms transliterated, any
// remaining non-ASCII residue replaced by a synthetic label), then probed
// against a fixed set of top-level domains with plain DNS lookups.
//
// The probe is a heuristic, not a registry check: a name that fails to
// resolve is reported as available (fail-open), although DNS non-resolution
// does not guarantee the domain is unregistered. Callers wanting registry
// accuracy need a WHOIS-backed service, which this package deliberately is
// not.
package domains
