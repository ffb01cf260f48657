// Package logos produces logo artwork for a company name in two independent
// modes: a textual design description requested from a conversational
// provider, and a rendered image fetched from a public text-to-image
// endpoint and returned as an inline data URI.
//
// Image generation degrades rather than fails: a non-200 response or a
// transport error yields a failure-flagged result carrying a human-readable
// fallback description instead of an error.
package logos
