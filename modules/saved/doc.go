// Package saved persists names the user wants to keep.
//
// Records live in the "saved_names" MongoDB collection, keyed by an
// application-assigned UUID rather than the driver's ObjectID so the
// identifier survives serialization to clients unchanged. The HTTP surface
// covers create, list, delete and favorite toggling.
package saved
