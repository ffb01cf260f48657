// Package core holds the HTTP plumbing shared by all API modules: the
// HTTPError type, strict JSON request decoding, response envelope helpers,
// and the middleware stack (request logging, panic recovery, CORS).
package core
