// package http contains the request and response types this module
// exchanges over the wire, plus the URL model and error taxonomy they're
// built from. The package name matches the root package name on purpose,
// so editors resolve the root package's type aliases without an extra hop.
package http
