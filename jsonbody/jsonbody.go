// Package jsonbody adapts httpc's byte-oriented request/response bodies
// to and from JSON using encoding/json, the way the original Rust crate's
// json-using-serde feature adapted its byte bodies to serde. It is kept
// out of the core packages on purpose: the core never imports encoding/json,
// so callers who don't need JSON never pay for it.
package jsonbody

import (
	"bytes"
	"encoding/json"
	"fmt"

	httpc "github.com/nullship/httpc"
)

// Encode marshals v and returns a reader suitable for Request.Body, along
// with the content type to set on the request.
func Encode(v interface{}) (*bytes.Reader, string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, "", fmt.Errorf("jsonbody: encode: %w", err)
	}
	return bytes.NewReader(b), "application/json; charset=UTF-8", nil
}

// Decode unmarshals resp's body into v.
func Decode(resp *httpc.Response, v interface{}) error {
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return fmt.Errorf("jsonbody: decode: %w", err)
	}
	return nil
}

// DecodeLazy unmarshals a streamed response's body into v, reading it
// directly off the wire as it arrives.
func DecodeLazy(resp *httpc.LazyResponse, v interface{}) error {
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("jsonbody: decode: %w", err)
	}
	return nil
}
