package http

import "strings"

// HeaderField is one request header, kept in the order the caller set it
// in; every provided header is emitted on the wire in that order.
type HeaderField struct {
	Name  string
	Value string
}

// RequestHeader is an ordered, possibly-repeating sequence of header
// fields, every one of which is emitted on the wire in order. Lookups are
// case-insensitive; output preserves the caller's original casing and
// order, unlike net/http.Header's MIME-canonicalization.
type RequestHeader []HeaderField

// Get returns the first value set for name (case-insensitive), and
// whether it was found at all.
func (h RequestHeader) Get(name string) (string, bool) {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// Has reports whether any field with this name (case-insensitive) is set.
func (h RequestHeader) Has(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Add appends a field, keeping any existing fields with the same name.
func (h RequestHeader) Add(name, value string) RequestHeader {
	return append(h, HeaderField{Name: name, Value: value})
}

// Set replaces every existing field with this name (case-insensitive)
// with a single field carrying the new value, preserving the position of
// the first match; if none existed, it's appended.
func (h RequestHeader) Set(name, value string) RequestHeader {
	out := make(RequestHeader, 0, len(h)+1)
	replaced := false
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			if !replaced {
				out = append(out, HeaderField{Name: name, Value: value})
				replaced = true
			}
			continue
		}
		out = append(out, f)
	}
	if !replaced {
		out = append(out, HeaderField{Name: name, Value: value})
	}
	return out
}

// Del removes every field with this name (case-insensitive).
func (h RequestHeader) Del(name string) RequestHeader {
	out := make(RequestHeader, 0, len(h))
	for _, f := range h {
		if !strings.EqualFold(f.Name, name) {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns an independent copy.
func (h RequestHeader) Clone() RequestHeader {
	if h == nil {
		return nil
	}
	out := make(RequestHeader, len(h))
	copy(out, h)
	return out
}

// ResponseHeader maps lowercase header names to the values seen for them,
// oldest first; Get returns the last-seen value, while Values exposes the
// full history for callers that need every occurrence.
type ResponseHeader map[string][]string

// Get returns the last-seen value for name (case-insensitive lookup), or
// "" if absent.
func (h ResponseHeader) Get(name string) string {
	vs := h[strings.ToLower(name)]
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}

// Values returns every value seen for name, oldest first.
func (h ResponseHeader) Values(name string) []string {
	return h[strings.ToLower(name)]
}

// Has reports whether name was present at all.
func (h ResponseHeader) Has(name string) bool {
	return len(h[strings.ToLower(name)]) > 0
}

// Add appends a value under name's lowercase form.
func (h ResponseHeader) Add(name, value string) {
	key := strings.ToLower(name)
	h[key] = append(h[key], value)
}

// Del removes every value under name.
func (h ResponseHeader) Del(name string) {
	delete(h, strings.ToLower(name))
}
