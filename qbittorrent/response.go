package qbittorrent

import "encoding/json"

// Response is the normalized body of a successful API call. qBittorrent
// answers most endpoints with JSON, some with plain text (version strings)
// and some with nothing at all; Response smooths those over.
type Response struct {
	raw []byte
}

// Empty reports whether the server returned no body.
func (r *Response) Empty() bool {
	return len(r.raw) == 0
}

// Bytes returns the raw response body.
func (r *Response) Bytes() []byte {
	return r.raw
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.raw)
}

// Value returns the body as structured data: an empty object for an empty
// body, the parsed JSON value when the body is valid JSON, otherwise the raw
// text unchanged.
func (r *Response) Value() any {
	if r.Empty() {
		return map[string]any{}
	}

	var v any
	if err := json.Unmarshal(r.raw, &v); err != nil {
		return string(r.raw)
	}
	return v
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if r.Empty() {
		return nil
	}
	return json.Unmarshal(r.raw, v)
}
