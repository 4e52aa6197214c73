package jscookie

import (
	"net/http"
	"strings"
)

// HTTPStore is a Store for server hosts. Reads see the cookies the client
// sent with the request; writes become Set-Cookie headers on the response.
// Writes are not visible to later reads of the same store.
type HTTPStore struct {
	writer  http.ResponseWriter
	request *http.Request
}

// NewHTTPStore returns an HTTPStore over the given request and response.
// Either may be nil: a nil request reads as empty and a nil writer drops
// writes.
func NewHTTPStore(w http.ResponseWriter, r *http.Request) *HTTPStore {
	return &HTTPStore{writer: w, request: r}
}

// ReadCookie implements Store. Pairs are rejoined with "; " whatever
// separator spacing the client used.
func (s *HTTPStore) ReadCookie() string {
	if s.request == nil {
		return ""
	}
	var pairs []string
	for _, header := range s.request.Header.Values("Cookie") {
		for _, pair := range strings.Split(header, ";") {
			if pair = strings.TrimSpace(pair); pair != "" {
				pairs = append(pairs, pair)
			}
		}
	}
	return strings.Join(pairs, "; ")
}

// WriteCookie implements Store.
func (s *HTTPStore) WriteCookie(raw string) {
	if s.writer == nil {
		return
	}
	s.writer.Header().Add("Set-Cookie", raw)
}
