//go:build js && wasm

package jscookie

import "syscall/js"

type documentStore struct {
	document js.Value
}

// DocumentStore binds the page's document.cookie. It returns nil when the
// global document is missing, for example inside a web worker.
func DocumentStore() Store {
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return nil
	}
	return documentStore{document: doc}
}

func (s documentStore) ReadCookie() string {
	v := s.document.Get("cookie")
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (s documentStore) WriteCookie(raw string) {
	s.document.Set("cookie", raw)
}
