//go:build !(js && wasm)

package jscookie

// DocumentStore returns nil outside a js/wasm build: there is no
// document.cookie to bind, and a jar over a nil store is a no-op.
func DocumentStore() Store {
	return nil
}
