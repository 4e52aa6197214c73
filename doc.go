// Package jscookie reads and writes cookies in the document.cookie string
// format. It includes:
//
//   - Jar: Set/Get/All/Remove over an injected Store, with immutable
//     WithAttributes/WithConverter builders.
//   - Attributes: ordered, immutable cookie directives (path, domain,
//     expires, secure, sameSite, partitioned or anything else) and Merge.
//   - PercentConverter: the default value encoding, and ConverterFuncs for
//     custom or partial converters.
//   - Stores: MemoryStore (browser semantics in process), HTTPStore
//     (Cookie / Set-Cookie headers) and DocumentStore (document.cookie
//     under js/wasm).
//   - Typed values through a Codec (JSON or MessagePack).
//   - Presets for essential, analytics and third-party cookies.
//
// Basic usage:
//
//	jar := jscookie.New(jscookie.NewMemoryStore())
//	jar.Set("name", "value", jscookie.NewAttributes().WithExpires(7))
//	v, ok := jar.Get("name")
//	jar.Remove("name")
//
// Notes:
//   - Without a store every operation is a no-op: Set and Get report false
//     and All returns nil.
//   - Cookie names always use the default converter, so a custom converter
//     never changes how names are stored.
//   - Attribute values are cut at the first ';'.
package jscookie
