package jscookie

// Merge combines sources left to right into a new Attributes. For every
// name the last source that defines it wins; a name keeps the position it
// had where it first appeared. No source is modified.
func Merge(sources ...Attributes) Attributes {
	var out Attributes
	for _, src := range sources {
		for _, name := range src.names {
			out.put(name, src.values[name])
		}
	}
	return out
}

// mergeConverter layers override on top of base. A ConverterFuncs with a
// nil field keeps the matching function of base.
func mergeConverter(base, override Converter) Converter {
	var funcs ConverterFuncs
	switch c := override.(type) {
	case nil:
		return base
	case ConverterFuncs:
		funcs = c
	case *ConverterFuncs:
		if c == nil {
			return base
		}
		funcs = *c
	default:
		return override
	}
	if funcs.ReadFunc == nil {
		funcs.ReadFunc = base.Read
	}
	if funcs.WriteFunc == nil {
		funcs.WriteFunc = base.Write
	}
	return funcs
}
