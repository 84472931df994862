package strs

// Compatibility shims for users arriving from a dynamically-typed scripting
// background. Every function here has an idiomatic replacement and exists
// only to make the first week less surprising. Shims match the reference
// semantics on the happy path and carry no guarantee beyond that; they are
// excluded from the generated reference.

// Len returns the byte length of the String.
//
// Deprecated: use either ByteLen or CharLen to be explicit about meaning.
func (s String) Len() int {
	return s.ByteLen()
}

// Lstrip returns the String with leading whitespace removed.
//
// Deprecated: in Go, we refer to this as TrimStart.
func (s String) Lstrip() String {
	return s.TrimStart()
}

// Rstrip returns the String with trailing whitespace removed.
//
// Deprecated: in Go, we refer to this as TrimEnd.
func (s String) Rstrip() String {
	return s.TrimEnd()
}

// Strip returns the String with surrounding whitespace removed.
//
// Deprecated: use TrimStart().TrimEnd().
func (s String) Strip() String {
	return s.TrimStart().TrimEnd()
}
