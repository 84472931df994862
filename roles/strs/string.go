package strs

import (
	"strings"
	"unicode/utf8"
)

// Stringish is satisfied by anything cheaply convertible to a string.
// Helpers accept Stringish instead of a single concrete type so that native
// strings, byte slices and runes all work without a conversion dance.
type Stringish interface {
	~string | ~[]byte | ~rune
}

// String is an immutable string value with an ergonomics-first surface.
// Every operation returns a new owned String; nothing hands out views into
// shared storage.
//
// String shadows the native string vocabulary type. Interop with code that
// expects a native string is always one call away; see the Interop section
// (Wrap, Unwrap).
type String struct {
	s string
}

// New creates a new empty String.
func New() String {
	return String{}
}

// From creates a String from anything Stringish.
func From[T Stringish](v T) String {
	return String{s: string(v)}
}

// ByteLen returns the length of the String in bytes, not runes or graphemes.
// It may not be what a human considers the length of the string.
func (s String) ByteLen() int {
	return len(s.s)
}

// CharLen returns the length of the String in runes.
func (s String) CharLen() int {
	return utf8.RuneCountInString(s.s)
}

// IsEmpty reports whether the String has a length of zero bytes.
func (s String) IsEmpty() bool {
	return len(s.s) == 0
}

// Get returns the substring covering the byte range [start, end) as a new
// owned String. It returns false when the range is out of bounds or either
// end falls inside a UTF-8 code point.
func (s String) Get(start, end int) (String, bool) {
	if start < 0 || end < start || end > len(s.s) {
		return String{}, false
	}
	if !boundary(s.s, start) || !boundary(s.s, end) {
		return String{}, false
	}
	return String{s: strings.Clone(s.s[start:end])}, true
}

// SplitAt divides the String into two owned halves at the given byte offset.
// It returns false when mid is past the end or not on a code point boundary.
func (s String) SplitAt(mid int) (String, String, bool) {
	if mid < 0 || mid > len(s.s) || !boundary(s.s, mid) {
		return String{}, String{}, false
	}
	return String{s: strings.Clone(s.s[:mid])}, String{s: strings.Clone(s.s[mid:])}, true
}

// TrimStart returns the String with leading whitespace removed.
func (s String) TrimStart() String {
	return String{s: strings.TrimLeft(s.s, " \t\n\r\v\f")}
}

// TrimEnd returns the String with trailing whitespace removed.
func (s String) TrimEnd() String {
	return String{s: strings.TrimRight(s.s, " \t\n\r\v\f")}
}

// JoinStr returns a new String with other appended.
func (s String) JoinStr(other string) String {
	return String{s: s.s + other}
}

// JoinChar returns a new String with the rune appended.
func (s String) JoinChar(ch rune) String {
	return String{s: s.s + string(ch)}
}

// Bytes returns a cursor over the bytes of the String.
func (s String) Bytes() Bytes {
	return newBytes(s)
}

// Compare lexicographically compares two Strings, returning -1, 0 or +1.
func (s String) Compare(other String) int {
	return strings.Compare(s.s, other.s)
}

// Equal reports whether two Strings hold the same bytes. Strings are also
// directly comparable with ==.
func (s String) Equal(other String) bool {
	return s.s == other.s
}

// String implements fmt.Stringer.
func (s String) String() string {
	return s.s
}

// boundary reports whether i sits on a UTF-8 code point boundary of str.
func boundary(str string, i int) bool {
	if i == 0 || i == len(str) {
		return true
	}
	return utf8.RuneStart(str[i])
}

// Interop
//
// These conversions bridge String and the native string vocabulary type.
// They are the only sanctioned crossing points; keep them out of hot loops
// but expect to use them at every API edge that predates this package.

// Wrap converts a native string into a String.
func Wrap(s string) String {
	return String{s: s}
}

// Unwrap converts the String back into a native string. The result is owned
// by the caller; Go strings are immutable, so no copy is needed.
func (s String) Unwrap() string {
	return s.s
}
