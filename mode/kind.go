package mode

import (
	"path"
	"reflect"
	"strings"
	"sync"
)

// Kind identifies a category. A category is a Go type: every Mode[T] belongs
// to the category KindOf[T](). Two categories are distinct whenever their Go
// types are distinct, even if their alternatives are spelled the same way.
//
// The zero Kind identifies nothing and is rejected wherever a category is
// expected.
type Kind struct {
	t reflect.Type
}

// Kinder is implemented by everything that names a category: Kind itself,
// *Category[T] and Mode[T].
type Kinder interface {
	Kind() Kind
}

// KindOf returns the category identifier of T.
// Complexity: O(1).
func KindOf[T comparable]() Kind {
	return Kind{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// Kind returns k, so a bare Kind can be passed where a Kinder is expected.
func (k Kind) Kind() Kind { return k }

// IsZero reports whether k is the zero Kind.
func (k Kind) IsZero() bool { return k.t == nil }

// Type returns the Go type backing the category (nil for the zero Kind).
func (k Kind) Type() reflect.Type { return k.t }

// Name returns the bare type name, e.g. "LineStyle".
func (k Kind) Name() string {
	if k.t == nil {
		return ""
	}
	if n := stripTypeParams(k.t.Name()); n != "" {
		return n
	}

	return k.t.String()
}

// kindNameCache memoizes String results by type.
var kindNameCache sync.Map // key: reflect.Type, val: string

// String returns the qualified category name "pkg.Type".
// Builtin and unnamed types render as their Go spelling ("int", "[]string").
func (k Kind) String() string {
	if k.t == nil {
		return "<nil kind>"
	}
	if v, ok := kindNameCache.Load(k.t); ok {
		return v.(string)
	}

	name := k.Name()
	if p := k.t.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	kindNameCache.Store(k.t, name)

	return name
}

// key orders categories canonically: full package path first, then the
// complete type name. Unlike String it never collapses two packages that
// share a base name.
func (k Kind) key() string {
	if k.t == nil {
		return ""
	}

	return k.t.PkgPath() + "." + k.t.String()
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}

	return s
}

// kindList renders kinds as "{a, b}" for error messages.
func kindList(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return "{" + strings.Join(names, ", ") + "}"
}
