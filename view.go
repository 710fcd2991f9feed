// github.com/oxpdf/pdf - a library for reading PDF files
// Copyright (C) 2025  The oxpdf authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

// Field reads the entry key from d with an expected type and a default.
//
// If the entry is missing, the function returns (def, false).  Otherwise
// the stored object is resolved through a single step of reference
// resolution, provided r is non-nil.  If the (possibly resolved) object
// has the expected kind, it is returned together with true.
//
// When r is nil and the stored object is a [Reference], the reference is
// returned as a provisional match: the field exists but is deferred.  This
// lets callers probe the shape of a dictionary without paying for
// resolution.
//
// In all other cases — wrong type, or a dangling reference — the entry is
// treated as absent and (def, false) is returned.  Field never fails and
// never panics on malformed input.
func Field(d Dict, key Name, r Getter, kind Kind, def Object) (Object, bool) {
	obj, ok := d[key]
	if !ok || obj == nil {
		return def, false
	}

	if r != nil {
		obj = ResolveReference(r, obj)
	}

	if KindOf(obj) == kind || kind == KindNumber && IsNumber(obj) {
		return obj, true
	}
	if r == nil {
		if _, isRef := obj.(Reference); isRef {
			return obj, true
		}
	}
	return def, false
}

// A Diagnostic describes a non-fatal data-quality problem found during
// typed field access.
type Diagnostic struct {
	// Field is the dictionary key the problem was found under.
	Field Name

	// Expected is the type the field was expected to have.
	Expected Kind

	// Got is the type actually found.  Only meaningful if Missing is
	// false.
	Got Kind

	// Missing is true if a required field was absent from the
	// dictionary.
	Missing bool
}

// DiagnosticFunc receives diagnostics from a [View].  Implementations must
// not panic; a typical implementation appends to a list or writes a log
// line.
type DiagnosticFunc func(Diagnostic)

// FieldSpec describes one entry of a dictionary type defined by the PDF
// specification: the key, the expected object type, whether the entry is
// required, and the value to substitute when it is missing or unusable.
type FieldSpec struct {
	Key      Name
	Kind     Kind
	Required bool
	Default  Object
}

// View provides typed access to the entries of a dictionary.
//
// A View does not own the dictionary; it borrows from the document's
// object graph and never mutates it.  Views are stateless and can be
// shared between goroutines.
type View struct {
	dict Dict
	r    Getter
	diag DiagnosticFunc
}

// NewView creates a view of dict.  If r is nil, field access runs in raw
// mode: references are not resolved, and a field holding a reference
// counts as present with a deferred value.
func NewView(dict Dict, r Getter) *View {
	return &View{dict: dict, r: r}
}

// OnDiagnostic registers a hook which is called for missing required
// fields and type mismatches.  It returns v to allow chaining during
// construction.
func (v *View) OnDiagnostic(f DiagnosticFunc) *View {
	v.diag = f
	return v
}

// Has reports whether the dictionary contains an entry for key, regardless
// of the entry's type or whether it can be resolved.
func (v *View) Has(key Name) bool {
	return v.dict.Has(key)
}

// Raw returns the stored field value without resolving references.
func (v *View) Raw(key Name) Object {
	return v.dict[key]
}

// Field reads the entry key with the given expected type and default.
// See the package-level [Field] for the exact semantics.
func (v *View) Field(key Name, kind Kind, def Object) (Object, bool) {
	obj, ok := Field(v.dict, key, v.r, kind, def)
	if !ok && v.dict.Has(key) {
		v.report(key, kind)
	}
	return obj, ok
}

func (v *View) report(key Name, expected Kind) {
	if v.diag == nil {
		return
	}
	got := v.dict[key]
	if v.r != nil {
		got = ResolveReference(v.r, got)
	}
	v.diag(Diagnostic{Field: key, Expected: expected, Got: KindOf(got)})
}

// GetInteger reads an integer entry.
func (v *View) GetInteger(key Name, def Integer) (Integer, bool) {
	obj, ok := v.Field(key, KindInteger, def)
	if x, isInt := obj.(Integer); isInt {
		return x, ok
	}
	return def, ok
}

// GetReal reads a real number entry.
func (v *View) GetReal(key Name, def Real) (Real, bool) {
	obj, ok := v.Field(key, KindReal, def)
	if x, isReal := obj.(Real); isReal {
		return x, ok
	}
	return def, ok
}

// GetNumber reads a numeric entry.  Both Integer and Real values are
// accepted.
func (v *View) GetNumber(key Name, def float64) (float64, bool) {
	obj, ok := v.Field(key, KindNumber, nil)
	switch x := obj.(type) {
	case Integer:
		return float64(x), ok
	case Real:
		return float64(x), ok
	}
	return def, ok
}

// GetBool reads a boolean entry.
func (v *View) GetBool(key Name, def Bool) (Bool, bool) {
	obj, ok := v.Field(key, KindBool, def)
	if x, isBool := obj.(Bool); isBool {
		return x, ok
	}
	return def, ok
}

// GetName reads a name entry.
func (v *View) GetName(key Name, def Name) (Name, bool) {
	obj, ok := v.Field(key, KindName, def)
	if x, isName := obj.(Name); isName {
		return x, ok
	}
	return def, ok
}

// GetString reads a string entry.
func (v *View) GetString(key Name, def String) (String, bool) {
	obj, ok := v.Field(key, KindString, def)
	if x, isString := obj.(String); isString {
		return x, ok
	}
	return def, ok
}

// GetArray reads an array entry.
func (v *View) GetArray(key Name) (Array, bool) {
	obj, ok := v.Field(key, KindArray, nil)
	if x, isArray := obj.(Array); isArray {
		return x, ok
	}
	return nil, ok
}

// GetDict reads a dictionary entry.
func (v *View) GetDict(key Name) (Dict, bool) {
	obj, ok := v.Field(key, KindDict, nil)
	if x, isDict := obj.(Dict); isDict {
		return x, ok
	}
	return nil, ok
}

// GetStream reads a stream entry.
func (v *View) GetStream(key Name) (*Stream, bool) {
	obj, ok := v.Field(key, KindStream, nil)
	if x, isStream := obj.(*Stream); isStream {
		return x, ok
	}
	return nil, ok
}

// ReadFields applies a descriptor table to the dictionary and returns the
// extracted values, keyed by field name.  Every described field is present
// in the result: fields which are missing or unusable map to their
// defaults.  Missing required fields and type mismatches are reported
// through the diagnostic hook.
func (v *View) ReadFields(specs []FieldSpec) map[Name]Object {
	res := make(map[Name]Object, len(specs))
	for _, spec := range specs {
		if spec.Required && !v.Has(spec.Key) && v.diag != nil {
			v.diag(Diagnostic{
				Field:    spec.Key,
				Expected: spec.Kind,
				Missing:  true,
			})
		}
		obj, _ := v.Field(spec.Key, spec.Kind, spec.Default)
		res[spec.Key] = obj
	}
	return res
}
