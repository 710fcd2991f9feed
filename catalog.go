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

import (
	"time"

	"golang.org/x/text/language"
)

// Catalog holds the fields of a PDF document catalog this library reads.
// The only required entry is Pages, the root of the page tree; all other
// entries are optional and keep their zero value when absent.
//
// The document catalog is documented in section 7.7.2 of PDF 32000-1:2008.
type Catalog struct {
	// Pages refers to the root node of the page tree.  It is kept as an
	// unresolved reference.
	Pages Reference

	// Version names a PDF version later than the one in the file header,
	// if the document declares one.
	Version Version

	// PageLayout specifies how pages shall be displayed.
	PageLayout Name

	// PageMode specifies how the document shall be displayed when opened.
	PageMode Name

	// Outlines refers to the outline hierarchy, if any.
	Outlines Reference

	// Metadata refers to the document-level XMP metadata stream, if any.
	Metadata Reference

	// Lang is the natural language of the document text.
	Lang language.Tag
}

// catalogFields describes the catalog entries read by ExtractCatalog.
var catalogFields = []FieldSpec{
	{Key: "PageLayout", Kind: KindName, Default: Name("SinglePage")},
	{Key: "PageMode", Kind: KindName, Default: Name("UseNone")},
}

// ExtractCatalog reads a document catalog.  Missing or unusable entries
// keep their defaults; diag may be nil.
func ExtractCatalog(r Getter, obj Object, diag DiagnosticFunc) *Catalog {
	dict, ok := GetDictTyped(r, obj, "Catalog")
	if !ok || dict == nil {
		if diag != nil {
			diag(Diagnostic{Field: "Root", Expected: KindDict, Missing: true})
		}
		return &Catalog{}
	}

	v := NewView(dict, r).OnDiagnostic(diag)
	cat := &Catalog{}

	// Pages must stay an unresolved reference: the page tree may be
	// arbitrarily large and is resolved on demand by the caller.
	if ref, isRef := v.Raw("Pages").(Reference); isRef {
		cat.Pages = ref
	} else if diag != nil {
		diag(Diagnostic{Field: "Pages", Expected: KindReference, Missing: !v.Has("Pages"), Got: KindOf(v.Raw("Pages"))})
	}
	if ref, isRef := v.Raw("Outlines").(Reference); isRef {
		cat.Outlines = ref
	}
	if ref, isRef := v.Raw("Metadata").(Reference); isRef {
		cat.Metadata = ref
	}

	fields := v.ReadFields(catalogFields)
	cat.PageLayout = fields["PageLayout"].(Name)
	cat.PageMode = fields["PageMode"].(Name)

	if verName, ok := v.GetName("Version", ""); ok {
		if ver, err := ParseVersion(string(verName)); err == nil {
			cat.Version = ver
		}
	}
	if lang, ok := v.GetString("Lang", nil); ok {
		if tag, err := language.Parse(lang.AsTextString()); err == nil {
			cat.Lang = tag
		}
	}

	return cat
}

// Info holds the fields of a PDF document information dictionary.
// All fields are optional.
//
// The document information dictionary is documented in section 14.3.3 of
// PDF 32000-1:2008.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator names the application that created the original document,
	// if the document was converted to PDF from another format.
	Creator string

	// Producer names the application that converted the document to PDF.
	Producer string

	// CreationDate gives the date and time the document was created.
	CreationDate time.Time

	// ModDate gives the date and time the document was most recently
	// modified.
	ModDate time.Time

	// Trapped indicates whether the document includes trapping
	// information.  Possible values are "True", "False" and "Unknown".
	Trapped Name
}

// ExtractInfo reads a document information dictionary.  Returns nil if obj
// does not resolve to a dictionary.
func ExtractInfo(r Getter, obj Object) *Info {
	dict, ok := GetDict(r, obj)
	if !ok || dict == nil {
		return nil
	}

	v := NewView(dict, r)
	info := &Info{}

	text := func(key Name) string {
		s, _ := v.GetString(key, nil)
		return s.AsTextString()
	}
	info.Title = text("Title")
	info.Author = text("Author")
	info.Subject = text("Subject")
	info.Keywords = text("Keywords")
	info.Creator = text("Creator")
	info.Producer = text("Producer")

	if s, ok := v.GetString("CreationDate", nil); ok {
		if t, err := s.AsDate(); err == nil {
			info.CreationDate = t
		}
	}
	if s, ok := v.GetString("ModDate", nil); ok {
		if t, err := s.AsDate(); err == nil {
			info.ModDate = t
		}
	}
	info.Trapped, _ = v.GetName("Trapped", "Unknown")

	return info
}
