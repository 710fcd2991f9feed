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
	"errors"
	"strings"
)

// MalformedFileError indicates that a PDF file could not be parsed.
// Errors of this type are only returned while a [Document] is constructed;
// field access on a constructed Document never fails.
type MalformedFileError struct {
	Err error
	Loc []string
}

func (err *MalformedFileError) Error() string {
	msg := "malformed PDF file"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if len(err.Loc) > 0 {
		msg += " (" + strings.Join(err.Loc, ", ") + ")"
	}
	return msg
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

var (
	errVersion = errors.New("unsupported PDF version")
	errCorrupt = &MalformedFileError{Err: errors.New("corrupted xref table")}
)
