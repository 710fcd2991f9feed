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

import "testing"

func TestVersion(t *testing.T) {
	for _, ver := range []Version{V1_0, V1_1, V1_2, V1_3, V1_4, V1_5, V1_6, V1_7, V2_0} {
		s, err := ver.ToString()
		if err != nil {
			t.Error(err)
			continue
		}
		out, err := ParseVersion(s)
		if err != nil {
			t.Error(err)
			continue
		}
		if out != ver {
			t.Errorf("wrong version: %s != %s", out, ver)
		}
	}

	if _, err := ParseVersion("0.9"); err == nil {
		t.Error("invalid version not detected")
	}
	if _, err := Version(0).ToString(); err == nil {
		t.Error("invalid version not detected")
	}
}
