// seehuhn.de/go/bizdoc - render fixed-layout business documents as PDF
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package gofont

import "testing"

func TestRead(t *testing.T) {
	for _, F := range All {
		t.Run(F.String(), func(t *testing.T) {
			info, err := F.Read()
			if err != nil {
				t.Fatal(err)
			}
			if info.UnitsPerEm == 0 {
				t.Error("UnitsPerEm is zero")
			}
			isMono := F == Mono || F == MonoBold
			if info.IsFixedPitch() != isMono {
				t.Errorf("IsFixedPitch() = %t, want %t", info.IsFixedPitch(), isMono)
			}
		})
	}
}

func TestUnknown(t *testing.T) {
	_, err := Font(99).TTF()
	if err == nil {
		t.Error("unknown font accepted")
	}
}
