/*
 * psx1 - Virtual address map
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package memmap

import "testing"

// Check region mask table matches the per-region window values.
func TestMask(t *testing.T) {
	tests := []struct {
		name string
		addr uint32
		want uint32
	}{
		{"kuseg low", 0x00000000, 0x00000000},
		{"kuseg high", 0x7FFFFFFF, 0x7FFFFFFF},
		{"kseg0", 0x80100000, 0x00100000},
		{"kseg1", 0xA0100000, 0x00100000},
		{"kseg2", 0xFFFE0130, 0xFFFE0130},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := Mask(tt.addr); r != tt.want {
				t.Errorf("Mask(%#x) got %#x, want %#x", tt.addr, r, tt.want)
			}
		})
	}
}

// Equivalent addresses differing only by region bits must mask identically.
func TestMaskRegionEquivalence(t *testing.T) {
	phys := uint32(0x001FFFFC)
	regions := []uint32{
		0x00000000, // KUSEG
		0x80000000, // KSEG0
		0xA0000000, // KSEG1
	}
	for _, base := range regions {
		got := Mask(base | phys)
		if got != phys {
			t.Errorf("Mask(%#x) got %#x, want %#x", base|phys, got, phys)
		}
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{Start: 0x1F801080, Length: 0x80}
	if off, ok := w.Contains(0x1F801088); !ok || off != 8 {
		t.Errorf("Contains in-range got off=%d ok=%v, want off=8 ok=true", off, ok)
	}
	if _, ok := w.Contains(0x1F801080 + 0x80); ok {
		t.Errorf("Contains should exclude the end boundary")
	}
	if _, ok := w.Contains(0x1F801080 - 1); ok {
		t.Errorf("Contains should exclude addresses before start")
	}
}

func TestFind(t *testing.T) {
	w, off, ok := Find(0xA0000010, RAM, BIOS)
	if !ok || w != RAM || off != 0x10 {
		t.Errorf("Find RAM got w=%v off=%d ok=%v", w, off, ok)
	}
	_, _, ok = Find(0x1F802100, RAM, BIOS)
	if ok {
		t.Errorf("Find should miss addresses not covered by any window")
	}
}
