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

// Package memmap masks a virtual address into its physical form and tells the
// bus which register window, if any, owns it. It exposes package-level
// functions and fixed window values; the bus calls Find on every access.
package memmap

// regionMask is indexed by addr>>29 and collapses KUSEG/KSEG0/KSEG1/KSEG2 into
// a single physical address space.
var regionMask = [8]uint32{
	0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, // KUSEG (4 x 512MB)
	0x7FFFFFFF, // KSEG0: cached
	0x1FFFFFFF, // KSEG1: uncached
	0xFFFFFFFF, // KSEG2
	0xFFFFFFFF,
}

// Mask collapses a virtual address to its physical form.
func Mask(addr uint32) uint32 {
	return addr & regionMask[addr>>29]
}

// Window is a (start, length) span of physical address space.
type Window struct {
	Start  uint32
	Length uint32
}

// Contains reports whether the already-masked address a falls in w, returning
// the intra-window offset when it does.
func (w Window) Contains(a uint32) (offset uint32, ok bool) {
	if a < w.Start || a >= w.Start+w.Length {
		return 0, false
	}
	return a - w.Start, true
}

// Defined windows. Addresses are given post-mask.
var (
	RAM          = Window{0x00000000, 0x200000}
	Expansion1   = Window{0x1F000000, 176}
	MemControl   = Window{0x1F801000, 36}
	RAMSize      = Window{0x1F801060, 4}
	IRQControl   = Window{0x1F801070, 8}
	DMA          = Window{0x1F801080, 0x80}
	Timers       = Window{0x1F801100, 48}
	Gpu          = Window{0x1F801810, 8}
	SPU          = Window{0x1F801C00, 640}
	Expansion2   = Window{0x1F802000, 66}
	BIOS         = Window{0x1FC00000, 0x80000}
	CacheControl = Window{0xFFFE0130, 4}
)

// Find masks addr and reports which window, if any, contains it together with
// the intra-window offset. Windows never overlap, so the first match is final.
func Find(addr uint32, windows ...Window) (w Window, offset uint32, ok bool) {
	a := Mask(addr)
	for _, win := range windows {
		if off, hit := win.Contains(a); hit {
			return win, off, true
		}
	}
	return Window{}, 0, false
}
