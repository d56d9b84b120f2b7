package ram

/*
 * psx1 - Main RAM store
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

import "testing"

func TestNewIsPoisoned(t *testing.T) {
	r := New()
	if v := r.Load8(0); v != 0xCA {
		t.Errorf("fresh RAM byte got %#x, want 0xCA", v)
	}
	if v := r.Load8(Size - 1); v != 0xCA {
		t.Errorf("fresh RAM last byte got %#x, want 0xCA", v)
	}
}

func TestStoreLoadRoundTrip(t *testing.T) {
	r := New()
	r.Store32(0x100, 0xDEADBEEF)
	if v := r.Load32(0x100); v != 0xDEADBEEF {
		t.Errorf("Load32 got %#x, want %#x", v, 0xDEADBEEF)
	}
	if v := r.Load16(0x100); v != 0xBEEF {
		t.Errorf("Load16 got %#x, want %#x", v, 0xBEEF)
	}
	if v := r.Load8(0x102); v != 0xAD {
		t.Errorf("Load8 got %#x, want %#x", v, 0xAD)
	}

	r.Store16(0x200, 0x1234)
	if v := r.Load16(0x200); v != 0x1234 {
		t.Errorf("Store16/Load16 got %#x, want %#x", v, 0x1234)
	}

	r.Store8(0x300, 0x42)
	if v := r.Load8(0x300); v != 0x42 {
		t.Errorf("Store8/Load8 got %#x, want %#x", v, 0x42)
	}
}
