package rom

/*
 * psx1 - Boot ROM store
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

func TestNewRejectsWrongSize(t *testing.T) {
	if _, err := New(make([]byte, 16)); err == nil {
		t.Errorf("New with undersized image should fail")
	}
}

func TestLoads(t *testing.T) {
	img := make([]byte, Size)
	img[0] = 0x78
	img[1] = 0x56
	img[2] = 0x34
	img[3] = 0x12
	r, err := New(img)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if v := r.Load8(0); v != 0x78 {
		t.Errorf("Load8 got %#x, want %#x", v, 0x78)
	}
	if v := r.Load16(0); v != 0x5678 {
		t.Errorf("Load16 got %#x, want %#x", v, 0x5678)
	}
	if v := r.Load32(0); v != 0x12345678 {
		t.Errorf("Load32 got %#x, want %#x", v, 0x12345678)
	}
}
