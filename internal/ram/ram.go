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

// Package ram holds the console's 2 MiB of mutable main memory.
package ram

// Size is the main memory size in bytes.
const Size = 2 * 1024 * 1024

// poison is the garbage fill value memory starts with, so an uninitialized
// read is recognizable in a dump rather than silently reading as zero.
const poison = 0xCA

// RAM is a flat, byte-addressable little-endian memory.
type RAM struct {
	data [Size]byte
}

// New returns RAM filled with the poison byte.
func New() *RAM {
	r := &RAM{}
	for i := range r.data {
		r.data[i] = poison
	}
	return r
}

func (r *RAM) Load8(offset uint32) byte {
	return r.data[offset]
}

func (r *RAM) Load16(offset uint32) uint16 {
	return uint16(r.data[offset]) | uint16(r.data[offset+1])<<8
}

func (r *RAM) Load32(offset uint32) uint32 {
	return uint32(r.data[offset]) |
		uint32(r.data[offset+1])<<8 |
		uint32(r.data[offset+2])<<16 |
		uint32(r.data[offset+3])<<24
}

func (r *RAM) Store8(offset uint32, v byte) {
	r.data[offset] = v
}

func (r *RAM) Store16(offset uint32, v uint16) {
	r.data[offset] = byte(v)
	r.data[offset+1] = byte(v >> 8)
}

func (r *RAM) Store32(offset uint32, v uint32) {
	r.data[offset] = byte(v)
	r.data[offset+1] = byte(v >> 8)
	r.data[offset+2] = byte(v >> 16)
	r.data[offset+3] = byte(v >> 24)
}
