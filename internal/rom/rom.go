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

// Package rom holds the immutable 512 KiB boot ROM image.
package rom

import "fmt"

// Size is the required boot ROM image length in bytes.
const Size = 512 * 1024

// ROM is a read-only byte array loaded once at construction.
type ROM struct {
	data [Size]byte
}

// New builds a ROM from image, which must be exactly Size bytes.
func New(image []byte) (*ROM, error) {
	if len(image) != Size {
		return nil, fmt.Errorf("rom: image is %d bytes, want %d", len(image), Size)
	}
	r := &ROM{}
	copy(r.data[:], image)
	return r, nil
}

// Load8 reads one byte at offset. The caller has already verified containment.
func (r *ROM) Load8(offset uint32) byte {
	return r.data[offset]
}

// Load16 reads a little-endian halfword at offset.
func (r *ROM) Load16(offset uint32) uint16 {
	return uint16(r.data[offset]) | uint16(r.data[offset+1])<<8
}

// Load32 reads a little-endian word at offset.
func (r *ROM) Load32(offset uint32) uint32 {
	return uint32(r.data[offset]) |
		uint32(r.data[offset+1])<<8 |
		uint32(r.data[offset+2])<<16 |
		uint32(r.data[offset+3])<<24
}
