/*
 * psx1 - Instruction decoder
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

package cpu

// Instruction is a 32-bit opcode word. Its bit fields are extracted on
// demand; it carries no other state.
type Instruction uint32

// Primary returns bits [31:26], the primary opcode field.
func (i Instruction) Primary() uint32 {
	return uint32(i) >> 26
}

// Secondary returns bits [5:0], the function field for primary 0x00 (R-type).
func (i Instruction) Secondary() uint32 {
	return uint32(i) & 0x3F
}

// RS returns bits [25:21].
func (i Instruction) RS() uint32 {
	return (uint32(i) >> 21) & 0x1F
}

// RT returns bits [20:16].
func (i Instruction) RT() uint32 {
	return (uint32(i) >> 16) & 0x1F
}

// RD returns bits [15:11].
func (i Instruction) RD() uint32 {
	return (uint32(i) >> 11) & 0x1F
}

// Imm5 returns bits [10:6], the fixed shift amount.
func (i Instruction) Imm5() uint32 {
	return (uint32(i) >> 6) & 0x1F
}

// Imm returns bits [15:0], the zero-extended immediate.
func (i Instruction) Imm() uint32 {
	return uint32(i) & 0xFFFF
}

// ImmSE returns bits [15:0] sign-extended through 16->32 bits.
func (i Instruction) ImmSE() uint32 {
	return uint32(int32(int16(uint16(i))))
}

// ImmJump returns bits [25:0], the target field of J/JAL.
func (i Instruction) ImmJump() uint32 {
	return uint32(i) & 0x03FFFFFF
}
