/*
 * psx1 - R-type ALU, shift, and multiply/divide opcodes
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

func (c *CPU) opSll(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RD(), c.reg(word.RT())<<word.Imm5())
}

func (c *CPU) opSrl(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RD(), c.reg(word.RT())>>word.Imm5())
}

func (c *CPU) opSra(word Instruction, out *[32]uint32) {
	v := int32(c.reg(word.RT())) >> word.Imm5()
	c.setReg(out, word.RD(), uint32(v))
}

func (c *CPU) opSllv(word Instruction, out *[32]uint32) {
	shift := c.reg(word.RS()) & 0x1F
	c.setReg(out, word.RD(), c.reg(word.RT())<<shift)
}

func (c *CPU) opSrlv(word Instruction, out *[32]uint32) {
	shift := c.reg(word.RS()) & 0x1F
	c.setReg(out, word.RD(), c.reg(word.RT())>>shift)
}

func (c *CPU) opSrav(word Instruction, out *[32]uint32) {
	shift := c.reg(word.RS()) & 0x1F
	v := int32(c.reg(word.RT())) >> shift
	c.setReg(out, word.RD(), uint32(v))
}

func (c *CPU) opAnd(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RD(), c.reg(word.RS())&c.reg(word.RT()))
}

func (c *CPU) opOr(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RD(), c.reg(word.RS())|c.reg(word.RT()))
}

func (c *CPU) opXor(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RD(), c.reg(word.RS())^c.reg(word.RT()))
}

func (c *CPU) opNor(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RD(), ^(c.reg(word.RS()) | c.reg(word.RT())))
}

func (c *CPU) opSlt(word Instruction, out *[32]uint32) {
	v := uint32(0)
	if int32(c.reg(word.RS())) < int32(c.reg(word.RT())) {
		v = 1
	}
	c.setReg(out, word.RD(), v)
}

func (c *CPU) opSltu(word Instruction, out *[32]uint32) {
	v := uint32(0)
	if c.reg(word.RS()) < c.reg(word.RT()) {
		v = 1
	}
	c.setReg(out, word.RD(), v)
}

func (c *CPU) opAddu(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RD(), c.reg(word.RS())+c.reg(word.RT()))
}

func (c *CPU) opSubu(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RD(), c.reg(word.RS())-c.reg(word.RT()))
}

// opAdd traps to an Overflow exception on signed 32-bit overflow.
func (c *CPU) opAdd(word Instruction, out *[32]uint32) {
	a := int32(c.reg(word.RS()))
	b := int32(c.reg(word.RT()))
	sum := a + b
	if ((a ^ sum) & (b ^ sum)) < 0 {
		c.raiseException(excOverflow)
		return
	}
	c.setReg(out, word.RD(), uint32(sum))
}

// opSub traps to an Overflow exception on signed 32-bit overflow.
func (c *CPU) opSub(word Instruction, out *[32]uint32) {
	a := int32(c.reg(word.RS()))
	b := int32(c.reg(word.RT()))
	diff := a - b
	if ((a ^ b) & (a ^ diff)) < 0 {
		c.raiseException(excOverflow)
		return
	}
	c.setReg(out, word.RD(), uint32(diff))
}

func (c *CPU) opMfhi(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RD(), c.HI)
}

func (c *CPU) opMflo(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RD(), c.LO)
}

func (c *CPU) opMthi(word Instruction) {
	c.HI = c.reg(word.RS())
}

func (c *CPU) opMtlo(word Instruction) {
	c.LO = c.reg(word.RS())
}

func (c *CPU) opMult(word Instruction) {
	a := int64(int32(c.reg(word.RS())))
	b := int64(int32(c.reg(word.RT())))
	v := uint64(a * b)
	c.HI = uint32(v >> 32)
	c.LO = uint32(v)
}

func (c *CPU) opMultu(word Instruction) {
	a := uint64(c.reg(word.RS()))
	b := uint64(c.reg(word.RT()))
	v := a * b
	c.HI = uint32(v >> 32)
	c.LO = uint32(v)
}

// opDivu implements the unsigned-divide-by-zero semantics.
func (c *CPU) opDivu(word Instruction) {
	num := c.reg(word.RS())
	denom := c.reg(word.RT())
	if denom == 0 {
		c.HI = num
		c.LO = 0xFFFFFFFF
		return
	}
	c.HI = num % denom
	c.LO = num / denom
}

// opDiv implements the signed-divide edge cases: divide by zero and
// INT_MIN / -1. hi = num % div in the general case.
func (c *CPU) opDiv(word Instruction) {
	num := int32(c.reg(word.RS()))
	denom := int32(c.reg(word.RT()))

	switch {
	case denom == 0:
		c.HI = uint32(num)
		if num >= 0 {
			c.LO = 1
		} else {
			c.LO = 0xFFFFFFFF
		}
	case num == -0x80000000 && denom == -1:
		c.HI = 0
		c.LO = 0x80000000
	default:
		c.HI = uint32(num % denom)
		c.LO = uint32(num / denom)
	}
}
