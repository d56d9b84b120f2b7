/*
 * psx1 - Jump and branch opcodes
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

func (c *CPU) opJ(word Instruction) {
	c.Branch = true
	c.NextPC = (c.NextPC & 0xF0000000) | (word.ImmJump() << 2)
}

func (c *CPU) opJal(word Instruction, out *[32]uint32) {
	c.setReg(out, 31, c.NextPC)
	c.opJ(word)
}

func (c *CPU) opJr(word Instruction) {
	c.Branch = true
	c.NextPC = c.reg(word.RS())
}

func (c *CPU) opJalr(word Instruction, out *[32]uint32) {
	ret := c.NextPC
	c.opJr(word)
	c.setReg(out, word.RD(), ret)
}

func (c *CPU) opBeq(word Instruction) {
	if c.reg(word.RS()) == c.reg(word.RT()) {
		c.branch(word.ImmSE())
	}
}

func (c *CPU) opBne(word Instruction) {
	if c.reg(word.RS()) != c.reg(word.RT()) {
		c.branch(word.ImmSE())
	}
}

func (c *CPU) opBlez(word Instruction) {
	if int32(c.reg(word.RS())) <= 0 {
		c.branch(word.ImmSE())
	}
}

func (c *CPU) opBgtz(word Instruction) {
	if int32(c.reg(word.RS())) > 0 {
		c.branch(word.ImmSE())
	}
}
