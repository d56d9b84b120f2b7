/*
 * psx1 - Immediate-type opcodes, COP0, and exception entry
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

func (c *CPU) opAddi(word Instruction, out *[32]uint32) {
	a := int32(c.reg(word.RS()))
	b := int32(word.ImmSE())
	sum := a + b
	if ((a ^ sum) & (b ^ sum)) < 0 {
		c.raiseException(excOverflow)
		return
	}
	c.setReg(out, word.RT(), uint32(sum))
}

func (c *CPU) opAddiu(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RT(), c.reg(word.RS())+word.ImmSE())
}

func (c *CPU) opSlti(word Instruction, out *[32]uint32) {
	v := uint32(0)
	if int32(c.reg(word.RS())) < int32(word.ImmSE()) {
		v = 1
	}
	c.setReg(out, word.RT(), v)
}

func (c *CPU) opSltiu(word Instruction, out *[32]uint32) {
	v := uint32(0)
	if c.reg(word.RS()) < word.ImmSE() {
		v = 1
	}
	c.setReg(out, word.RT(), v)
}

func (c *CPU) opAndi(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RT(), c.reg(word.RS())&word.Imm())
}

func (c *CPU) opOri(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RT(), c.reg(word.RS())|word.Imm())
}

func (c *CPU) opLui(word Instruction, out *[32]uint32) {
	c.setReg(out, word.RT(), word.Imm()<<16)
}

// executeCop0 dispatches the system coprocessor instructions addressed
// through the rs field: MFC0, MTC0, and RFE.
func (c *CPU) executeCop0(word Instruction, out *[32]uint32) {
	switch word.RS() {
	case cop0Mfc0:
		c.opMfc0(word, out)
	case cop0Mtc0:
		c.opMtc0(word)
	case cop0Rfe:
		c.opRfe()
	default:
		c.fatalf("unhandled cop0 rs=%#x word=%#08x", word.RS(), uint32(word))
	}
}

// cop0Reg reads a COP0 register by number. Only SR (12), CAUSE (13), and
// EPC (14) are modeled; every other register is host-fatal.
func (c *CPU) cop0Reg(i uint32) uint32 {
	switch i {
	case 12:
		return c.SR
	case 13:
		return c.CAUSE
	case 14:
		return c.EPC
	default:
		c.fatalf("disallowed cop0 read: $%d", i)
		return 0
	}
}

func (c *CPU) opMfc0(word Instruction, out *[32]uint32) {
	c.setPendingLoad(word.RT(), c.cop0Reg(word.RD()))
}

// opMtc0: SR (12) is writable with any value. Registers 3, 5, 6, 7, 9, 11,
// and 13 accept only a write of 0; any other register, or a nonzero write
// to one of those, is host-fatal.
func (c *CPU) opMtc0(word Instruction) {
	rd := word.RD()
	switch rd {
	case 12:
		c.SR = c.reg(word.RT())
	case 3, 5, 6, 7, 9, 11, 13:
		if v := c.reg(word.RT()); v != 0 {
			c.fatalf("disallowed cop0 write: $%d = %#08x", rd, v)
		}
	default:
		c.fatalf("disallowed cop0 write: $%d", rd)
	}
}

// opRfe rotates the interrupt/mode stack in SR right by restoring the
// previous privilege pair: bits 5:4 move down into 3:2, and bits
// 5:4 are left unchanged (the oldest pair has nothing below it to fall into).
func (c *CPU) opRfe() {
	mode := c.SR & 0x3F
	c.SR = (c.SR &^ 0x0F) | (mode >> 2)
}

func (c *CPU) opSyscall() {
	c.raiseException(excSysCall)
}

func (c *CPU) opBreak() {
	c.raiseException(excBreak)
}

// raiseException implements exception entry: SR's mode stack rotates
// left (pushing a new interrupts-disabled, kernel-mode pair), CAUSE records
// the exception code plus whether the faulting instruction was in a branch
// delay slot, EPC records where execution resumes, and PC jumps to the
// BEV-selected handler vector.
func (c *CPU) raiseException(code uint32) {
	mode := c.SR & 0x3F
	c.SR = (c.SR &^ 0x3F) | ((mode << 2) & 0x3F)

	c.CAUSE = (c.CAUSE &^ 0x7C) | ((code << 2) & 0x7C)

	epc := c.CurrentPC
	if c.DelaySlot {
		epc -= 4
		c.CAUSE |= 1 << 31
	} else {
		c.CAUSE &^= 1 << 31
	}
	c.EPC = epc

	vector := uint32(vectorNormal)
	if c.SR&srBEV != 0 {
		vector = vectorBEV
	}
	c.PC = vector
	c.NextPC = c.PC + 4
}
