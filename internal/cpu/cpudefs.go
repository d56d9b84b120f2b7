/*
 * psx1 - CPU register file and opcode constants
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

// Primary opcode field values.
const (
	opSpecial = 0x00
	opRegimm  = 0x01
	opJ       = 0x02
	opJal     = 0x03
	opBeq     = 0x04
	opBne     = 0x05
	opBlez    = 0x06
	opBgtz    = 0x07
	opAddi    = 0x08
	opAddiu   = 0x09
	opSlti    = 0x0A
	opSltiu   = 0x0B
	opAndi    = 0x0C
	opOri     = 0x0D
	opLui     = 0x0F
	opCop0    = 0x10
	opLb      = 0x20
	opLh      = 0x21
	opLw      = 0x23
	opLbu     = 0x24
	opLhu     = 0x25
	opSb      = 0x28
	opSh      = 0x29
	opSw      = 0x2B
)

// Secondary (function) field values under primary 0x00.
const (
	fnSll     = 0x00
	fnSrl     = 0x02
	fnSra     = 0x03
	fnSllv    = 0x04
	fnSrlv    = 0x06
	fnSrav    = 0x07
	fnJr      = 0x08
	fnJalr    = 0x09
	fnSyscall = 0x0C
	fnBreak   = 0x0D
	fnMfhi    = 0x10
	fnMthi    = 0x11
	fnMflo    = 0x12
	fnMtlo    = 0x13
	fnMult    = 0x18
	fnMultu   = 0x19
	fnDiv     = 0x1A
	fnDivu    = 0x1B
	fnAdd     = 0x20
	fnAddu    = 0x21
	fnSub     = 0x22
	fnSubu    = 0x23
	fnAnd     = 0x24
	fnOr      = 0x25
	fnXor     = 0x26
	fnNor     = 0x27
	fnSlt     = 0x2A
	fnSltu    = 0x2B
)

// COP0 submode (rs field) values under primary 0x10.
const (
	cop0Mfc0 = 0x00
	cop0Mtc0 = 0x04
	cop0Rfe  = 0x10
)

// Exception codes.
const (
	excLoadAddressError  = 0x04
	excStoreAddressError = 0x05
	excSysCall           = 0x08
	excBreak             = 0x09
	excOverflow          = 0x0C
)

// Status register bits.
const (
	srIsolateCache = 1 << 16
	srBEV          = 1 << 22
)

// Exception vectors.
const (
	vectorNormal = 0x80000000
	vectorBEV    = 0xBFC00180
)

// PendingLoad is the single load-delay slot: a register index plus the value
// that will land in it at the start of the next instruction.
type PendingLoad struct {
	Reg   uint32
	Value uint32
}

// State is the guest-visible CPU register file.
type State struct {
	Regs [32]uint32

	PC        uint32
	NextPC    uint32
	CurrentPC uint32

	HI uint32
	LO uint32

	SR    uint32
	CAUSE uint32
	EPC   uint32

	Pending PendingLoad

	Branch    bool
	DelaySlot bool
}

// NewState returns a CPU with PC at the BIOS reset vector, NextPC one word
// past it, and all other state zeroed.
func NewState() *State {
	s := &State{
		PC: 0xBFC00000,
	}
	s.NextPC = s.PC + 4
	return s
}

// Reg reads general register i. Register 0 always reads as zero.
func (s *State) Reg(i uint32) uint32 {
	return s.Regs[i]
}

// SetReg writes general register i. Writes to register 0 are discarded.
func (s *State) SetReg(i, v uint32) {
	s.Regs[i] = v
	s.Regs[0] = 0
}
