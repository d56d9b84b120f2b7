/*
 * psx1 - CPU fetch/decode/execute loop
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

// Package cpu interprets the R3000A-style instruction set: fetch with delay
// slots, decode, execute, and the load-delay/exception machinery.
package cpu

import (
	"fmt"
	"log/slog"
)

// Bus is everything the CPU needs from the memory bus. Width-specific
// load/store calls are the only shape the CPU cares about; routing, DMA, and
// host-fatal diagnostics for unhandled addresses all live on the bus side.
type Bus interface {
	Load8(addr uint32) uint8
	Load16(addr uint32) uint16
	Load32(addr uint32) uint32
	Store8(addr uint32, v uint8)
	Store16(addr uint32, v uint16)
	Store32(addr uint32, v uint32)
}

// CPU couples a register file to the bus it fetches and executes against.
type CPU struct {
	State
	bus    Bus
	logger *slog.Logger
}

// New returns a CPU reset to the BIOS entry point, talking to
// bus for every memory access.
func New(bus Bus, logger *slog.Logger) *CPU {
	return &CPU{
		State:  *NewState(),
		bus:    bus,
		logger: logger,
	}
}

// fatalf logs a host-visible diagnostic with the full register dump and
// panics: every such fatal identifies the
// missing piece, it is never guest-recoverable corruption.
func (c *CPU) fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.logger.Error("cpu fatal", "reason", msg, "state", c.String())
	panic(msg)
}

// String renders the full CPU state for diagnostics.
func (c *CPU) String() string {
	return fmt.Sprintf(
		"{pc:%08x next_pc:%08x current_pc:%08x hi:%08x lo:%08x sr:%08x cause:%08x epc:%08x branch:%v delay_slot:%v regs:%08x}",
		c.PC, c.NextPC, c.CurrentPC, c.HI, c.LO, c.SR, c.CAUSE, c.EPC, c.Branch, c.DelaySlot, c.Regs,
	)
}

// Step runs one fetch/decode/execute cycle.
func (c *CPU) Step() {
	// (1) Apply the pending load into the shadow register file.
	shadow := c.Regs
	shadow[c.Pending.Reg] = c.Pending.Value
	shadow[0] = 0
	c.Pending = PendingLoad{}

	// (2)
	c.CurrentPC = c.PC
	if c.PC%4 != 0 {
		c.DelaySlot = c.Branch
		c.Branch = false
		c.raiseException(excLoadAddressError)
		c.Regs = shadow
		return
	}

	// (3)
	word := Instruction(c.bus.Load32(c.PC))

	// (4)
	c.PC = c.NextPC
	c.NextPC = c.PC + 4

	// (5)
	c.DelaySlot = c.Branch
	c.Branch = false

	// (6)
	c.execute(word, &shadow)

	// (7)
	shadow[0] = 0
	c.Regs = shadow
}

// reg reads a general register's pre-step value: instruction operands always
// observe the register file as it stood before this step's load-delay and
// primary effects landed.
func (c *CPU) reg(i uint32) uint32 {
	return c.Regs[i]
}

// setReg writes i in the shadow file under construction for this step.
func (c *CPU) setReg(out *[32]uint32, i, v uint32) {
	out[i] = v
	out[0] = 0
}

// setPendingLoad schedules a load result to land at the start of the next
// instruction, per the load-delay slot.
func (c *CPU) setPendingLoad(reg, v uint32) {
	c.Pending = PendingLoad{Reg: reg, Value: v}
}

// execute decodes word and dispatches to the opcode implementation, writing
// any general-register result into out.
func (c *CPU) execute(word Instruction, out *[32]uint32) {
	switch word.Primary() {
	case opSpecial:
		c.executeSpecial(word, out)
	case opRegimm:
		c.executeRegimm(word, out)
	case opJ:
		c.opJ(word)
	case opJal:
		c.opJal(word, out)
	case opBeq:
		c.opBeq(word)
	case opBne:
		c.opBne(word)
	case opBlez:
		c.opBlez(word)
	case opBgtz:
		c.opBgtz(word)
	case opAddi:
		c.opAddi(word, out)
	case opAddiu:
		c.opAddiu(word, out)
	case opSlti:
		c.opSlti(word, out)
	case opSltiu:
		c.opSltiu(word, out)
	case opAndi:
		c.opAndi(word, out)
	case opOri:
		c.opOri(word, out)
	case opLui:
		c.opLui(word, out)
	case opCop0:
		c.executeCop0(word, out)
	case opLb:
		c.opLb(word)
	case opLh:
		c.opLh(word)
	case opLw:
		c.opLw(word)
	case opLbu:
		c.opLbu(word)
	case opLhu:
		c.opLhu(word)
	case opSb:
		c.opSb(word)
	case opSh:
		c.opSh(word)
	case opSw:
		c.opSw(word)
	default:
		c.fatalf("unhandled opcode primary=%#x word=%#08x", word.Primary(), uint32(word))
	}
}

func (c *CPU) executeSpecial(word Instruction, out *[32]uint32) {
	switch word.Secondary() {
	case fnSll:
		c.opSll(word, out)
	case fnSrl:
		c.opSrl(word, out)
	case fnSra:
		c.opSra(word, out)
	case fnSllv:
		c.opSllv(word, out)
	case fnSrlv:
		c.opSrlv(word, out)
	case fnSrav:
		c.opSrav(word, out)
	case fnJr:
		c.opJr(word)
	case fnJalr:
		c.opJalr(word, out)
	case fnSyscall:
		c.opSyscall()
	case fnBreak:
		c.opBreak()
	case fnMfhi:
		c.opMfhi(word, out)
	case fnMthi:
		c.opMthi(word)
	case fnMflo:
		c.opMflo(word, out)
	case fnMtlo:
		c.opMtlo(word)
	case fnMult:
		c.opMult(word)
	case fnMultu:
		c.opMultu(word)
	case fnDiv:
		c.opDiv(word)
	case fnDivu:
		c.opDivu(word)
	case fnAdd:
		c.opAdd(word, out)
	case fnAddu:
		c.opAddu(word, out)
	case fnSub:
		c.opSub(word, out)
	case fnSubu:
		c.opSubu(word, out)
	case fnAnd:
		c.opAnd(word, out)
	case fnOr:
		c.opOr(word, out)
	case fnXor:
		c.opXor(word, out)
	case fnNor:
		c.opNor(word, out)
	case fnSlt:
		c.opSlt(word, out)
	case fnSltu:
		c.opSltu(word, out)
	default:
		c.fatalf("unhandled opcode secondary=%#x word=%#08x", word.Secondary(), uint32(word))
	}
}

// executeRegimm decodes BLTZ/BGEZ/BLTZAL/BGEZAL, selected out of the rt
// field rather than a secondary opcode field.
func (c *CPU) executeRegimm(word Instruction, out *[32]uint32) {
	rt := word.RT()
	isGe := rt&1 != 0
	isLink := rt>>1 == 0b1000

	if isLink {
		c.setReg(out, 31, c.NextPC)
	}

	v := int32(c.reg(word.RS()))
	taken := v < 0
	if isGe {
		taken = v >= 0
	}
	if taken {
		c.branch(word.ImmSE())
	}
}

// branch sets next_pc to the branch target, combined with the step-5 PC
// increment already applied this step.
func (c *CPU) branch(offsetSE uint32) {
	c.Branch = true
	c.NextPC = c.NextPC + (offsetSE << 2) - 4
}
