/*
 * psx1 - Load and store opcodes
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

// Loads never write their destination register directly: they populate the
// pending-load slot consumed at the start of the next instruction.

func (c *CPU) opLb(word Instruction) {
	addr := c.reg(word.RS()) + word.ImmSE()
	v := int32(int8(c.bus.Load8(addr)))
	c.setPendingLoad(word.RT(), uint32(v))
}

func (c *CPU) opLbu(word Instruction) {
	addr := c.reg(word.RS()) + word.ImmSE()
	c.setPendingLoad(word.RT(), uint32(c.bus.Load8(addr)))
}

func (c *CPU) opLh(word Instruction) {
	addr := c.reg(word.RS()) + word.ImmSE()
	if addr%2 != 0 {
		c.raiseException(excLoadAddressError)
		return
	}
	v := int32(int16(c.bus.Load16(addr)))
	c.setPendingLoad(word.RT(), uint32(v))
}

func (c *CPU) opLhu(word Instruction) {
	addr := c.reg(word.RS()) + word.ImmSE()
	if addr%2 != 0 {
		c.raiseException(excLoadAddressError)
		return
	}
	c.setPendingLoad(word.RT(), uint32(c.bus.Load16(addr)))
}

// opLw preserves an old quirk: a misaligned access raises
// StoreAddressError, and the access is silently skipped (no pending load
// scheduled, not even a faulting one) while the cache is isolated.
func (c *CPU) opLw(word Instruction) {
	addr := c.reg(word.RS()) + word.ImmSE()
	if addr%4 != 0 {
		c.raiseException(excStoreAddressError)
		return
	}
	if c.SR&srIsolateCache != 0 {
		return
	}
	c.setPendingLoad(word.RT(), c.bus.Load32(addr))
}

func (c *CPU) opSb(word Instruction) {
	addr := c.reg(word.RS()) + word.ImmSE()
	c.bus.Store8(addr, uint8(c.reg(word.RT())))
}

func (c *CPU) opSh(word Instruction) {
	addr := c.reg(word.RS()) + word.ImmSE()
	c.bus.Store16(addr, uint16(c.reg(word.RT())))
}

// opSw is swallowed entirely while the cache is isolated.
func (c *CPU) opSw(word Instruction) {
	addr := c.reg(word.RS()) + word.ImmSE()
	if c.SR&srIsolateCache != 0 {
		return
	}
	c.bus.Store32(addr, c.reg(word.RT()))
}
