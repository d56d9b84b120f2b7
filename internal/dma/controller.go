/*
 * psx1 - DMA controller
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

package dma

// Controller owns the seven channels plus the global control/interrupt
// registers. It has no transfer logic of its own — that lives in the bus,
// which is the only caller with access to RAM.
type Controller struct {
	Control uint32
	Channels [numPorts]*Channel

	IrqEnable       bool
	ChannelIrqEn    uint8 // 7 bits
	ChannelIrqFlags uint8 // 7 bits
	ForceIrq        bool
	IrqDummy        uint8 // 6 bits
}

// NewController returns a controller in its post-reset state.
func NewController() *Controller {
	c := &Controller{
		Control: 0x07654321,
	}
	for i := range c.Channels {
		c.Channels[i] = NewChannel()
	}
	return c
}

// Channel returns the channel register file for port.
func (c *Controller) Channel(p Port) *Channel {
	return c.Channels[p]
}

// Irq reports the composite interrupt line state.
func (c *Controller) Irq() bool {
	return c.ForceIrq || (c.IrqEnable && (c.ChannelIrqFlags&c.ChannelIrqEn) != 0)
}

// Interrupt packs the global interrupt register.
func (c *Controller) Interrupt() uint32 {
	var v uint32
	v |= uint32(c.IrqDummy & 0x3F)
	if c.ForceIrq {
		v |= 1 << 15
	}
	v |= uint32(c.ChannelIrqEn&0x7F) << 16
	if c.IrqEnable {
		v |= 1 << 23
	}
	v |= uint32(c.ChannelIrqFlags&0x7F) << 24
	if c.Irq() {
		v |= 1 << 31
	}
	return v
}

// SetInterrupt unpacks v into the interrupt registers. ChannelIrqFlags bits
// set in v are acknowledged (cleared), not assigned — write-one-to-clear.
func (c *Controller) SetInterrupt(v uint32) {
	c.IrqDummy = uint8(v & 0x3F)
	c.ForceIrq = (v>>15)&1 != 0
	c.ChannelIrqEn = uint8((v >> 16) & 0x7F)
	c.IrqEnable = (v>>23)&1 != 0
	ack := uint8((v >> 24) & 0x7F)
	c.ChannelIrqFlags &^= ack
}
