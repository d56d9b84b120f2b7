/*
 * psx1 - DMA channel register file
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

// Package dma models the seven-channel DMA engine: one register file per
// channel plus the global control/interrupt registers of the controller.
package dma

import "fmt"

// Port is a closed enumeration of the seven DMA destinations/sources. It is a
// tag, not a subtype hierarchy — dispatch on it inside the transfer routine.
type Port int

const (
	MdecIn Port = iota
	MdecOut
	Gpu
	CdRom
	Spu
	Pio
	Otc
	numPorts
)

func (p Port) String() string {
	switch p {
	case MdecIn:
		return "MdecIn"
	case MdecOut:
		return "MdecOut"
	case Gpu:
		return "Gpu"
	case CdRom:
		return "CdRom"
	case Spu:
		return "Spu"
	case Pio:
		return "Pio"
	case Otc:
		return "Otc"
	default:
		return fmt.Sprintf("Port(%d)", int(p))
	}
}

// Direction is the data flow of a transfer relative to RAM.
type Direction int

const (
	ToRam Direction = iota
	FromRam
)

// Step is the address stepping direction of a transfer.
type Step int

const (
	Increment Step = iota
	Decrement
)

// Sync is the synchronization mode a channel transfers under.
type Sync int

const (
	Manual Sync = iota
	Request
	LinkedList
)

// ErrReservedSync is returned by SetControl when the reserved sync code 3 is
// written; the caller treats it as a host-fatal condition.
var ErrReservedSync = fmt.Errorf("dma: reserved sync code 3")

// Channel is one DMA channel's register file.
type Channel struct {
	Enable    bool
	Direction Direction
	Step      Step
	Sync      Sync
	Trigger   bool
	Chop      bool
	ChopDMASz uint8
	ChopCPUSz uint8
	Dummy     uint8
	base      uint32 // masked to 24 bits
	BlockSize uint16
	BlockCount uint16
}

// NewChannel returns a channel in its post-reset state.
func NewChannel() *Channel {
	return &Channel{
		Enable:     false,
		Direction:  ToRam,
		Step:       Increment,
		Sync:       Manual,
		BlockCount: 16,
	}
}

// Base returns the 24-bit transfer base address.
func (c *Channel) Base() uint32 {
	return c.base
}

// SetBase stores addr masked to 24 bits.
func (c *Channel) SetBase(addr uint32) {
	c.base = addr & 0xFFFFFF
}

// Control packs the channel's register state into the 32-bit CHCR word.
func (c *Channel) Control() uint32 {
	var v uint32
	if c.Direction == FromRam {
		v |= 1 << 0
	}
	if c.Step == Decrement {
		v |= 1 << 1
	}
	if c.Chop {
		v |= 1 << 8
	}
	v |= uint32(c.Sync) << 9
	v |= uint32(c.ChopDMASz&0x7) << 16
	v |= uint32(c.ChopCPUSz&0x7) << 20
	if c.Enable {
		v |= 1 << 24
	}
	if c.Trigger {
		v |= 1 << 28
	}
	v |= uint32(c.Dummy&0x3) << 29
	return v
}

// SetControl unpacks v into the channel's register state. A reserved sync
// code (3) is a host-visible error.
func (c *Channel) SetControl(v uint32) error {
	sync := Sync((v >> 9) & 0x3)
	if sync == 3 {
		return ErrReservedSync
	}
	c.Direction = Direction(v & 1)
	if (v>>1)&1 != 0 {
		c.Step = Decrement
	} else {
		c.Step = Increment
	}
	c.Chop = (v>>8)&1 != 0
	c.Sync = sync
	c.ChopDMASz = uint8((v >> 16) & 0x7)
	c.ChopCPUSz = uint8((v >> 20) & 0x7)
	c.Enable = (v>>24)&1 != 0
	c.Trigger = (v>>28)&1 != 0
	c.Dummy = uint8((v >> 29) & 0x3)
	return nil
}

// BlockControl packs block_count/block_size into the BCR word.
func (c *Channel) BlockControl() uint32 {
	return uint32(c.BlockCount)<<16 | uint32(c.BlockSize)
}

// SetBlockControl unpacks v into block_count/block_size.
func (c *Channel) SetBlockControl(v uint32) {
	c.BlockCount = uint16(v >> 16)
	c.BlockSize = uint16(v)
}

// ErrUnknownTransferSize is returned by TransferSize for LinkedList sync,
// whose length is not known up front.
var ErrUnknownTransferSize = fmt.Errorf("dma: transfer size is unknown for linked-list sync")

// TransferSize returns the word count a Manual or Request transfer will move.
func (c *Channel) TransferSize() (uint32, error) {
	switch c.Sync {
	case Manual:
		return uint32(c.BlockSize), nil
	case Request:
		return uint32(c.BlockCount) * uint32(c.BlockSize), nil
	default:
		return 0, ErrUnknownTransferSize
	}
}

// Done clears enable and trigger, the guest-visible sign a transfer finished.
func (c *Channel) Done() {
	c.Enable = false
	c.Trigger = false
}

// Active reports whether the channel should run a transfer right now.
func (c *Channel) Active() bool {
	return c.Enable && (c.Sync != Manual || c.Trigger)
}
