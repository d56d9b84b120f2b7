/*
 * psx1 - Memory bus and DMA orchestration
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

// Package bus routes CPU loads and stores to RAM, ROM, and the peripheral
// register windows, and drives DMA transfers triggered by writes into the
// DMA channel registers.
package bus

import (
	"fmt"
	"log/slog"

	"github.com/rcornwell/psx1/internal/dma"
	"github.com/rcornwell/psx1/internal/memmap"
	"github.com/rcornwell/psx1/internal/ram"
	"github.com/rcornwell/psx1/internal/rom"
)

// gpuStatusStub is read at GPU offset 4 (GPUSTAT). Firmware polls this bit
// pattern during GPU reset before continuing initialization.
const gpuStatusStub = 0x1C000000

// ramTransferMask confines a DMA address to the 2 MiB, word-aligned RAM
// span regardless of the virtual address it was derived from.
const ramTransferMask = 0x1FFFFC

// linkedListEnd is bit 23 of a GPU linked-list packet header: its presence
// marks the final packet in the list.
const linkedListEnd = 1 << 23

// Bus couples RAM, ROM, and the DMA controller behind one address map.
type Bus struct {
	ram    *ram.RAM
	rom    *rom.ROM
	dma    *dma.Controller
	logger *slog.Logger
}

// New returns a bus over the given stores and DMA controller.
func New(r *rom.ROM, m *ram.RAM, d *dma.Controller, logger *slog.Logger) *Bus {
	return &Bus{rom: r, ram: m, dma: d, logger: logger}
}

// fatalf logs a host-visible diagnostic and panics. Every such fatal marks an
// address, width, or register split the bus does not yet model, never guest
// memory corruption.
func (b *Bus) fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	b.logger.Error("bus fatal", "reason", msg)
	panic(msg)
}

func (b *Bus) Load8(addr uint32) uint8 {
	if _, off, ok := memmap.Find(addr, memmap.RAM); ok {
		return b.ram.Load8(off)
	}
	if _, off, ok := memmap.Find(addr, memmap.BIOS); ok {
		return b.rom.Load8(off)
	}
	if _, _, ok := memmap.Find(addr, memmap.Expansion1); ok {
		return 0xFF
	}
	b.fatalf("unhandled load8 addr=%#08x", addr)
	return 0
}

func (b *Bus) Load16(addr uint32) uint16 {
	if _, off, ok := memmap.Find(addr, memmap.SPU); ok {
		b.logger.Debug("spu load16 stub", "offset", off)
		return 0
	}
	if _, off, ok := memmap.Find(addr, memmap.RAM); ok {
		return b.ram.Load16(off)
	}
	if _, _, ok := memmap.Find(addr, memmap.IRQControl); ok {
		return 0
	}
	b.fatalf("unhandled load16 addr=%#08x", addr)
	return 0
}

func (b *Bus) Load32(addr uint32) uint32 {
	if _, off, ok := memmap.Find(addr, memmap.RAM); ok {
		return b.ram.Load32(off)
	}
	if _, off, ok := memmap.Find(addr, memmap.BIOS); ok {
		return b.rom.Load32(off)
	}
	if _, _, ok := memmap.Find(addr, memmap.IRQControl); ok {
		return 0
	}
	if _, off, ok := memmap.Find(addr, memmap.DMA); ok {
		return b.dmaRead(off)
	}
	if _, off, ok := memmap.Find(addr, memmap.Gpu); ok {
		if off == 4 {
			return gpuStatusStub
		}
		return 0
	}
	if _, _, ok := memmap.Find(addr, memmap.Timers); ok {
		return 0
	}
	b.fatalf("unhandled load32 addr=%#08x", addr)
	return 0
}

func (b *Bus) Store8(addr uint32, v uint8) {
	if _, off, ok := memmap.Find(addr, memmap.RAM); ok {
		b.ram.Store8(off, v)
		return
	}
	if _, _, ok := memmap.Find(addr, memmap.Expansion2); ok {
		return
	}
	b.fatalf("unhandled store8 addr=%#08x val=%#02x", addr, v)
}

func (b *Bus) Store16(addr uint32, v uint16) {
	if _, _, ok := memmap.Find(addr, memmap.SPU); ok {
		return
	}
	if _, _, ok := memmap.Find(addr, memmap.Timers); ok {
		return
	}
	if _, off, ok := memmap.Find(addr, memmap.RAM); ok {
		b.ram.Store16(off, v)
		return
	}
	if _, _, ok := memmap.Find(addr, memmap.IRQControl); ok {
		return
	}
	b.fatalf("unhandled store16 addr=%#08x val=%#04x", addr, v)
}

// Store32 guards MEM_CONTROL offsets 0 and 4: firmware is expected to pin the
// expansion base registers to their fixed addresses, and a mismatch there
// means the emulated boot path has gone somewhere unexpected.
func (b *Bus) Store32(addr uint32, v uint32) {
	if _, off, ok := memmap.Find(addr, memmap.RAM); ok {
		b.ram.Store32(off, v)
		return
	}
	if _, off, ok := memmap.Find(addr, memmap.MemControl); ok {
		switch off {
		case 0:
			if v != 0x1F000000 {
				b.fatalf("bad expansion 1 base address %#08x", v)
			}
		case 4:
			if v != 0x1F802000 {
				b.fatalf("bad expansion 2 base address %#08x", v)
			}
		}
		return
	}
	if _, _, ok := memmap.Find(addr, memmap.RAMSize); ok {
		return
	}
	if _, _, ok := memmap.Find(addr, memmap.CacheControl); ok {
		return
	}
	if _, _, ok := memmap.Find(addr, memmap.IRQControl); ok {
		return
	}
	if _, off, ok := memmap.Find(addr, memmap.DMA); ok {
		b.dmaWrite(off, v)
		return
	}
	if _, _, ok := memmap.Find(addr, memmap.Gpu); ok {
		return
	}
	if _, _, ok := memmap.Find(addr, memmap.Timers); ok {
		return
	}
	b.fatalf("unhandled store32 addr=%#08x val=%#08x", addr, v)
}

// dmaRead splits a DMA-window offset into a channel number (major) and a
// register selector (minor). Per channel only the control word at minor 8
// is readable; the global block at major 7 also exposes the raw control and
// packed interrupt registers.
func (b *Bus) dmaRead(off uint32) uint32 {
	major := (off >> 4) & 7
	minor := off & 0xF
	if major <= 6 {
		if minor == 8 {
			return b.dma.Channel(dma.Port(major)).Control()
		}
		b.fatalf("unhandled dma register read major=%d minor=%d", major, minor)
	}
	switch minor {
	case 0:
		return b.dma.Control
	case 4:
		return b.dma.Interrupt()
	}
	b.fatalf("unhandled dma register read major=%d minor=%d", major, minor)
	return 0
}

// dmaWrite performs the same split as dmaRead. A channel-register write that
// leaves the channel active runs its transfer synchronously before
// returning, matching the guest's expectation that the store itself blocks
// until the transfer lands.
func (b *Bus) dmaWrite(off uint32, v uint32) {
	major := (off >> 4) & 7
	minor := off & 0xF
	if major <= 6 {
		port := dma.Port(major)
		ch := b.dma.Channel(port)
		switch minor {
		case 0:
			ch.SetBase(v)
		case 4:
			ch.SetBlockControl(v)
		case 8:
			if err := ch.SetControl(v); err != nil {
				b.fatalf("%s", err)
			}
		default:
			b.fatalf("unhandled dma register write major=%d minor=%d", major, minor)
		}
		if ch.Active() {
			b.transfer(port, ch)
		}
		return
	}
	switch minor {
	case 0:
		b.dma.Control = v
	case 4:
		b.dma.SetInterrupt(v)
	default:
		b.fatalf("unhandled dma register write major=%d minor=%d", major, minor)
	}
}

func (b *Bus) transfer(port dma.Port, ch *dma.Channel) {
	if ch.Sync == dma.LinkedList {
		b.transferLinkedList(port, ch)
		return
	}
	b.transferBlock(port, ch)
}

// transferBlock runs a Manual or Request sync transfer one word at a time.
// link tracks the reverse-ordering-table chain independently of addr, the
// address the word is actually stored to or loaded from; the two only
// coincide when the channel steps backward through the table.
func (b *Bus) transferBlock(port dma.Port, ch *dma.Channel) {
	remaining, err := ch.TransferSize()
	if err != nil {
		b.fatalf("%s", err)
	}

	addr := ch.Base()
	link := ch.Base()
	for remaining > 0 {
		masked := addr & ramTransferMask
		switch ch.Direction {
		case dma.FromRam:
			b.deliverToPort(port, b.ram.Load32(masked))
		case dma.ToRam:
			var word uint32
			switch port {
			case dma.Otc:
				if remaining == 1 {
					word = 0x00FFFFFF
				} else {
					link -= 4
					word = link & 0x1FFFFF
				}
			default:
				b.fatalf("unhandled dma destination port %s", port)
			}
			b.ram.Store32(masked, word)
		}

		if ch.Step == dma.Increment {
			addr += 4
		} else {
			addr -= 4
		}
		remaining--
	}
	ch.Done()
}

// deliverToPort hands a word read from RAM to its destination peripheral.
// Only the GPU command stream is realized; every other FromRam destination
// is a missing-feature signal, not guest-reachable behavior.
func (b *Bus) deliverToPort(port dma.Port, word uint32) {
	switch port {
	case dma.Gpu:
		b.logger.Debug("dma word to gpu", "word", word)
	default:
		b.fatalf("unhandled dma destination port %s", port)
	}
}

// transferLinkedList walks a GPU command list: each packet starts with a
// header word whose high byte is the packet's word count and whose bit 23
// marks the final packet in the list.
func (b *Bus) transferLinkedList(port dma.Port, ch *dma.Channel) {
	if port != dma.Gpu || ch.Direction != dma.FromRam {
		b.fatalf("invalid linked-list dma: port=%s direction=%v", port, ch.Direction)
	}

	addr := ch.Base() & ramTransferMask
	for {
		header := b.ram.Load32(addr)
		count := header >> 24
		for i := uint32(0); i < count; i++ {
			addr = (addr + 4) & ramTransferMask
			b.logger.Debug("gpu command word", "word", b.ram.Load32(addr))
		}
		if header&linkedListEnd != 0 {
			break
		}
		addr = header & ramTransferMask
	}
	ch.Done()
}
