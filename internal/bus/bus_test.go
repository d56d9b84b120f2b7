/*
 * psx1 - Memory bus and DMA orchestration tests
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

package bus

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rcornwell/psx1/internal/dma"
	"github.com/rcornwell/psx1/internal/ram"
	"github.com/rcornwell/psx1/internal/rom"
)

func newTestBus(t *testing.T) (*Bus, *ram.RAM, *dma.Controller) {
	t.Helper()
	image := make([]byte, rom.Size)
	r, err := rom.New(image)
	if err != nil {
		t.Fatalf("rom.New: %v", err)
	}
	m := ram.New()
	d := dma.NewController()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(r, m, d, logger), m, d
}

func TestRegionEquivalenceThroughBus(t *testing.T) {
	b, _, _ := newTestBus(t)
	b.Store32(0x1000, 0x12345678)
	kuseg := b.Load32(0x1000)
	kseg0 := b.Load32(0x80001000)
	kseg1 := b.Load32(0xA0001000)
	if kuseg != 0x12345678 || kseg0 != kuseg || kseg1 != kuseg {
		t.Fatalf("got kuseg=%#x kseg0=%#x kseg1=%#x, want all 0x12345678", kuseg, kseg0, kseg1)
	}
}

func TestMemControlGuardAcceptsCanonicalBase(t *testing.T) {
	b, _, _ := newTestBus(t)
	b.Store32(0x1F801000, 0x1F000000)
	b.Store32(0x1F801004, 0x1F802000)
}

func TestMemControlGuardRejectsBadBase(t *testing.T) {
	b, _, _ := newTestBus(t)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on bad MEM_CONTROL base")
		}
	}()
	b.Store32(0x1F801000, 0xDEADBEEF)
}

func TestGpuStatusStub(t *testing.T) {
	b, _, _ := newTestBus(t)
	if got := b.Load32(0x1F801814); got != gpuStatusStub {
		t.Fatalf("gpu status = %#x, want %#x", got, uint32(gpuStatusStub))
	}
	if got := b.Load32(0x1F801810); got != 0 {
		t.Fatalf("gpu read offset 0 = %#x, want 0", got)
	}
}

// TestDmaOtcClearsOrderingTable reproduces writing a reverse linked-list
// terminator pattern into a small ordering table via the OTC channel.
func TestDmaOtcClearsOrderingTable(t *testing.T) {
	b, m, d := newTestBus(t)
	ch := d.Channel(dma.Otc)
	b.dmaWrite(0x60, 0x00001000)         // major=6 (Otc), minor=0: set_base
	b.dmaWrite(0x64, uint32(1)<<16|4)    // minor=4: block_count=1, block_size=4
	// direction=ToRam (bit0=0), sync=Manual (bits 10:9=0), trigger and
	// enable both set.
	b.dmaWrite(0x68, (1<<24)|(1<<28)) // minor=8: set_control, triggers the transfer

	want := []uint32{0xFFC, 0xFF8, 0xFF4, 0x00FFFFFF}
	for i, w := range want {
		if got := m.Load32(uint32(0x1000 + i*4)); got != w {
			t.Errorf("ram[%#x] = %#x, want %#x", 0x1000+i*4, got, w)
		}
	}
	if ch.Active() {
		t.Fatalf("channel should be inactive (enable/trigger cleared) after transfer")
	}
}

func TestDmaRegisterReadWriteRoundTrip(t *testing.T) {
	b, _, d := newTestBus(t)
	ch := d.Channel(dma.Gpu)
	b.dmaWrite(0x20, 0x00001000) // major=2 (Gpu), minor=0 (base)
	if got := ch.Base(); got != 0x00001000 {
		t.Fatalf("base = %#x, want 0x1000", got)
	}
	b.dmaWrite(0x24, 0x00100004) // minor=4 (block control)
	if got := ch.BlockControl(); got != 0x00100004 {
		t.Fatalf("block control = %#x, want 0x00100004", got)
	}
}

func TestDmaGlobalInterruptRoundTrip(t *testing.T) {
	b, _, d := newTestBus(t)
	b.dmaWrite(0x74, 1<<15) // major=7 (global), minor=4: set_interrupt, force_irq
	if !d.ForceIrq {
		t.Fatalf("expected ForceIrq set after writing bit 15")
	}
	if got := b.dmaRead(0x74); got&(1<<15) == 0 {
		t.Fatalf("interrupt readback missing force_irq bit: %#x", got)
	}
}
