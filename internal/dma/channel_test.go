package dma

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

import "testing"

func TestNewChannelDefaults(t *testing.T) {
	c := NewChannel()
	if c.Enable {
		t.Errorf("new channel should start disabled")
	}
	if c.Direction != ToRam || c.Step != Increment || c.Sync != Manual {
		t.Errorf("new channel has wrong defaults: dir=%v step=%v sync=%v", c.Direction, c.Step, c.Sync)
	}
	if c.BlockCount != 16 {
		t.Errorf("new channel BlockCount got %d, want 16", c.BlockCount)
	}
}

func TestControlRoundTrip(t *testing.T) {
	vals := []uint32{
		0,
		1 | 1<<1 | 1<<8 | 1<<9 | 5<<16 | 3<<20 | 1<<24 | 1<<28 | 2<<29,
		1 << 24,
		1<<9 | 1<<28,
	}
	for _, v := range vals {
		c := NewChannel()
		if err := c.SetControl(v); err != nil {
			t.Fatalf("SetControl(%#x): %v", v, err)
		}
		if got := c.Control(); got != v {
			t.Errorf("round trip %#x got %#x", v, got)
		}
	}
}

func TestSetControlReservedSync(t *testing.T) {
	c := NewChannel()
	if err := c.SetControl(3 << 9); err != ErrReservedSync {
		t.Errorf("SetControl with sync=3 got err=%v, want ErrReservedSync", err)
	}
}

func TestBlockControlRoundTrip(t *testing.T) {
	c := NewChannel()
	v := uint32(0x00040010)
	c.SetBlockControl(v)
	if got := c.BlockControl(); got != v {
		t.Errorf("BlockControl round trip got %#x, want %#x", got, v)
	}
	if c.BlockCount != 4 || c.BlockSize != 0x10 {
		t.Errorf("block control unpack wrong: count=%d size=%d", c.BlockCount, c.BlockSize)
	}
}

func TestSetBaseMasksTo24Bits(t *testing.T) {
	c := NewChannel()
	c.SetBase(0xFFFFFFFF)
	if c.Base() != 0xFFFFFF {
		t.Errorf("SetBase got %#x, want %#x", c.Base(), 0xFFFFFF)
	}
}

func TestTransferSize(t *testing.T) {
	c := NewChannel()
	c.Sync = Manual
	c.BlockSize = 4
	if sz, err := c.TransferSize(); err != nil || sz != 4 {
		t.Errorf("Manual TransferSize got %d,%v want 4,nil", sz, err)
	}

	c.Sync = Request
	c.BlockSize = 4
	c.BlockCount = 3
	if sz, err := c.TransferSize(); err != nil || sz != 12 {
		t.Errorf("Request TransferSize got %d,%v want 12,nil", sz, err)
	}

	c.Sync = LinkedList
	if _, err := c.TransferSize(); err != ErrUnknownTransferSize {
		t.Errorf("LinkedList TransferSize got err=%v, want ErrUnknownTransferSize", err)
	}
}

func TestDone(t *testing.T) {
	c := NewChannel()
	c.Enable = true
	c.Trigger = true
	c.Done()
	if c.Enable || c.Trigger {
		t.Errorf("Done should clear enable and trigger")
	}
}

// Active agrees with the (enable, sync, trigger) truth table.
func TestActive(t *testing.T) {
	tests := []struct {
		enable, trigger bool
		sync            Sync
		want            bool
	}{
		{false, false, Manual, false},
		{true, false, Manual, false},
		{true, true, Manual, true},
		{true, false, Request, true},
		{true, false, LinkedList, true},
		{false, true, Request, false},
	}
	for _, tt := range tests {
		c := NewChannel()
		c.Enable = tt.enable
		c.Trigger = tt.trigger
		c.Sync = tt.sync
		if got := c.Active(); got != tt.want {
			t.Errorf("Active(enable=%v,trigger=%v,sync=%v) got %v, want %v",
				tt.enable, tt.trigger, tt.sync, got, tt.want)
		}
	}
}
