/*
 * psx1 - Host entry point
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

// Command psx1 wires a boot ROM image to the R3000A core and runs it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt/v2"

	"github.com/rcornwell/psx1/internal/bus"
	"github.com/rcornwell/psx1/internal/corelog"
	"github.com/rcornwell/psx1/internal/cpu"
	"github.com/rcornwell/psx1/internal/dma"
	"github.com/rcornwell/psx1/internal/ram"
	"github.com/rcornwell/psx1/internal/rom"
)

func main() {
	biosPath := getopt.StringLong("bios", 'b', "", "boot ROM image, must be exactly 512 KiB")
	logPath := getopt.StringLong("log", 'l', "", "log file path (stderr only when omitted)")
	debug := getopt.BoolLong("debug", 'd', "log every record to stderr, not just warnings and above")
	help := getopt.BoolLong("help", 'h', "display this help and exit")
	getopt.Parse()

	if *help {
		getopt.Usage()
		return
	}

	if *biosPath == "" {
		fmt.Fprintln(os.Stderr, "psx1: -b/--bios is required")
		getopt.Usage()
		os.Exit(1)
	}

	// var, not a typed *os.File, so the nil case reaches corelog.New as a
	// literal nil io.Writer rather than a non-nil interface wrapping a nil
	// pointer.
	var logWriter io.Writer
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "psx1: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logWriter = f
	}
	logger := corelog.New(logWriter, *debug)

	image, err := os.ReadFile(*biosPath)
	if err != nil {
		logger.Error("read bios image", "error", err)
		os.Exit(1)
	}
	biosROM, err := rom.New(image)
	if err != nil {
		logger.Error("load bios image", "error", err)
		os.Exit(1)
	}

	mainRAM := ram.New()
	dmaController := dma.NewController()
	memBus := bus.New(biosROM, mainRAM, dmaController, logger)
	core := cpu.New(memBus, logger)

	logger.Info("psx1 starting", "bios", *biosPath)
	for {
		core.Step()
	}
}
