// This file is part of VGAGen.
//
// VGAGen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VGAGen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VGAGen.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/vgagen/capture"
	"github.com/jetsetilly/vgagen/digest"
	"github.com/jetsetilly/vgagen/gui/sdlscreen"
	"github.com/jetsetilly/vgagen/hardware/vga"
	"github.com/jetsetilly/vgagen/hardware/vga/pattern"
	"github.com/jetsetilly/vgagen/hardware/vga/timing"
	"github.com/jetsetilly/vgagen/logger"
	"github.com/jetsetilly/vgagen/modalflag"
	"github.com/jetsetilly/vgagen/statsview"
	"github.com/jetsetilly/vgagen/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "CAPTURE", "DIGEST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = emulate(md)
	case "CAPTURE":
		err = capturePNG(md)
	case "DIGEST":
		err = fingerprint(md)
	case "VERSION":
		err = printVersion(md)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}
}

// prepare a generator according to the common timing/pattern flag values.
func prepare(timingID string, patternName string) (*vga.VGA, timing.Timing, error) {
	tim, err := timing.GetTiming(timingID)
	if err != nil {
		return nil, timing.Timing{}, err
	}

	pat := pattern.New(patternName, tim.HDisplay)
	if pat == nil {
		return nil, timing.Timing{}, fmt.Errorf("unsupported pattern (%s)", patternName)
	}

	gen, err := vga.NewVGA(tim, vga.WithPattern(pat))
	if err != nil {
		return nil, timing.Timing{}, err
	}

	logger.Logf(logger.Allow, "vgagen", "timing: %s", tim)

	return gen, tim, nil
}

// run the generator for the specified number of frames. the raster is
// settled at the home position with a single reset tick beforehand. a frame
// count of zero or less means run until the until() function says otherwise.
func runFrames(gen *vga.VGA, tim timing.Timing, frames int, until func() bool) error {
	if _, err := gen.Tick(true); err != nil {
		return err
	}

	ticksPerFrame := tim.HTotal() * tim.VTotal()

	for frame := 0; frames <= 0 || frame < frames; frame++ {
		for k := 0; k < ticksPerFrame; k++ {
			if _, err := gen.Tick(false); err != nil {
				return err
			}
		}
		if until != nil && until() {
			break // for loop
		}
	}

	return nil
}

func emulate(md *modalflag.Modes) error {
	md.NewMode()

	timingID := md.AddString("timing", "640x480", "timing preset to use")
	patternName := md.AddString("pattern", "bands", "test pattern: bands, bars, gradient, white")
	scale := md.AddFloat64("scale", 1.0, "window scale")
	frames := md.AddInt("frames", 0, "number of frames to run (0 = until window is closed)")
	stats := md.AddBool("statsview", false, "run the statsview server")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	gen, tim, err := prepare(*timingID, *patternName)
	if err != nil {
		return err
	}

	scr, err := sdlscreen.NewSdlScreen(tim, float32(*scale))
	if err != nil {
		return err
	}
	gen.AddPixelRenderer(scr)

	if *stats {
		statsview.Launch(md.Output)
	}

	if err := runFrames(gen, tim, *frames, scr.Done); err != nil {
		return err
	}

	return gen.End()
}

func capturePNG(md *modalflag.Modes) error {
	md.NewMode()

	timingID := md.AddString("timing", "640x480", "timing preset to use")
	patternName := md.AddString("pattern", "bands", "test pattern: bands, bars, gradient, white")
	frames := md.AddInt("frames", 1, "number of frames to run before saving")
	fileNameBase := md.AddString("o", "vgagen", "file name base for the saved image")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	gen, tim, err := prepare(*timingID, *patternName)
	if err != nil {
		return err
	}

	img := capture.NewImage(tim)
	gen.AddPixelRenderer(img)

	if err := runFrames(gen, tim, *frames, nil); err != nil {
		return err
	}

	if err := img.Save(*fileNameBase); err != nil {
		return err
	}

	return gen.End()
}

func fingerprint(md *modalflag.Modes) error {
	md.NewMode()

	timingID := md.AddString("timing", "640x480", "timing preset to use")
	patternName := md.AddString("pattern", "bands", "test pattern: bands, bars, gradient, white")
	frames := md.AddInt("frames", 1, "number of frames to fingerprint")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	gen, tim, err := prepare(*timingID, *patternName)
	if err != nil {
		return err
	}

	dig := digest.NewVideo(tim)
	gen.AddPixelRenderer(dig)

	if err := runFrames(gen, tim, *frames, nil); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s\n", dig.Hash())

	return gen.End()
}

func printVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	vers, revision, release := version.Version()
	if release {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, vers)
	} else {
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, vers, revision)
	}

	return nil
}
