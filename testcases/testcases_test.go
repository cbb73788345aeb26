// seehuhn.de/go/balldrop - a software rasteriser and bouncing-ball animation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package testcases

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/balldrop/canvas"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			assert.Regexp(t, validName, tc.Name)
			name := category + "_" + tc.Name
			assert.False(t, seen[name], "duplicate test case %s", name)
			seen[name] = true
			assert.Positive(t, tc.Width, name)
			assert.Positive(t, tc.Height, name)
		}
	}
}

func TestChecks(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				c, err := tc.Render()
				require.NoError(t, err)

				if !drawn(c) {
					t.Error("nothing was drawn")
				}
				if tc.Check != nil {
					assert.NoError(t, tc.Check(c))
				}
			})
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			a, err := tc.Render()
			require.NoError(t, err)
			b, err := tc.Render()
			require.NoError(t, err)
			assert.Equal(t, a.Pix(), b.Pix(), "%s_%s", category, tc.Name)
		}
	}
}

// TestAgainstReference compares the scenarios with the images written by
// the export command.  Scenarios without a reference image are skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadRGBA(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				actual, err := tc.Render()
				require.NoError(t, err)

				if err := compareImages(name, ref, actual.Image()); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// drawn reports whether any pixel differs from Paper.
func drawn(c *canvas.Canvas) bool {
	for y := range c.Height() {
		for x := range c.Width() {
			if c.Pixel(x, y) != Paper {
				return true
			}
		}
	}
	return false
}

func loadRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := range bounds.Dy() {
		for x := range bounds.Dx() {
			rgba.Set(x, y, img.At(x+bounds.Min.X, y+bounds.Min.Y))
		}
	}
	return rgba, nil
}

// compareImages requires an exact match.  The drawing algorithms are
// integer based, so any difference is a change in behaviour.
func compareImages(name string, expected, actual *image.RGBA) error {
	if expected.Bounds() != actual.Bounds() {
		return fmt.Errorf("size %v, expected %v", actual.Bounds().Size(), expected.Bounds().Size())
	}

	diffCount := 0
	b := actual.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if expected.RGBAAt(x, y) != actual.RGBAAt(x, y) {
				diffCount++
			}
		}
	}
	if diffCount > 0 {
		writeDiffImage(name, expected, actual)
		return fmt.Errorf("%d pixels differ", diffCount)
	}
	return nil
}

// writeDiffImage writes expected, actual and a difference mask side by
// side into debug/.
func writeDiffImage(name string, expected, actual *image.RGBA) {
	os.MkdirAll("debug", 0755)

	w, h := actual.Bounds().Dx(), actual.Bounds().Dy()
	img := image.NewRGBA(image.Rect(0, 0, 3*w, h))
	for y := range h {
		for x := range w {
			e, a := expected.RGBAAt(x, y), actual.RGBAAt(x, y)
			img.SetRGBA(x, y, e)
			img.SetRGBA(w+x, y, a)
			mark := color.RGBA{0, 0, 0, 255}
			if e != a {
				mark = color.RGBA{255, 0, 255, 255}
			}
			img.SetRGBA(2*w+x, y, mark)
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
