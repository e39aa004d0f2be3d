package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"monkey-boards/models"
	"monkey-boards/planner"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	snapshotFontSize = 11.0
	// Max dimension for the thumbnail variant
	maxSizeThumb = 300
)

// SnapshotService renders planner board layouts to PNG images.
type SnapshotService struct {
	face font.Face
}

// NewSnapshotService creates a new SnapshotService instance.
func NewSnapshotService() (*SnapshotService, error) {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    snapshotFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	return &SnapshotService{face: face}, nil
}

// RenderBoard draws the board surface and every placed pedal in z-order.
// The image uses board-local units, one pixel per unit.
func (s *SnapshotService) RenderBoard(state models.BoardState) (image.Image, error) {
	w := int(state.BoardSize.Width)
	h := int(state.BoardSize.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid board size %gx%g", state.BoardSize.Width, state.BoardSize.Height)
	}

	dc := gg.NewContext(w, h)
	dc.SetHexColor("#8b5a2b")
	dc.Clear()
	dc.SetFontFace(s.face)

	for _, p := range state.Pedals {
		pw := p.Pedal.Width * planner.DisplayScale
		ph := p.Pedal.Height * planner.DisplayScale
		cx := p.X + pw/2
		cy := p.Y + ph/2

		dc.Push()
		dc.RotateAbout(gg.Radians(float64(p.Rotation)), cx, cy)

		dc.SetHexColor(p.Pedal.Color)
		dc.DrawRoundedRectangle(p.X, p.Y, pw, ph, 4)
		dc.Fill()

		if p.InstanceID == state.SelectedPedalID {
			dc.SetHexColor("#fbbf24")
			dc.SetLineWidth(2)
			dc.DrawRoundedRectangle(p.X, p.Y, pw, ph, 4)
			dc.Stroke()
		}

		dc.SetHexColor("#111111")
		dc.DrawStringAnchored(p.Pedal.Model, cx, cy, 0.5, 0.5)
		dc.Pop()
	}

	return dc.Image(), nil
}

// Thumbnail downscales a snapshot to fit within the thumbnail bounds.
func (s *SnapshotService) Thumbnail(img image.Image) image.Image {
	return imaging.Fit(img, maxSizeThumb, maxSizeThumb, imaging.Lanczos)
}

// EncodePNG serializes an image for the snapshot endpoint.
func (s *SnapshotService) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}
