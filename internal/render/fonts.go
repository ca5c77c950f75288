package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the typefaces labels are set in.
// Labels use Go Regular and Go Bold at any size; the status line uses the
// fixed 7x13 bitmap face.
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	status  *text.GoXFace
}

// NewFonts parses the embedded Go fonts.
func NewFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load go regular: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load go bold: %w", err)
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		status:  text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

// Face returns a face of the given pixel size.
func (f *Fonts) Face(size float64, bold bool) *text.GoTextFace {
	src := f.regular
	if bold {
		src = f.bold
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// Status returns the bitmap face used for the status line.
func (f *Fonts) Status() text.Face { return f.status }
