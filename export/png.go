package export

import (
	"bytes"
	"fmt"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"html"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
)

type Style struct {
	Size       float64
	DPI        float64
	Margin     int
	Foreground color.Color
	Background color.Color
}

var DefaultStyle = Style{
	Size:       28,
	DPI:        72,
	Margin:     24,
	Foreground: color.Black,
	Background: color.White,
}

type weight int

const (
	regular weight = iota
	bold
	italic
	subscript
)

// run is a piece of text drawn with a single face.
type run struct {
	text   string
	weight weight
}

// runs splits markup made of <b>, <i> and <sub> tags into runs. Tags do not
// nest in structure markup, so the innermost open tag decides the face.
func runs(markup string) []run {
	var out []run
	var open []weight
	current := func() weight {
		if len(open) == 0 {
			return regular
		}
		return open[len(open)-1]
	}
	for markup != "" {
		if markup[0] == '<' {
			end := strings.IndexByte(markup, '>')
			if end < 0 {
				out = append(out, run{html.UnescapeString(markup), current()})
				break
			}
			switch tag := markup[1:end]; tag {
			case "b":
				open = append(open, bold)
			case "i":
				open = append(open, italic)
			case "sub":
				open = append(open, subscript)
			case "/b", "/i", "/sub":
				if len(open) > 0 {
					open = open[:len(open)-1]
				}
			}
			markup = markup[end+1:]
			continue
		}
		end := strings.IndexByte(markup, '<')
		if end < 0 {
			end = len(markup)
		}
		out = append(out, run{html.UnescapeString(markup[:end]), current()})
		markup = markup[end:]
	}
	return out
}

type faces map[weight]font.Face

func loadFaces(style Style) (faces, error) {
	sources := []struct {
		weight weight
		ttf    []byte
		scale  float64
	}{
		{regular, goregular.TTF, 1},
		{bold, gobold.TTF, 1},
		{italic, goitalic.TTF, 1},
		{subscript, goregular.TTF, 0.65},
	}
	out := make(faces, len(sources))
	for _, src := range sources {
		f, err := opentype.Parse(src.ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    style.Size * src.scale,
			DPI:     style.DPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("load font face: %w", err)
		}
		out[src.weight] = face
	}
	return out, nil
}

func (f faces) close() {
	for _, face := range f {
		_ = face.Close()
	}
}

// RenderPNG draws structure markup on a single line.
func RenderPNG(markup string, style Style) ([]byte, error) {
	faces, err := loadFaces(style)
	if err != nil {
		return nil, err
	}
	defer faces.close()

	parts := runs(markup)
	var width fixed.Int26_6
	for _, r := range parts {
		width += font.MeasureString(faces[r.weight], r.text)
	}
	metrics := faces[regular].Metrics()
	// room below the baseline for subscripts
	drop := metrics.Descent / 2
	height := (metrics.Ascent + metrics.Descent + drop).Ceil()

	img := image.NewRGBA(image.Rect(0, 0, width.Ceil()+2*style.Margin, height+2*style.Margin))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	baseline := fixed.I(style.Margin) + metrics.Ascent
	dot := fixed.Point26_6{X: fixed.I(style.Margin), Y: baseline}
	for _, r := range parts {
		d := font.Drawer{Dst: img, Src: image.NewUniform(style.Foreground), Face: faces[r.weight], Dot: dot}
		if r.weight == subscript {
			d.Dot.Y += drop
		}
		d.DrawString(r.text)
		dot.X = d.Dot.X
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
