package export

import (
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/ls"
	"strings"
)

type Format string

const (
	Plain Format = "plain"
	LaTeX Format = "latex"
	PNG   Format = "png"
)

var ErrUnknownFormat = errors.New("unknown export format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Plain, LaTeX, PNG:
		return f, nil
	case "txt", "text":
		return Plain, nil
	case "tex":
		return LaTeX, nil
	}
	return "", fmt.Errorf("%w '%s'", ErrUnknownFormat, s)
}

// File is an exported structure ready to be served or saved.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func Export(s ls.Structure, f Format) (File, error) {
	switch f {
	case Plain:
		return File{Name: "estructura_logica.txt", ContentType: "text/plain; charset=utf-8", Data: []byte(s.String() + "\n")}, nil
	case LaTeX:
		return File{Name: "estructura_logica.tex", ContentType: "application/x-tex; charset=utf-8", Data: []byte(s.LaTeX() + "\n")}, nil
	case PNG:
		data, err := RenderPNG(s.Markup(), DefaultStyle)
		if err != nil {
			return File{}, err
		}
		return File{Name: "estructura_logica.png", ContentType: "image/png", Data: data}, nil
	}
	return File{}, fmt.Errorf("%w '%s'", ErrUnknownFormat, f)
}
