package koch

import "image/color"

// Named stroke colors accepted by the renderer.
var palette = map[string]color.RGBA{
	"blue":    {R: 31, G: 119, B: 180, A: 255},
	"red":     {R: 214, G: 39, B: 40, A: 255},
	"green":   {R: 44, G: 160, B: 44, A: 255},
	"orange":  {R: 255, G: 127, B: 14, A: 255},
	"purple":  {R: 148, G: 103, B: 189, A: 255},
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"cyan":    {R: 23, G: 190, B: 207, A: 255},
	"magenta": {R: 227, G: 119, B: 194, A: 255},
}

// ParseColor resolves a palette name. The empty string defaults to blue.
func ParseColor(name string) (color.RGBA, error) {
	if name == "" {
		name = "blue"
	}
	c, ok := palette[name]
	if !ok {
		return color.RGBA{}, &ParamError{Param: "color", Value: name, Reason: "unknown color name"}
	}
	return c, nil
}

// ColorNames lists the accepted palette names for the form page.
func ColorNames() []string {
	return []string{"blue", "red", "green", "orange", "purple", "black", "cyan", "magenta"}
}
