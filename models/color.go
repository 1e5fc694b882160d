package models

// Color describes a single color in every notation the tools display
type Color struct {
	Hex       ColorHex      `json:"hex"`
	RGB       ColorRGB      `json:"rgb"`
	HSL       ColorHSL      `json:"hsl"`
	Name      string        `json:"name"`
	Luminance float64       `json:"luminance"`
	Contrast  ColorContrast `json:"contrast"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	R     int    `json:"r"`
	G     int    `json:"g"`
	B     int    `json:"b"`
	Value string `json:"value"`
}

type ColorHSL struct {
	H     int    `json:"h"`
	S     int    `json:"s"`
	L     int    `json:"l"`
	Value string `json:"value"`
}

// ColorContrast is the readable text color on top of this one
type ColorContrast struct {
	Value string `json:"value"`
}

type FixContrastRequest struct {
	Foreground string  `json:"fg" validate:"required"`
	Background string  `json:"bg" validate:"required"`
	Target     string  `json:"target" validate:"omitempty,oneof=fg bg"`
	Ratio      float64 `json:"ratio" validate:"omitempty,gt=1,lte=21"`
}

type FixContrastResponse struct {
	Foreground string  `json:"fg"`
	Background string  `json:"bg"`
	Ratio      float64 `json:"ratio"`
}

type PaletteGenerateRequest struct {
	Harmony string `json:"harmony" validate:"omitempty,oneof=analogous complementary triadic split tetradic monochromatic"`
	// Colors and Locked carry the current palette so locked swatches survive
	Colors []string `json:"colors" validate:"omitempty,len=5"`
	Locked []bool   `json:"locked" validate:"omitempty,max=5"`
}

type PaletteExportRequest struct {
	Format string   `json:"format" validate:"required"`
	Colors []string `json:"colors" validate:"required,min=1,max=20"`
	Names  []string `json:"names" validate:"max=20"`
}

type PaletteExportResponse struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}
