package config

import (
	"image/color"
	"sort"
)

// Theme defines the colours a sketch draws with. PreviewBackground and
// PreviewPath are grey intensities because the preview image is rendered
// from a single channel.
type Theme struct {
	Name              string
	PreviewBackground uint8
	PreviewPath       uint8
	Path              color.RGBA
	Dot               color.RGBA
	MessageBackground color.RGBA
	MessageText       color.RGBA
	StatsBackground   color.RGBA
	StatsText         color.RGBA
}

var Themes = map[string]Theme{
	"classic": {
		Name:              "classic",
		PreviewBackground: 220,
		PreviewPath:       140,
		Path:              color.RGBA{0, 0, 0, 255},
		Dot:               color.RGBA{255, 0, 0, 255},
		MessageBackground: color.RGBA{42, 42, 42, 255},
		MessageText:       color.RGBA{255, 255, 255, 255},
		StatsBackground:   color.RGBA{0, 0, 0, 255},
		StatsText:         color.RGBA{255, 255, 255, 255},
	},
	"retro": {
		Name:              "retro",
		PreviewBackground: 10,
		PreviewPath:       60,
		Path:              color.RGBA{0, 255, 0, 255},
		Dot:               color.RGBA{136, 255, 136, 255},
		MessageBackground: color.RGBA{0, 17, 0, 255},
		MessageText:       color.RGBA{0, 255, 0, 255},
		StatsBackground:   color.RGBA{0, 34, 0, 255},
		StatsText:         color.RGBA{136, 255, 136, 255},
	},
	"ocean": {
		Name:              "ocean",
		PreviewBackground: 26,
		PreviewPath:       90,
		Path:              color.RGBA{0, 168, 204, 255},
		Dot:               color.RGBA{255, 215, 0, 255},
		MessageBackground: color.RGBA{0, 26, 51, 255},
		MessageText:       color.RGBA{224, 240, 255, 255},
		StatsBackground:   color.RGBA{0, 119, 190, 255},
		StatsText:         color.RGBA{224, 240, 255, 255},
	},
	"sunset": {
		Name:              "sunset",
		PreviewBackground: 45,
		PreviewPath:       110,
		Path:              color.RGBA{254, 202, 87, 255},
		Dot:               color.RGBA{255, 107, 107, 255},
		MessageBackground: color.RGBA{45, 27, 46, 255},
		MessageText:       color.RGBA{255, 245, 245, 255},
		StatsBackground:   color.RGBA{139, 107, 140, 255},
		StatsText:         color.RGBA{255, 245, 245, 255},
	},
	"minimal": {
		Name:              "minimal",
		PreviewBackground: 255,
		PreviewPath:       200,
		Path:              color.RGBA{0, 0, 0, 255},
		Dot:               color.RGBA{0, 136, 255, 255},
		MessageBackground: color.RGBA{255, 255, 255, 255},
		MessageText:       color.RGBA{0, 0, 0, 255},
		StatsBackground:   color.RGBA{240, 240, 240, 255},
		StatsText:         color.RGBA{0, 0, 0, 255},
	},
}

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes[DefaultTheme]
}

// ThemeNames returns the theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
