package skin

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"git.lost.host/meutraa/eotc/internal/game"
)

var White = color.RGBA{255, 255, 255, 255}

type Spec struct {
	Name        string   `yaml:"name"`
	ComboColors []string `yaml:"combo_colors"`
}

type Skin struct {
	Name        string
	ComboColors []color.RGBA
}

// Default has no combo colours, so every object is white.
func Default() *Skin {
	return &Skin{Name: "default"}
}

func Parse(data []byte) (*Skin, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("skin: unmarshal: %w", err)
	}
	s := &Skin{Name: spec.Name}
	for i, hex := range spec.ComboColors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("skin: combo colour %d: %w", i, err)
		}
		r, g, b := c.RGB255()
		s.ComboColors = append(s.ComboColors, color.RGBA{r, g, b, 255})
	}
	return s, nil
}

func Load(filename string) (*Skin, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("skin: load %s: %w", filename, err)
	}
	return Parse(data)
}

// AccentColor picks the combo colour for an object, falling back to white
// when the skin or the object has nothing to offer.
func (s *Skin) AccentColor(obj *game.HitObject) color.RGBA {
	combo, ok := game.ComboInformation(obj)
	if !ok || s == nil || len(s.ComboColors) == 0 {
		return White
	}
	return s.ComboColors[combo.Index%len(s.ComboColors)]
}
