package assets

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind separates lit metalness/roughness materials from unlit ones.
type Kind int

const (
	KindStandard Kind = iota
	KindBasic
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindBasic:
		return "basic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material is shared by pointer: every node that references it sees
// mutations immediately.
type Material struct {
	Name      string
	Kind      Kind
	Color     rl.Color
	Metalness float32
	Roughness float32
	BumpScale float32

	Map          *Texture
	NormalMap    *Texture
	RoughnessMap *Texture
	MetalnessMap *Texture
	BumpMap      *Texture
	EnvMap       *Texture
}

func NewStandardMaterial(name string) *Material {
	return &Material{
		Name:      name,
		Kind:      KindStandard,
		Color:     rl.White,
		Metalness: 0,
		Roughness: 1,
		BumpScale: 1,
	}
}

func NewBasicMaterial(name string, color rl.Color) *Material {
	return &Material{
		Name:      name,
		Kind:      KindBasic,
		Color:     color,
		BumpScale: 1,
	}
}

// IsPhysical reports whether the material is the metalness/roughness kind.
func (m *Material) IsPhysical() bool {
	return m != nil && m.Kind == KindStandard
}

// CSS named colors accepted in configuration.
var colorByName = map[string]rl.Color{
	"white":     rl.NewColor(255, 255, 255, 255),
	"black":     rl.NewColor(0, 0, 0, 255),
	"gray":      rl.NewColor(128, 128, 128, 255),
	"grey":      rl.NewColor(128, 128, 128, 255),
	"lightgray": rl.NewColor(211, 211, 211, 255),
	"darkgray":  rl.NewColor(169, 169, 169, 255),
	"red":       rl.NewColor(255, 0, 0, 255),
	"green":     rl.NewColor(0, 128, 0, 255),
	"lime":      rl.NewColor(0, 255, 0, 255),
	"blue":      rl.NewColor(0, 0, 255, 255),
	"skyblue":   rl.NewColor(135, 206, 235, 255),
	"yellow":    rl.NewColor(255, 255, 0, 255),
	"gold":      rl.NewColor(255, 215, 0, 255),
	"orange":    rl.NewColor(255, 165, 0, 255),
	"purple":    rl.NewColor(128, 0, 128, 255),
	"magenta":   rl.NewColor(255, 0, 255, 255),
	"pink":      rl.NewColor(255, 192, 203, 255),
	"hotpink":   rl.NewColor(255, 105, 180, 255),
	"maroon":    rl.NewColor(128, 0, 0, 255),
	"brown":     rl.NewColor(165, 42, 42, 255),
	"beige":     rl.NewColor(245, 245, 220, 255),
	"silver":    rl.NewColor(192, 192, 192, 255),
}

// ParseColor accepts a CSS color name or a #rrggbb / 0xrrggbb hex value.
func ParseColor(s string) (rl.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorByName[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 6 {
		return rl.Color{}, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("unknown color %q", s)
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255), nil
}
