package world

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/assets"
	"showroom/internal/components"
	"showroom/internal/config"
	"showroom/internal/engine"
)

// PatchInputs are the textures and values applied to the model's
// physically based materials. A nil texture leaves its slot untouched.
type PatchInputs struct {
	Env       *assets.Texture
	Metalness *assets.Texture
	Normal    *assets.Texture
	Roughness *assets.Texture
	Bump      *assets.Texture

	MetalnessValue float32
	RoughnessValue float32
	Color          rl.Color
	// BumpNode names the node whose materials receive Bump.
	BumpNode string
}

// PatchInputsFromConfig fills the scalar part of PatchInputs.
func PatchInputsFromConfig(cfg config.PatchConfig) (PatchInputs, error) {
	color, err := assets.ParseColor(cfg.Color)
	if err != nil {
		return PatchInputs{}, fmt.Errorf("patch color: %w", err)
	}
	return PatchInputs{
		MetalnessValue: cfg.Metalness,
		RoughnessValue: cfg.Roughness,
		Color:          color,
		BumpNode:       cfg.BumpNode,
	}, nil
}

// Patch walks the subtree at root and rewrites every standard material of
// every mesh node. Basic materials and nodes without a MeshRenderer are
// skipped. Running it again with the same inputs changes nothing. It
// returns the number of distinct materials touched.
func Patch(root *engine.GameObject, in PatchInputs) int {
	if root == nil {
		return 0
	}
	if in.Env != nil {
		in.Env.Mapping = assets.MappingEquirectangularReflection
	}

	seen := make(map[*assets.Material]struct{})
	root.Traverse(func(g *engine.GameObject) bool {
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			return true
		}
		for _, mat := range mr.Materials {
			if !mat.IsPhysical() {
				continue
			}
			patchMaterial(mat, in)
			if in.Bump != nil && g.Name == in.BumpNode {
				mat.BumpMap = in.Bump
			}
			seen[mat] = struct{}{}
		}
		return true
	})
	return len(seen)
}

func patchMaterial(mat *assets.Material, in PatchInputs) {
	if in.Env != nil {
		mat.EnvMap = in.Env
	}
	mat.Metalness = in.MetalnessValue
	mat.Roughness = in.RoughnessValue
	if in.Metalness != nil {
		mat.MetalnessMap = in.Metalness
	}
	if in.Normal != nil {
		mat.NormalMap = in.Normal
	}
	if in.Roughness != nil {
		mat.RoughnessMap = in.Roughness
	}
	mat.Color = in.Color
}
