package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// ExpansionShader swaps the scene to the domain palette while Expansion
	// Mode is on.
	ExpansionShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/expansion.kage")
	if err != nil {
		return fmt.Errorf("read expansion shader: %w", err)
	}
	ExpansionShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile expansion shader: %w", err)
	}
	return nil
}
