package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk shape of a tuning file. Every section is optional;
// missing keys keep their current values.
type Tuning struct {
	Ground    GroundConfig    `yaml:"ground"`
	Movement  MovementConfig  `yaml:"movement"`
	Facing    FacingConfig    `yaml:"facing"`
	Character CharacterConfig `yaml:"character"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Animation AnimationConfig `yaml:"animation"`
	Abilities AbilitiesConfig `yaml:"abilities"`
	Expansion ExpansionConfig `yaml:"expansion"`
	Window    WindowConfig    `yaml:"window"`
	Debug     DebugConfig     `yaml:"debug"`
}

// Current snapshots the active configuration.
func Current() Tuning {
	return Tuning{
		Ground:    Ground,
		Movement:  Movement,
		Facing:    Facing,
		Character: Character,
		Physics:   Physics,
		Animation: Animation,
		Abilities: Abilities,
		Expansion: Expansion,
		Window:    Window,
		Debug:     Debug,
	}
}

// Apply makes t the active configuration.
func Apply(t Tuning) {
	Ground = t.Ground
	Movement = t.Movement
	Facing = t.Facing
	Character = t.Character
	Physics = t.Physics
	Animation = t.Animation
	Abilities = t.Abilities
	Expansion = t.Expansion
	Window = t.Window
	Debug = t.Debug
}

// Load reads a tuning file and overlays it onto the active configuration.
// The active configuration is left untouched on error.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := Decode(data, Current())
	if err != nil {
		return Tuning{}, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	return t, nil
}

// Decode overlays YAML data onto base.
func Decode(data []byte, base Tuning) (Tuning, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&base); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, err
	}
	if err := base.Validate(); err != nil {
		return Tuning{}, err
	}
	return base, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.Ground.Threshold <= 0:
		return errors.New("ground.threshold must be positive")
	case t.Ground.SpaceSize <= 0 || t.Ground.SpaceCell <= 0:
		return errors.New("ground.spaceSize and ground.spaceCell must be positive")
	case t.Character.Mass <= 0:
		return errors.New("character.mass must be positive")
	case len(t.Character.SphereHeights) == 0:
		return errors.New("character.sphereHeights must not be empty")
	case t.Facing.FollowLerp < 0 || t.Facing.FollowLerp > 1:
		return errors.New("facing.followLerp must be within [0, 1]")
	case t.Abilities.Ranged.ClearAfter < t.Abilities.Ranged.CastAfter+t.Abilities.Ranged.LaunchAfter:
		return errors.New("abilities.ranged.clearAfter must not precede the launch")
	case t.Abilities.Reversal.Telegraph <= 0 || t.Abilities.Reversal.Active <= 0 || t.Abilities.Reversal.Burst <= 0:
		return errors.New("abilities.reversal phases must be positive")
	case t.Abilities.Domain.AnnounceFor <= 0 || t.Expansion.RevertAfter <= 0:
		return errors.New("domain announce and expansion revert must be positive")
	case t.Window.TPS <= 0:
		return errors.New("window.tps must be positive")
	}
	return nil
}
