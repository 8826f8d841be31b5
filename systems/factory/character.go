package factory

import (
	"fmt"

	"github.com/automoto/domain-expansion/animation"
	"github.com/automoto/domain-expansion/archetypes"
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/physics"
	"github.com/automoto/domain-expansion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DefaultClips is the clip library shipped with the avatar model.
func DefaultClips() animation.Library {
	return animation.NewLibrary(cfg.CharacterClips[:]...)
}

// CreateCharacter binds every required clip and spawns the avatar. A missing
// clip is a configuration error and no entity is created.
func CreateCharacter(ecs *ecs.ECS, spawn mgl64.Vec3, lib animation.Library) (*donburi.Entry, error) {
	if err := lib.Require(cfg.RequiredClips()...); err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}

	mixer := animation.NewMixer("avatar", lib)
	var actions [cfg.StateCount]animation.Controller
	for state, def := range cfg.CharacterClips {
		action, err := mixer.Bind(def.Name)
		if err != nil {
			return nil, fmt.Errorf("create character: %w", err)
		}
		action.SetLoop(def.Loop, 0)
		actions[state] = action
	}
	actions[cfg.Idle].Play()

	return SpawnCharacter(ecs, spawn, mixer, actions), nil
}

// SpawnCharacter creates the avatar entity with an already bound action table.
func SpawnCharacter(ecs *ecs.ECS, spawn mgl64.Vec3, mixer animation.Advancer, actions [cfg.StateCount]animation.Controller) *donburi.Entry {
	sceneEntry := components.PhysicsWorld.MustFirst(ecs.World)
	engine := components.PhysicsWorld.Get(sceneEntry).Engine
	registry := components.GroundRegistry.Get(sceneEntry)

	character := archetypes.Character.Spawn(ecs)
	entity := character.Entity()
	world := ecs.World

	body := engine.RegisterDynamicBody(physics.BodyDef{
		Shapes:        characterShapes(),
		Mass:          cfg.Character.Mass,
		Material:      physics.Material{Name: "slippery", Friction: cfg.Character.Friction, Restitution: cfg.Character.Restitution},
		Position:      spawn,
		LinearDamping: cfg.Ground.AirborneDamping,
		OnCollide: func(c physics.Contact) {
			if c.Normal.Dot(mgl64.Vec3{0, -1, 0}) > cfg.Movement.LandingNormalDot {
				components.LandedEvent.Publish(world, components.LandedEventData{Character: entity, Normal: c.Normal})
			}
		},
	})

	components.Character.SetValue(character, components.CharacterData{
		Body:     body,
		Position: spawn,
	})
	components.FollowRig.SetValue(character, components.FollowRigData{
		Position: spawn,
		Rotation: mgl64.QuatIdent(),
	})
	components.State.SetValue(character, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.Idle,
	})
	components.Animation.SetValue(character, components.AnimationData{
		Mixer:   mixer,
		Actions: actions,
	})
	components.Abilities.SetValue(character, components.NewAbilities())

	size := cfg.Ground.ProbeSize
	probe := resolv.NewObject(spawn.X()+registry.Offset-size/2, spawn.Z()+registry.Offset-size/2, size, size, tags.ResolvProbe)
	probe.Data = entity
	if registry.Space != nil {
		registry.Space.Add(probe)
	}
	components.Object.SetValue(character, components.ObjectData{Object: probe})

	return character
}

func characterShapes() []physics.Shape {
	c := cfg.Character
	shapes := make([]physics.Shape, 0, len(c.SphereHeights)+1)
	for _, y := range c.SphereHeights {
		shapes = append(shapes, physics.Sphere(c.SphereRadius, mgl64.Vec3{0, y, 0}))
	}
	return append(shapes, physics.Box(c.BoxHalf, mgl64.Vec3{0, c.BoxHeight, 0}))
}
