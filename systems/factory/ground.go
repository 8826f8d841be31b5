package factory

import (
	"github.com/automoto/domain-expansion/archetypes"
	"github.com/automoto/domain-expansion/components"
	"github.com/automoto/domain-expansion/physics"
	"github.com/automoto/domain-expansion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround mounts a static box collider and registers it as ground.
// center is the box centre; half its half extents.
func CreateGround(ecs *ecs.ECS, id string, center, half mgl64.Vec3) *donburi.Entry {
	shape := physics.Box(half, mgl64.Vec3{})
	footprint := func(offset float64) *resolv.Object {
		return resolv.NewObject(
			center.X()-half.X()+offset, center.Z()-half.Z()+offset,
			2*half.X(), 2*half.Z(),
			tags.ResolvGround,
		)
	}
	return mountGround(ecs, id, shape, center, footprint)
}

// CreatePlaneGround mounts an infinite horizontal plane at height y.
func CreatePlaneGround(ecs *ecs.ECS, id string, y float64) *donburi.Entry {
	return mountGround(ecs, id, physics.Plane(mgl64.Vec3{0, 1, 0}), mgl64.Vec3{0, y, 0}, nil)
}

func mountGround(ecs *ecs.ECS, id string, shape physics.Shape, pos mgl64.Vec3, footprint func(offset float64) *resolv.Object) *donburi.Entry {
	sceneEntry := components.PhysicsWorld.MustFirst(ecs.World)
	engine := components.PhysicsWorld.Get(sceneEntry).Engine
	registry := components.GroundRegistry.Get(sceneEntry)

	ground := archetypes.Ground.Spawn(ecs)
	h := engine.RegisterStaticCollider(shape, pos, physics.GroundMaterial)
	components.Ground.SetValue(ground, components.GroundData{
		ID:       id,
		Collider: h,
		Shape:    shape,
		Position: pos,
	})

	var obj *resolv.Object
	if footprint != nil {
		obj = footprint(registry.Offset)
	}
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	registry.Register(id, h, obj)

	return ground
}
