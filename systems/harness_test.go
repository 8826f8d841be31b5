package systems

import (
	"fmt"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/automoto/domain-expansion/animation"
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/input"
	"github.com/automoto/domain-expansion/physics"
	"github.com/automoto/domain-expansion/systems/factory"
	"github.com/automoto/domain-expansion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const step = 100 * time.Millisecond

// recorder is an animation.Controller that logs every call.
type recorder struct {
	calls []string
}

func (r *recorder) Play() animation.Controller {
	r.calls = append(r.calls, "play")
	return r
}

func (r *recorder) Reset() animation.Controller {
	r.calls = append(r.calls, "reset")
	return r
}

func (r *recorder) FadeIn(seconds float64) animation.Controller {
	r.calls = append(r.calls, fmt.Sprintf("in %.1f", seconds))
	return r
}

func (r *recorder) FadeOut(seconds float64) animation.Controller {
	r.calls = append(r.calls, fmt.Sprintf("out %.1f", seconds))
	return r
}

func (r *recorder) SetLoop(mode cfg.LoopMode, repetitions int) animation.Controller {
	r.calls = append(r.calls, fmt.Sprintf("loop %d %d", mode, repetitions))
	return r
}

type advanceRecorder struct {
	last  float64
	total float64
}

func (a *advanceRecorder) Advance(dt float64) {
	a.last = dt
	a.total += dt
}

type harness struct {
	t       *testing.T
	ecs     *ecs.ECS
	engine  *physics.World
	scene   *donburi.Entry
	live    *input.State
	char    *donburi.Entry
	actions [cfg.StateCount]*recorder
	mixer   *advanceRecorder
	ticks   int
}

// newHarness builds a scene with one character standing at the origin. With
// floor set, an infinite plane at y=0 is registered as ground.
func newHarness(t *testing.T, floor bool) *harness {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	engine := factory.NewPhysicsWorld()
	live := input.NewState()
	scene := factory.CreateScene(e, engine, live)
	components.Input.Get(scene).PointerCaptured = true
	if floor {
		factory.CreatePlaneGround(e, "floor", 0)
	}

	h := &harness{t: t, ecs: e, engine: engine, scene: scene, live: live, mixer: &advanceRecorder{}}
	var actions [cfg.StateCount]animation.Controller
	for s := range actions {
		h.actions[s] = &recorder{}
		actions[s] = h.actions[s]
	}
	h.char = factory.SpawnCharacter(e, mgl64.Vec3{}, h.mixer, actions)
	AddCoreSystems(e)
	return h
}

// tick runs one step with exactly the given inputs held.
func (h *harness) tick(held ...cfg.InputID) {
	h.live.Release()
	for _, id := range held {
		h.live.Set(id, true)
	}
	Tick(h.ecs, step)
	h.ticks++
}

// runTo ticks with nothing held until the tick counter reaches n.
func (h *harness) runTo(n int) {
	for h.ticks < n {
		h.tick()
	}
}

func (h *harness) character() *components.CharacterData {
	return components.Character.Get(h.char)
}

func (h *harness) state() cfg.StateID {
	return components.State.Get(h.char).CurrentState
}

func (h *harness) abilities() *components.AbilitiesData {
	return components.Abilities.Get(h.char)
}

func (h *harness) expansion() *components.ExpansionData {
	return components.Expansion.Get(h.scene)
}

func (h *harness) audio() *components.AudioData {
	return components.Audio.Get(h.scene)
}

func (h *harness) count(tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(h.ecs.World)
}

func (h *harness) projectiles(kind components.ProjectileKind) []*components.ProjectileData {
	var out []*components.ProjectileData
	tags.Projectile.Each(h.ecs.World, func(p *donburi.Entry) {
		if d := components.Projectile.Get(p); d.Kind == kind {
			out = append(out, d)
		}
	})
	return out
}

func (h *harness) played(id cfg.SoundID) int {
	n := 0
	for _, s := range h.audio().PendingSFX {
		if s == id {
			n++
		}
	}
	return n
}

func (h *harness) stopped(id cfg.SoundID) bool {
	return slices.Contains(h.audio().PendingStop, id)
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func vecApprox(a, b mgl64.Vec3, eps float64) bool {
	return a.ApproxEqualThreshold(b, eps)
}

func setYaw(h *harness, yaw float64) {
	components.Camera.Get(h.scene).Yaw = yaw
}

func capture(h *harness, captured bool) {
	components.Input.Get(h.scene).PointerCaptured = captured
}

func stateTimer(h *harness) time.Duration {
	return components.State.Get(h.char).StateTimer
}

func rigOf(h *harness) *components.FollowRigData {
	return components.FollowRig.Get(h.char)
}
