package systems

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/domain-expansion/assets"
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/physics"
	"github.com/automoto/domain-expansion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorSky        = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	colorDomainSky  = color.RGBA{0x05, 0x02, 0x10, 0xff}
	colorCharacter  = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colorFacing     = color.RGBA{0x20, 0x20, 0x20, 0xff}
	colorRanged     = color.RGBA{0xa0, 0x40, 0xff, 0xff}
	colorOrbit      = color.RGBA{0x30, 0x60, 0xff, 0xff}
	colorAura       = color.RGBA{0xff, 0x40, 0x40, 0x80}
	colorAuraBurst  = color.RGBA{0xff, 0x00, 0x00, 0xff}
	colorParticle   = color.RGBA{0xff, 0x60, 0x60, 0xff}
	colorStar       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorBounds     = color.RGBA{0x20, 0x50, 0x20, 0xff}
	colorDebugPanel = color.RGBA{0x00, 0x00, 0x00, 0x90}
)

var (
	worldImage *ebiten.Image
	starField  []mgl64.Vec2 // unit disc positions
)

// view maps world X/Z to screen pixels centred on a focus point.
type view struct {
	focus mgl64.Vec3
	scale float64
	w, h  float64
}

func (v view) project(p mgl64.Vec3) (float32, float32) {
	return float32(v.w/2 + (p.X()-v.focus.X())*v.scale), float32(v.h/2 + (p.Z()-v.focus.Z())*v.scale)
}

// DrawWorld renders the top-down view. While Expansion Mode is on the scene
// is drawn over a rotating star field through the domain palette shader.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if worldImage == nil || worldImage.Bounds().Dx() != w || worldImage.Bounds().Dy() != h {
		worldImage = ebiten.NewImage(w, h)
	}

	v := view{scale: cfg.Window.PixelsPerUnit, w: float64(w), h: float64(h)}
	tags.Character.Each(e.World, func(c *donburi.Entry) {
		v.focus = components.Character.Get(c).Position
	})

	expanded := false
	starAngle := 0.0
	if entry, ok := components.Expansion.First(e.World); ok {
		exp := components.Expansion.Get(entry)
		expanded = exp.Active
		starAngle = exp.StarAngle
	}

	img := worldImage
	img.Clear()
	if expanded {
		img.Fill(colorDomainSky)
		drawStars(img, starAngle)
	} else {
		img.Fill(colorSky)
	}

	drawGround(e, img, v)
	drawEffects(e, img, v)
	drawCharacters(e, img, v)

	if expanded && assets.ExpansionShader != nil {
		op := &ebiten.DrawRectShaderOptions{}
		op.Uniforms = map[string]any{"Strength": float32(1)}
		op.Images[0] = img
		screen.DrawRectShader(w, h, assets.ExpansionShader, op)
		return
	}
	screen.DrawImage(img, nil)
}

func drawStars(img *ebiten.Image, angle float64) {
	if len(starField) != cfg.Expansion.StarCount {
		rng := rand.New(rand.NewPCG(7, 11))
		starField = make([]mgl64.Vec2, cfg.Expansion.StarCount)
		for i := range starField {
			r := math.Sqrt(rng.Float64())
			a := rng.Float64() * 2 * math.Pi
			starField[i] = mgl64.Vec2{r * math.Cos(a), r * math.Sin(a)}
		}
	}
	bounds := img.Bounds()
	cx, cy := float64(bounds.Dx())/2, float64(bounds.Dy())/2
	radius := math.Hypot(cx, cy)
	sin, cos := math.Sincos(angle)
	for _, s := range starField {
		x := cx + (s.X()*cos-s.Y()*sin)*radius
		y := cy + (s.X()*sin+s.Y()*cos)*radius
		vector.FillRect(img, float32(x), float32(y), 1, 1, colorStar, false)
	}
}

func drawGround(e *ecs.ECS, img *ebiten.Image, v view) {
	components.Ground.Each(e.World, func(g *donburi.Entry) {
		ground := components.Ground.Get(g)
		if ground.Shape.Kind == physics.ShapePlane {
			img.Fill(groundShade(ground.Position.Y()))
		}
	})
	components.Ground.Each(e.World, func(g *donburi.Entry) {
		ground := components.Ground.Get(g)
		if ground.Shape.Kind != physics.ShapeBox {
			return
		}
		half := ground.Shape.HalfExtents
		x, y := v.project(ground.Position.Sub(half))
		top := ground.Position.Y() + half.Y()
		vector.FillRect(img, x, y, float32(2*half.X()*v.scale), float32(2*half.Z()*v.scale), groundShade(top), false)
	})

	if entry, ok := components.Arena.First(e.World); ok {
		arena := components.Arena.Get(entry)
		if arena.Width > 0 && arena.Depth > 0 {
			x, y := v.project(arena.Origin)
			vector.StrokeRect(img, x, y, float32(arena.Width*v.scale), float32(arena.Depth*v.scale), 1, colorBounds, false)
		}
	}
}

// groundShade darkens higher ground so steps read from above.
func groundShade(top float64) color.RGBA {
	d := uint8(mgl64.Clamp(top*60, 0, 120))
	return color.RGBA{0x3c, 0xb0 - d/2, 0x3c, 0xff}
}

func drawCharacters(e *ecs.ECS, img *ebiten.Image, v view) {
	tags.Character.Each(e.World, func(c *donburi.Entry) {
		rig := components.FollowRig.Get(c)
		x, y := v.project(rig.Position)
		r := float32(cfg.Character.SphereRadius * v.scale * 2)
		vector.DrawFilledCircle(img, x, y, r, colorCharacter, true)

		forward := rig.Rotation.Rotate(forwardAxis)
		fx, fy := v.project(rig.Position.Add(forward.Mul(1.5)))
		vector.StrokeLine(img, x, y, fx, fy, 2, colorFacing, true)
	})
}

func drawEffects(e *ecs.ECS, img *ebiten.Image, v view) {
	tags.Aura.Each(e.World, func(a *donburi.Entry) {
		aura := components.Aura.Get(a)
		x, y := v.project(aura.Position)
		clr := colorAura
		if aura.Exploded {
			clr = colorAuraBurst
		}
		vector.StrokeCircle(img, x, y, float32(aura.Scale*v.scale), 2, clr, true)
	})

	tags.ParticleBurst.Each(e.World, func(b *donburi.Entry) {
		burst := components.ParticleBurst.Get(b)
		size := float32(math.Max(burst.Scale*v.scale, 1))
		for _, off := range burst.Offsets {
			x, y := v.project(burst.Center.Add(off))
			vector.FillRect(img, x-size/2, y-size/2, size, size, colorParticle, false)
		}
	})

	tags.Projectile.Each(e.World, func(p *donburi.Entry) {
		proj := components.Projectile.Get(p)
		x, y := v.project(proj.Position)
		clr := colorRanged
		if proj.Kind == components.ProjectileOrbit {
			clr = colorOrbit
		}
		vector.DrawFilledCircle(img, x, y, float32(0.4*v.scale), clr, true)
	})
}

// DrawDebug prints the tick's simulation state in the corner.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	var lines []string
	if entry, ok := components.Clock.First(e.World); ok {
		clock := components.Clock.Get(entry)
		lines = append(lines, fmt.Sprintf("t=%v tick=%d tps=%.0f", clock.Elapsed, clock.Ticks, ebiten.ActualTPS()))
	}
	if entry, ok := components.Input.First(e.World); ok {
		if !components.Input.Get(entry).PointerCaptured {
			lines = append(lines, "click to capture the pointer")
		}
	}
	tags.Character.Each(e.World, func(c *donburi.Entry) {
		ch := components.Character.Get(c)
		state := components.State.Get(c)
		ab := components.Abilities.Get(c)
		lines = append(lines,
			fmt.Sprintf("state=%v for %v", state.CurrentState, state.StateTimer),
			fmt.Sprintf("pos=(%.2f %.2f %.2f) grounded=%v jump=%v", ch.Position.X(), ch.Position.Y(), ch.Position.Z(), ch.Grounded, ch.InJump),
			fmt.Sprintf("R=%d/%v Q=%v E=%d/%v", ab.Ranged.Phase(), ab.Ranged.Elapsed(), ab.Orbit.Elapsed(), ab.Reversal.Phase(), ab.Reversal.Elapsed()),
		)
	})
	if entry, ok := components.Expansion.First(e.World); ok {
		exp := components.Expansion.Get(entry)
		left, pending := exp.PendingRevert()
		line := fmt.Sprintf("expansion=%v", exp.Active)
		if pending {
			line += fmt.Sprintf(" revert in %v", left)
		}
		lines = append(lines, line)
	}

	vector.FillRect(screen, 0, 0, 420, float32(16*len(lines)+8), colorDebugPanel, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 6, 4+16*i)
	}
}
