package config

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// GroundConfig tunes the downward ground probe.
type GroundConfig struct {
	RayOffset       float64 `yaml:"rayOffset"`       // lift applied to the foot position before casting
	Threshold       float64 `yaml:"threshold"`       // hits closer than this count as grounded
	GroundedDamping float64 `yaml:"groundedDamping"` // linear damping while grounded
	AirborneDamping float64 `yaml:"airborneDamping"` // linear damping while airborne

	// Broadphase space on the XZ plane (resolv works in 2D).
	SpaceSize   int     `yaml:"spaceSize"`
	SpaceCell   int     `yaml:"spaceCell"`
	SpaceOffset float64 `yaml:"spaceOffset"` // added to world X/Z so the arena fits in positive space
	ProbeSize   float64 `yaml:"probeSize"`
}

// MovementConfig contains the locomotion constants.
type MovementConfig struct {
	Speed            float64 `yaml:"speed"`
	SprintSpeed      float64 `yaml:"sprintSpeed"`
	WalkLength       float64 `yaml:"walkLength"`   // input vector length when not sprinting
	SprintLength     float64 `yaml:"sprintLength"` // input vector length when sprinting
	JumpImpulse      float64 `yaml:"jumpImpulse"`
	LandingNormalDot float64 `yaml:"landingNormalDot"` // contact normal · down must exceed this to land
}

// FacingConfig controls how the visual rig follows the body.
type FacingConfig struct {
	TurnRate   float64 `yaml:"turnRate"` // radians per second
	Epsilon    float64 `yaml:"epsilon"`
	FollowLerp float64 `yaml:"followLerp"` // per tick
}

// CharacterConfig describes the compound body of the avatar.
type CharacterConfig struct {
	Mass          float64    `yaml:"mass"`
	Friction      float64    `yaml:"friction"`
	Restitution   float64    `yaml:"restitution"`
	Spawn         mgl64.Vec3 `yaml:"spawn"`
	SphereRadius  float64    `yaml:"sphereRadius"`
	SphereHeights []float64  `yaml:"sphereHeights"`
	BoxHalf       mgl64.Vec3 `yaml:"boxHalf"`
	BoxHeight     float64    `yaml:"boxHeight"`
}

// PhysicsConfig holds world level constants.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
	// Relaxation factor for positional correction of penetrating contacts.
	Correction float64 `yaml:"correction"`
}

// AnimationConfig holds playback tuning that is not part of the fade table.
type AnimationConfig struct {
	WalkPlaybackScale float64 `yaml:"walkPlaybackScale"`
}

// RangedConfig is the R ability.
type RangedConfig struct {
	SpawnDistance float64       `yaml:"spawnDistance"`
	SpawnHeight   float64       `yaml:"spawnHeight"`
	CastAfter     time.Duration `yaml:"castAfter"`
	LaunchAfter   time.Duration `yaml:"launchAfter"` // measured from the cast
	ClearAfter    time.Duration `yaml:"clearAfter"`  // measured from the trigger
	Speed         float64       `yaml:"speed"`
	ReleaseFor    time.Duration `yaml:"releaseFor"`
}

// OrbitConfig is the Q ability.
type OrbitConfig struct {
	Radius      float64       `yaml:"radius"`
	AngularRate float64       `yaml:"angularRate"`
	SpawnHeight float64       `yaml:"spawnHeight"`
	HoldHeight  float64       `yaml:"holdHeight"`
	Settle      time.Duration `yaml:"settle"`
	ChannelFor  time.Duration `yaml:"channelFor"`
	ClearAfter  time.Duration `yaml:"clearAfter"`
}

// ReversalConfig is the E ability.
type ReversalConfig struct {
	Telegraph      time.Duration `yaml:"telegraph"`
	Active         time.Duration `yaml:"active"`
	Burst          time.Duration `yaml:"burst"`
	GrowFor        time.Duration `yaml:"growFor"`
	MaxScale       float64       `yaml:"maxScale"`
	ScaleLerp      float64       `yaml:"scaleLerp"`
	ParticleCount  int           `yaml:"particleCount"`
	ParticleSpread float64       `yaml:"particleSpread"`
	ParticleMin    float64       `yaml:"particleMin"`
	ParticleMax    float64       `yaml:"particleMax"`
	ParticlePeriod time.Duration `yaml:"particlePeriod"`
}

// DomainConfig is the F ability.
type DomainConfig struct {
	AnnounceFor time.Duration `yaml:"announceFor"`
}

// AbilitiesConfig groups the four timed abilities.
type AbilitiesConfig struct {
	Ranged   RangedConfig   `yaml:"ranged"`
	Orbit    OrbitConfig    `yaml:"orbit"`
	Reversal ReversalConfig `yaml:"reversal"`
	Domain   DomainConfig   `yaml:"domain"`
}

// ExpansionConfig controls the global mode toggle.
type ExpansionConfig struct {
	RevertAfter time.Duration `yaml:"revertAfter"`
	StarCount   int           `yaml:"starCount"`
	StarSpin    float64       `yaml:"starSpin"` // radians per second while the mode is on
}

// WindowConfig is the debug view.
type WindowConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Title         string  `yaml:"title"`
	TPS           int     `yaml:"tps"`
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
}

// DebugConfig toggles development helpers.
type DebugConfig struct {
	Overlay bool `yaml:"overlay"`
}

var Ground GroundConfig
var Movement MovementConfig
var Facing FacingConfig
var Character CharacterConfig
var Physics PhysicsConfig
var Animation AnimationConfig
var Abilities AbilitiesConfig
var Expansion ExpansionConfig
var Window WindowConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	Ground = GroundConfig{
		RayOffset:       0.01,
		Threshold:       0.021,
		GroundedDamping: 0.9999999,
		AirborneDamping: 0,
		SpaceSize:       1024,
		SpaceCell:       16,
		SpaceOffset:     512,
		ProbeSize:       0.5,
	}

	Movement = MovementConfig{
		Speed:            10,
		SprintSpeed:      80,
		WalkLength:       0.3,
		SprintLength:     1.0,
		JumpImpulse:      6,
		LandingNormalDot: 0.5,
	}

	Facing = FacingConfig{
		TurnRate:   20,
		Epsilon:    1e-4,
		FollowLerp: 0.3,
	}

	Character = CharacterConfig{
		Mass:          1,
		Friction:      0,
		Restitution:   0.01,
		Spawn:         mgl64.Vec3{-40, 0.5, -30},
		SphereRadius:  0.25,
		SphereHeights: []float64{0.25, 0.75, 1.25},
		BoxHalf:       mgl64.Vec3{0.2, 0.675, 0.2},
		BoxHeight:     0.68,
	}

	Physics = PhysicsConfig{
		Gravity:    -9.81,
		Correction: 1,
	}

	Animation = AnimationConfig{
		WalkPlaybackScale: 22.5,
	}

	Abilities = AbilitiesConfig{
		Ranged: RangedConfig{
			SpawnDistance: 1,
			SpawnHeight:   1,
			CastAfter:     1200 * time.Millisecond,
			LaunchAfter:   2500 * time.Millisecond,
			ClearAfter:    12 * time.Second,
			Speed:         30,
			ReleaseFor:    500 * time.Millisecond,
		},
		Orbit: OrbitConfig{
			Radius:      1.3,
			AngularRate: 2,
			SpawnHeight: 3,
			HoldHeight:  1,
			Settle:      250 * time.Millisecond,
			ChannelFor:  time.Second,
			ClearAfter:  18 * time.Second,
		},
		Reversal: ReversalConfig{
			Telegraph:      1600 * time.Millisecond,
			Active:         3 * time.Second,
			Burst:          2 * time.Second,
			GrowFor:        time.Second,
			MaxScale:       5,
			ScaleLerp:      0.005,
			ParticleCount:  120,
			ParticleSpread: 4,
			ParticleMin:    0.05,
			ParticleMax:    0.25,
			ParticlePeriod: time.Second,
		},
		Domain: DomainConfig{
			AnnounceFor: 5 * time.Second,
		},
	}

	Expansion = ExpansionConfig{
		RevertAfter: 20 * time.Second,
		StarCount:   400,
		StarSpin:    0.05,
	}

	Window = WindowConfig{
		Width:         1280,
		Height:        720,
		Title:         "Domain Expansion",
		TPS:           60,
		PixelsPerUnit: 4,
	}

	Debug = DebugConfig{
		Overlay: true,
	}
}
