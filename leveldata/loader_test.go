package leveldata

import (
	"errors"
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLoadArena(t *testing.T) {
	a, err := LoadArena(os.DirFS("testdata"), "arena.tmx")
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "arena" || a.Width != 20 || a.Depth != 10 {
		t.Errorf("arena = %q %vx%v, want arena 20x10", a.Name, a.Width, a.Depth)
	}
	if want := (mgl64.Vec3{-5, 0.5, -2}); !a.Spawn.ApproxEqual(want) {
		t.Errorf("spawn = %v, want %v", a.Spawn, want)
	}
	if len(a.Grounds) != 2 {
		t.Fatalf("got %d ground patches, want 2", len(a.Grounds))
	}

	tests := []struct {
		id     string
		center mgl64.Vec3
		half   mgl64.Vec3
		top    float64
	}{
		{id: "ledge", center: mgl64.Vec3{-6, 1.75, -3}, half: mgl64.Vec3{2, 0.25, 1}, top: 2},
		{id: "main", center: mgl64.Vec3{0, -0.5, 0}, half: mgl64.Vec3{10, 0.5, 5}, top: 0},
	}
	for i, tt := range tests {
		g := a.Grounds[i]
		if g.ID != tt.id {
			t.Errorf("ground %d id = %q, want %q", i, g.ID, tt.id)
			continue
		}
		if !g.Center.ApproxEqual(tt.center) || !g.Half.ApproxEqual(tt.half) {
			t.Errorf("%s: center %v half %v, want %v %v", tt.id, g.Center, g.Half, tt.center, tt.half)
		}
		if g.Top() != tt.top {
			t.Errorf("%s: top = %v, want %v", tt.id, g.Top(), tt.top)
		}
	}
}

func TestLoadArenaErrors(t *testing.T) {
	tests := []struct {
		file string
		want error
	}{
		{"nospawn.tmx", ErrNoSpawn},
		{"noground.tmx", ErrNoGround},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := LoadArena(os.DirFS("testdata"), tt.file)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := LoadArena(os.DirFS("testdata"), "missing.tmx"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadAllArenas(t *testing.T) {
	_, _, err := LoadAllArenas(os.DirFS("testdata"), ".")
	if err == nil {
		t.Fatal("testdata holds invalid arenas, expected an error")
	}
	if _, _, err := LoadAllArenas(os.DirFS("testdata"), "empty"); err == nil {
		t.Error("expected an error for a directory without arenas")
	}
}
