package scene

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/litescript/ls-planets/internal/asset"
)

func resolvedAssets(cfg Config) *Assets {
	tex := asset.NewTexture(2, 1)
	planets := []*asset.Future[*asset.Texture]{
		asset.Resolved(tex),
		asset.Failed[*asset.Texture](errors.New("missing")),
		asset.Resolved(tex),
		asset.Resolved(tex),
	}
	return NewAssets(cfg,
		asset.Resolved(asset.NewEnvironment(asset.NewTexture(4, 2))),
		asset.Failed[*asset.Texture](errors.New("missing")),
		planets,
	)
}

func TestAssets_Slots(t *testing.T) {
	a := resolvedAssets(DefaultConfig())
	slots := a.Slots()

	if len(slots) != 2+PlanetCount {
		t.Fatalf("slots = %d, want %d", len(slots), 2+PlanetCount)
	}
	if slots[0].Kind != SlotEnvironment || slots[1].Kind != SlotStars {
		t.Errorf("first slots = %+v %+v, want env then stars", slots[0], slots[1])
	}
	if slots[3].Label != "earth" || slots[3].Ref != "./earth/map.jpg" {
		t.Errorf("planet slot 1 = %+v, want earth texture", slots[3])
	}
}

func TestAssets_ApplyLoaded(t *testing.T) {
	cfg := DefaultConfig()
	s := Build(cfg)
	a := resolvedAssets(cfg)

	if n := a.ApplyLoaded(s); n != 4 {
		t.Errorf("applied = %d, want 4 (env + 3 planets)", n)
	}
	if s.Environment == nil {
		t.Error("environment not applied")
	}
	if s.Stars != nil {
		t.Error("failed star texture should leave the starfield absent")
	}
	if s.PlanetNodes()[1].Material.Texture != nil {
		t.Error("failed planet texture should leave planet 1 untextured")
	}
	if s.PlanetNodes()[0].Material.Texture == nil {
		t.Error("planet 0 texture not applied")
	}
}

func TestAssets_StatusAndErr(t *testing.T) {
	a := resolvedAssets(DefaultConfig())
	slots := a.Slots()

	if got := a.Status(slots[0]); got != asset.StatusLoaded {
		t.Errorf("env status = %v, want loaded", got)
	}
	if got := a.Status(slots[1]); got != asset.StatusFailed {
		t.Errorf("stars status = %v, want failed", got)
	}
	if a.Err(slots[1]) == nil {
		t.Error("stars Err should be set")
	}
	if got := a.Status(Slot{Kind: SlotPlanet, Index: 12}); got != asset.StatusFailed {
		t.Errorf("out of range slot status = %v, want failed", got)
	}
}

func TestStartLoading_MissingFilesFailQuietly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnvironmentURL = "missing.hdr"
	l := asset.NewLoader(asset.WithBaseDir(t.TempDir()))

	a := StartLoading(context.Background(), l, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	for _, slot := range a.Slots() {
		if a.Status(slot) != asset.StatusFailed {
			t.Errorf("slot %s status = %v, want failed", slot.Label, a.Status(slot))
		}
		if !errors.Is(a.Err(slot), os.ErrNotExist) {
			t.Errorf("slot %s err = %v, want not exist", slot.Label, a.Err(slot))
		}
	}

	s := Build(cfg)
	if n := a.ApplyLoaded(s); n != 0 {
		t.Errorf("applied = %d, want 0", n)
	}
}
