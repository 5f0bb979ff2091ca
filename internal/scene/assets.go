package scene

import (
	"context"
	"fmt"
	"strings"

	"github.com/litescript/ls-planets/internal/asset"
)

// SlotKind identifies what an asset is for.
type SlotKind int

const (
	SlotEnvironment SlotKind = iota
	SlotStars
	SlotPlanet
)

// Slot is one asynchronously loaded asset of the scene.
type Slot struct {
	Kind  SlotKind
	Index int // planet index for SlotPlanet
	Ref   string
	Label string
}

// Assets tracks the in-flight loads for a scene.
type Assets struct {
	slots   []Slot
	env     *asset.Future[*asset.Environment]
	stars   *asset.Future[*asset.Texture]
	planets []*asset.Future[*asset.Texture]
}

// StartLoading begins every load the scene needs and returns immediately.
func StartLoading(ctx context.Context, l *asset.Loader, cfg Config) *Assets {
	planets := make([]*asset.Future[*asset.Texture], len(cfg.Planets))
	for i, p := range cfg.Planets {
		planets[i] = l.LoadTexture(ctx, p.Texture)
	}
	return NewAssets(cfg,
		l.LoadEnvironment(ctx, cfg.EnvironmentURL),
		l.LoadTexture(ctx, cfg.StarTexture),
		planets,
	)
}

// NewAssets wraps existing futures. planets must be in orbit order.
func NewAssets(cfg Config, env *asset.Future[*asset.Environment], stars *asset.Future[*asset.Texture], planets []*asset.Future[*asset.Texture]) *Assets {
	a := &Assets{env: env, stars: stars, planets: planets}
	a.slots = append(a.slots,
		Slot{Kind: SlotEnvironment, Ref: cfg.EnvironmentURL, Label: "env"},
		Slot{Kind: SlotStars, Ref: cfg.StarTexture, Label: "stars"},
	)
	for i := range planets {
		s := Slot{Kind: SlotPlanet, Index: i, Label: fmt.Sprintf("planet%d", i)}
		if i < len(cfg.Planets) {
			s.Ref = cfg.Planets[i].Texture
			s.Label = strings.ToLower(cfg.Planets[i].Name)
		}
		a.slots = append(a.slots, s)
	}
	return a
}

// Slots returns every slot, environment first.
func (a *Assets) Slots() []Slot {
	return a.slots
}

// Status returns the load state of slot.
func (a *Assets) Status(slot Slot) asset.Status {
	switch slot.Kind {
	case SlotEnvironment:
		return a.env.Status()
	case SlotStars:
		return a.stars.Status()
	case SlotPlanet:
		if slot.Index >= 0 && slot.Index < len(a.planets) {
			return a.planets[slot.Index].Status()
		}
	}
	return asset.StatusFailed
}

// Err returns why slot failed, or nil.
func (a *Assets) Err(slot Slot) error {
	switch slot.Kind {
	case SlotEnvironment:
		return a.env.Err()
	case SlotStars:
		return a.stars.Err()
	case SlotPlanet:
		if slot.Index >= 0 && slot.Index < len(a.planets) {
			return a.planets[slot.Index].Err()
		}
	}
	return fmt.Errorf("unknown slot %+v", slot)
}

// Done returns a channel closed when slot resolves.
func (a *Assets) Done(slot Slot) <-chan struct{} {
	switch slot.Kind {
	case SlotEnvironment:
		return a.env.Done()
	case SlotStars:
		return a.stars.Done()
	case SlotPlanet:
		if slot.Index >= 0 && slot.Index < len(a.planets) {
			return a.planets[slot.Index].Done()
		}
	}
	closed := make(chan struct{})
	close(closed)
	return closed
}

// Apply attaches slot to s if it has loaded and reports whether it did.
func (a *Assets) Apply(s *Scene, slot Slot) bool {
	switch slot.Kind {
	case SlotEnvironment:
		if env, ok := a.env.Value(); ok {
			s.SetEnvironment(env)
			return true
		}
	case SlotStars:
		if tex, ok := a.stars.Value(); ok {
			s.SetStarTexture(tex)
			return true
		}
	case SlotPlanet:
		if slot.Index >= 0 && slot.Index < len(a.planets) {
			if tex, ok := a.planets[slot.Index].Value(); ok {
				s.SetPlanetTexture(slot.Index, tex)
				return true
			}
		}
	}
	return false
}

// ApplyLoaded attaches everything that has loaded so far and returns the
// number of slots applied.
func (a *Assets) ApplyLoaded(s *Scene) int {
	n := 0
	for _, slot := range a.slots {
		if a.Apply(s, slot) {
			n++
		}
	}
	return n
}

// Wait blocks until every slot resolves or ctx is done.
func (a *Assets) Wait(ctx context.Context) error {
	for _, slot := range a.slots {
		select {
		case <-a.Done(slot):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
