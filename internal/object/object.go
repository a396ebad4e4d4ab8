package object

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Renderer is the drawing surface objects render to. Coordinates are in field
// units; implementations scale to their output. Calls never fail.
type Renderer interface {
	// Background draws the backdrop for the given frame number.
	Background(frame int)
	// Heart draws a heart sprite centered on (x, y).
	Heart(x, y, size float64, c colorful.Color, kind HeartKind)
	// Pixel draws a square of the given size blended over the background.
	Pixel(x, y, size float64, c colorful.Color, alpha float64)
	// Text draws a centered label blended over the background.
	Text(x, y float64, text string, c colorful.Color, alpha float64)
	// Player draws the player character with its base at (x, y).
	Player(x, y float64)
}

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Field is the logical play-field size.
type Field struct {
	Width  float64
	Height float64
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Field Field
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by one frame. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw draws the object.
	Draw(r Renderer)
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// UpdateAll updates every object and compacts the slice in place, releasing
// removed pooled objects.
func UpdateAll[T Object](objs []T, ctx UpdateContext) []T {
	kept := objs[:0]
	for _, obj := range objs {
		if obj.Update(ctx) {
			ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	// Drop references held past the new length.
	var zero T
	for i := len(kept); i < len(objs); i++ {
		objs[i] = zero
	}
	return kept
}

// DrawAll draws every object in slice order.
func DrawAll[T Object](objs []T, r Renderer) {
	for _, obj := range objs {
		obj.Draw(r)
	}
}
