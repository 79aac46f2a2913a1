package vecviz

import (
	"strings"
)

// Texter is implemented by Behaviors that have a result to show as text.
type Texter interface {
	Text() string
}

// Scene is a collection of Arrows and the Behaviors that drive them.
type Scene struct {
	Name      string
	Arrows    []*Arrow
	Behaviors []Behavior
}

// NewScene creates a new, empty Scene with the name given.
func NewScene(name string) *Scene {
	return &Scene{Name: name}
}

// AddArrow adds the given Arrows to the Scene.
func (scene *Scene) AddArrow(arrows ...*Arrow) {
	scene.Arrows = append(scene.Arrows, arrows...)
}

// AddBehavior adds the given Behaviors to the Scene. Behaviors are updated in the order they're added.
func (scene *Scene) AddBehavior(behaviors ...Behavior) {
	scene.Behaviors = append(scene.Behaviors, behaviors...)
}

// ArrowByName returns the first Arrow in the Scene with the name given, or nil if there isn't one.
func (scene *Scene) ArrowByName(name string) *Arrow {
	for _, arrow := range scene.Arrows {
		if arrow.Name == name {
			return arrow
		}
	}
	return nil
}

// Update updates all of the Scene's Behaviors, with dt being the time since the last Update in seconds.
func (scene *Scene) Update(dt float64) {
	for _, b := range scene.Behaviors {
		b.Update(dt)
	}
}

// Text returns the text results of all of the Scene's Behaviors that have them, one per line.
func (scene *Scene) Text() string {
	texts := []string{}
	for _, b := range scene.Behaviors {
		if texter, ok := b.(Texter); ok {
			if text := texter.Text(); text != "" {
				texts = append(texts, text)
			}
		}
	}
	return strings.Join(texts, "\n")
}
