package vecviz

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sauerbraten/jsonfile"
	"github.com/tanema/gween/ease"
)

// Behavior kinds understood by scene files.
const (
	KindVectorBasics         = "vector_basics"
	KindProjectionAndReflect = "projection_and_reflect"
	KindVectorAngle          = "vector_angle"
	KindPlayground           = "playground"
	KindSweep                = "sweep"
)

// ErrInvalidScene is returned (wrapped) by LoadSceneFile when a scene file parses but doesn't describe a valid Scene.
var ErrInvalidScene = errors.New("invalid scene")

// SceneConfig is the on-disk description of a Scene. Scene files are JSON, with support for whole-line and trailing
// "//" comments.
type SceneConfig struct {
	Name      string           `json:"name"`
	Arrows    []ArrowConfig    `json:"arrows"`
	Behaviors []BehaviorConfig `json:"behaviors"`
}

// ArrowConfig describes a single Arrow in a scene file.
type ArrowConfig struct {
	Name     string      `json:"name"`
	Position [3]float64  `json:"position"`
	Vector   *[3]float64 `json:"vector"`    // Direction and magnitude of the arrow; if left out, the arrow faces along its rest axis with a magnitude of 1
	RestAxis *[3]float64 `json:"rest_axis"` // Defaults to +Y if left out
	Color    string      `json:"color"`     // An SVG color name, like "tomato"; defaults to white
	Label    string      `json:"label"`
}

// BehaviorConfig describes a single Behavior in a scene file. Arrows maps the Behavior's roles to Arrow names, like
// {"dot_v1": "a"}. Vectors holds Playground directions and the Sweep axis.
type BehaviorConfig struct {
	Kind     string                `json:"kind"`
	Arrows   map[string]string     `json:"arrows"`
	Vectors  map[string][3]float64 `json:"vectors"`
	Duration float32               `json:"duration"`
	Easing   string                `json:"easing"`
}

var easings = map[string]ease.TweenFunc{
	"":             ease.Linear,
	"linear":       ease.Linear,
	"in_out_quad":  ease.InOutQuad,
	"in_out_cubic": ease.InOutCubic,
	"in_out_sine":  ease.InOutSine,
	"out_bounce":   ease.OutBounce,
	"out_elastic":  ease.OutElastic,
}

// LoadSceneFile loads a Scene from the scene file at the path given.
func LoadSceneFile(path string) (*Scene, error) {

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("vecviz: loading scene: %w", err)
	}

	config := SceneConfig{}

	if err := jsonfile.ParseFile(path, &config); err != nil {
		return nil, fmt.Errorf("vecviz: parsing scene file %s: %w", path, err)
	}

	return config.Build()

}

// Build creates a Scene out of the SceneConfig.
func (config SceneConfig) Build() (*Scene, error) {

	scene := NewScene(config.Name)

	for _, ac := range config.Arrows {

		if ac.Name == "" {
			return nil, fmt.Errorf("%w: arrow with no name", ErrInvalidScene)
		}

		if scene.ArrowByName(ac.Name) != nil {
			return nil, fmt.Errorf("%w: duplicate arrow name %q", ErrInvalidScene, ac.Name)
		}

		arrow := NewArrow(ac.Name)
		arrow.Position = vectorFromArray(ac.Position)
		arrow.Label = ac.Label

		if ac.RestAxis != nil {
			arrow.RestAxis = vectorFromArray(*ac.RestAxis)
			if tooShort(arrow.RestAxis) {
				return nil, fmt.Errorf("%w: arrow %q has a zero-length rest axis", ErrInvalidScene, ac.Name)
			}
		}

		if ac.Color != "" {
			color, ok := ColorByName(ac.Color)
			if !ok {
				return nil, fmt.Errorf("%w: arrow %q has an unknown color %q", ErrInvalidScene, ac.Name, ac.Color)
			}
			arrow.Color = color
		}

		if ac.Vector != nil {
			if err := arrow.SetAsVector(vectorFromArray(*ac.Vector)); err != nil {
				return nil, fmt.Errorf("%w: arrow %q: %s", ErrInvalidScene, ac.Name, err)
			}
		}

		scene.AddArrow(arrow)

	}

	for i, bc := range config.Behaviors {
		b, err := bc.build(scene)
		if err != nil {
			return nil, fmt.Errorf("%w: behavior #%d (%s): %s", ErrInvalidScene, i, bc.Kind, err)
		}
		scene.AddBehavior(b)
	}

	return scene, nil

}

func (bc BehaviorConfig) build(scene *Scene) (Behavior, error) {

	used := map[string]bool{}

	arrow := func(role string, required bool) (*Arrow, error) {
		used[role] = true
		name, exists := bc.Arrows[role]
		if !exists {
			if required {
				return nil, fmt.Errorf("missing %q arrow", role)
			}
			return nil, nil
		}
		a := scene.ArrowByName(name)
		if a == nil {
			return nil, fmt.Errorf("%s: no arrow named %q", role, name)
		}
		return a, nil
	}

	arrows := func(roles ...string) ([]*Arrow, error) {
		out := make([]*Arrow, 0, len(roles))
		for _, role := range roles {
			a, err := arrow(role, true)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
		return out, nil
	}

	var b Behavior

	switch strings.ToLower(bc.Kind) {

	case KindVectorBasics:
		a, err := arrows("dot_v1", "dot_v2", "cross_v1", "cross_v2", "cross_v3")
		if err != nil {
			return nil, err
		}
		b = &VectorBasics{DotV1: a[0], DotV2: a[1], CrossV1: a[2], CrossV2: a[3], CrossV3: a[4]}

	case KindProjectionAndReflect:
		a, err := arrows("project_v1", "project_v2_normal", "project_v3", "reflect_v1_in_direct", "reflect_v2_in_normal", "reflect_v3")
		if err != nil {
			return nil, err
		}
		b = &ProjectionAndReflect{
			ProjectV1:         a[0],
			ProjectV2Normal:   a[1],
			ProjectV3:         a[2],
			ReflectV1InDirect: a[3],
			ReflectV2InNormal: a[4],
			ReflectV3:         a[5],
		}

	case KindVectorAngle:
		a, err := arrows("angle1", "angle2", "axis")
		if err != nil {
			return nil, err
		}
		b = &VectorAngle{Angle1: a[0], Angle2: a[1], Axis: a[2]}

	case KindPlayground:
		pg := &Playground{
			DirectionForUp:    vectorFromArray(bc.Vectors["direction_for_up"]),
			DirectionForRight: vectorFromArray(bc.Vectors["direction_for_right"]),
		}
		var err error
		if pg.UpObj, err = arrow("up_obj", false); err != nil {
			return nil, err
		}
		if pg.RightObj, err = arrow("right_obj", false); err != nil {
			return nil, err
		}
		if pg.RotationUpObj, err = arrow("rotation_up_obj", false); err != nil {
			return nil, err
		}
		if pg.RotationRightObj, err = arrow("rotation_right_obj", false); err != nil {
			return nil, err
		}
		b = pg

	case KindSweep:
		target, err := arrow("target", true)
		if err != nil {
			return nil, err
		}
		axis, exists := bc.Vectors["axis"]
		if !exists {
			axis = WorldUp.Floats()
		}
		if tooShort(vectorFromArray(axis)) {
			return nil, errors.New("zero-length sweep axis")
		}
		easing, exists := easings[strings.ToLower(bc.Easing)]
		if !exists {
			return nil, fmt.Errorf("unknown easing %q", bc.Easing)
		}
		b = NewSweep(target, vectorFromArray(axis), bc.Duration, easing)

	default:
		return nil, errors.New("unknown behavior kind")

	}

	for role := range bc.Arrows {
		if !used[role] {
			return nil, fmt.Errorf("unknown arrow role %q", role)
		}
	}

	return b, nil

}

func vectorFromArray(v [3]float64) Vector {
	return NewVector(v[0], v[1], v[2])
}
