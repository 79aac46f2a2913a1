// Package vecviz maps between direction vectors and orientations, and visualizes the result as arrows.
//
// The frame is right-handed with +Y up and +Z forward. RotationFromDirection and DirectionFromRotation convert between a
// direction and the rotation that points an object (whose rest axis is given) along it; the Arrow, Scene, and Behavior types
// build interactive scenes out of those, and the gizmos subpackage draws them with Ebitengine.
package vecviz
