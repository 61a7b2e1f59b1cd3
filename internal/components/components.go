// Package components holds the component types of the game.
package components

// Transform is a position in terminal cells.
type Transform struct {
	X, Y float64
}

// RigidBody is a velocity in cells per second.
type RigidBody struct {
	VX, VY float64
}

// Sprite names the asset drawn at the entity's Transform. Higher Z is drawn on
// top.
type Sprite struct {
	AssetID string
	Z       int
}

// Bounded marks entities that are destroyed once they leave the map.
type Bounded struct{}

// Player marks entities steered by the keyboard.
type Player struct{}
