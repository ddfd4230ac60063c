// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Vec2 is a 2-component float32 vector, laid out the way a vec2<f32> shader uniform expects it.
type Vec2 = [2]float32

// Vec3 is a 3-component float32 vector used for positions, offsets, and extents.
type Vec3 = [3]float32

// Add returns the component-wise sum a + b.
func Add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns the component-wise difference a - b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
