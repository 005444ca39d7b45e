package scene

import "github.com/Carmen-Shannon/oxy-rt/engine/light"

// SceneBuilderOption is a functional option for configuring a Scene.
type SceneBuilderOption func(*scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: true to activate the scene
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithLights registers lights with the scene during construction, in order.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		for _, l := range lights {
			if l == nil {
				continue
			}
			s.lights[s.nextID] = l
			s.nextID++
		}
	}
}

// WithShadowWorkers sets the worker count of the pool used to apply shadow technique
// changes. Values < 1 are ignored.
//
// Parameters:
//   - n: number of workers
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShadowWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n >= 1 {
			s.shadowWorkers = n
		}
	}
}

// WithParallelThreshold sets the light count at which shadow writes use the worker pool.
// Values < 1 are ignored.
//
// Parameters:
//   - n: minimum light count for parallel application
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithParallelThreshold(n int) SceneBuilderOption {
	return func(s *scene) {
		if n >= 1 {
			s.parallelThreshold = n
		}
	}
}
