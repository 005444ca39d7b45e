package scene

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/volume"
)

// DefaultParallelThreshold is the light count at which shadow technique writes
// are fanned out across the worker pool instead of applied inline.
const DefaultParallelThreshold = 64

// Scene owns the camera, the light registry and the post-process volume profile
// that together describe what the renderer draws and how.
// Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Volume returns the scene's post-process volume profile.
	// Returns nil if the scene was created without one.
	Volume() volume.Profile

	// AddLight registers a light with the scene.
	//
	// Parameters:
	//   - l: the light to add
	//
	// Returns:
	//   - uint64: the assigned light ID
	AddLight(l light.Light) uint64

	// Light retrieves a light by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the light's ID
	//
	// Returns:
	//   - light.Light: the light or nil
	Light(id uint64) light.Light

	// RemoveLight removes a light from the registry by ID.
	//
	// Parameters:
	//   - id: the light's ID
	//
	// Returns:
	//   - bool: true if a light was removed
	RemoveLight(id uint64) bool

	// LightCount returns the number of registered lights.
	LightCount() int

	// EnumerateLights returns a snapshot of the registered lights in ID order.
	// The returned slice is a copy; lights added afterwards are not included.
	//
	// Returns:
	//   - []light.Light: the registered lights
	EnumerateLights() []light.Light

	// SetRayTracedShadows applies a shadow technique to the given lights.
	// Large light sets are split across the scene's worker pool; the call
	// returns once every light has been updated.
	//
	// Parameters:
	//   - lights: the lights to update, typically a snapshot from EnumerateLights
	//   - rayTraced: true for ray-traced shadows, false for shadow maps
	SetRayTracedShadows(lights []light.Light, rayTraced bool)
}

// scene implements the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam     camera.Camera
	profile volume.Profile

	lights map[uint64]light.Light
	nextID uint64

	// shadowPool fans shadow technique writes out for large light sets.
	// Workers idle-exit after a second, so a scene that rarely toggles holds no goroutines.
	shadowPool        worker.DynamicWorkerPool
	shadowWorkers     int
	parallelThreshold int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and volume profile.
// The camera is required and NewScene panics if it is nil; the profile may be nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - profile: the post-process volume profile (may be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, profile volume.Profile, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:                &sync.RWMutex{},
		name:              name,
		cam:               cam,
		profile:           profile,
		lights:            make(map[uint64]light.Light),
		nextID:            1,
		shadowWorkers:     max(runtime.NumCPU()-1, 1),
		parallelThreshold: DefaultParallelThreshold,
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the pool after options so WithShadowWorkers can override the default.
	s.shadowPool = worker.NewDynamicWorkerPool(s.shadowWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Volume() volume.Profile {
	return s.profile
}

func (s *scene) AddLight(l light.Light) uint64 {
	if l == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.lights[id] = l
	return id
}

func (s *scene) Light(id uint64) light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lights[id]
}

func (s *scene) RemoveLight(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lights[id]; !ok {
		return false
	}
	delete(s.lights, id)
	return true
}

func (s *scene) LightCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lights)
}

func (s *scene) EnumerateLights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint64, 0, len(s.lights))
	for id := range s.lights {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]light.Light, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.lights[id])
	}
	return out
}

func (s *scene) SetRayTracedShadows(lights []light.Light, rayTraced bool) {
	if len(lights) < s.parallelThreshold {
		for _, l := range lights {
			l.SetRayTracedShadows(rayTraced)
		}
		return
	}

	chunk := (len(lights) + s.shadowWorkers - 1) / s.shadowWorkers

	// A WaitGroup gives a per-call barrier; the pool's own Wait blocks until workers idle-exit.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(lights); start += chunk {
		end := min(start+chunk, len(lights))
		part := lights[start:end]

		wg.Add(1)
		s.shadowPool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				for _, l := range part {
					l.SetRayTracedShadows(rayTraced)
				}
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()
}
