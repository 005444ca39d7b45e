package camera

// CameraBuilderOption is a functional option applied to a camera during construction via NewCamera.
type CameraBuilderOption func(*cameraImpl)

// WithName sets the camera's identifier.
//
// Parameters:
//   - name: the camera name
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's name
func WithName(name string) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.name = name
	}
}

// WithFov sets the camera's field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithNear sets the near clipping plane distance.
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithCustomFrameSettings seeds the camera's custom frame settings.
//
// Parameters:
//   - fs: the initial custom frame settings
//
// Returns:
//   - CameraBuilderOption: a function that sets the custom frame settings
func WithCustomFrameSettings(fs FrameSettings) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.customFrameSettings = fs
	}
}

// WithCustomRenderingSettings enables the custom frame settings path from construction.
func WithCustomRenderingSettings(enabled bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.customRenderingSettings = enabled
	}
}
