// Package shaders provides embedded GLSL shader sources for image generation.
package shaders

import _ "embed"

// FullscreenVertexShader emits a viewport-covering triangle without buffers.
//
//go:embed fullscreen.vert
var FullscreenVertexShader string

// PatternFragmentShader fills the target with a time-driven color pattern.
//
//go:embed pattern.frag
var PatternFragmentShader string
