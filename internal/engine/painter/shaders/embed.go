// Package shaders provides embedded GLSL shader sources for the rect painter.
package shaders

import _ "embed"

// RectVertexShader passes clip-space positions and rect uvs through.
//
//go:embed rect.vert
var RectVertexShader string

// RectFragmentShader shades the rounded rectangle with its edge band.
//
//go:embed rect.frag
var RectFragmentShader string
