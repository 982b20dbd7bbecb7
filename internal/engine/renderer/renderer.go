// Package renderer initializes OpenGL and checks the driver version.
package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/logger"
)

// Minimum OpenGL version the shaders are written for.
const (
	MinMajor = 4
	MinMinor = 1
)

// Info describes the active OpenGL driver.
type Info struct {
	Version  string
	Renderer string
	Vendor   string
	GLSL     string
}

// Init loads OpenGL function pointers and verifies the context version.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func Init() (Info, error) {
	if err := gl.Init(); err != nil {
		return Info{}, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	info := Info{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	logger.Info("OpenGL initialized",
		zap.String("version", info.Version),
		zap.String("renderer", info.Renderer),
		zap.String("vendor", info.Vendor),
		zap.String("glsl", info.GLSL),
	)

	major, minor, ok := ParseVersion(info.Version)
	if !ok {
		logger.Warn("could not parse OpenGL version", zap.String("version", info.Version))
		return info, nil
	}
	if major < MinMajor || (major == MinMajor && minor < MinMinor) {
		return info, fmt.Errorf("OpenGL %d.%d required, got %s", MinMajor, MinMinor, info.Version)
	}
	return info, nil
}

// ParseVersion extracts major and minor from a GL_VERSION string such as
// "4.1 Metal - 88" or "4.6.0 NVIDIA 550.54".
func ParseVersion(s string) (major, minor int, ok bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, 0, false
	}
	parts := strings.Split(fields[0], ".")
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
