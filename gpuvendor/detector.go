package gpuvendor

import (
	"context"

	"github.com/xaionaro-go/avhwgate/logger"
)

type RenderSystem interface {
	RenderVendor() string
}

// StaticRenderSystem reports a fixed vendor string.
type StaticRenderSystem string

var _ RenderSystem = StaticRenderSystem("")

func (s StaticRenderSystem) RenderVendor() string {
	return string(s)
}

// Detector queries the render system on every call; cache the result on
// the caller side if needed.
type Detector struct {
	RenderSystem RenderSystem
}

func NewDetector(renderSystem RenderSystem) *Detector {
	return &Detector{
		RenderSystem: renderSystem,
	}
}

func (d *Detector) Detect(ctx context.Context) (_ret Vendor) {
	logger.Tracef(ctx, "Detect")
	defer func() { logger.Tracef(ctx, "/Detect: %s", _ret) }()
	if d == nil || d.RenderSystem == nil {
		logger.Debugf(ctx, "no render system is set, the GPU vendor is unknown")
		return Unknown
	}
	return Classify(d.RenderSystem.RenderVendor())
}
