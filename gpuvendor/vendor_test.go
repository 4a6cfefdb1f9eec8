package gpuvendor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	for vendorString, expected := range map[string]Vendor{
		"NVIDIA Corporation":                  NVIDIA,
		"nvidia":                              NVIDIA,
		"Intel Open Source Technology Center": Intel,
		"Intel":                               Intel,
		"INTEL(R)":                            Intel,
		"":                                    Unknown,
		"ATI Technologies":                    Unknown,
		"AMD":                                 Unknown,
		"nvidi":                               Unknown,
		"Mesa/X.org (NVIDIA)":                 Unknown,
	} {
		require.Equal(t, expected, Classify(vendorString), vendorString)
	}
}

func TestVendorString(t *testing.T) {
	require.Equal(t, "nvidia", NVIDIA.String())
	require.Equal(t, "intel", Intel.String())
	require.Equal(t, "unknown", Unknown.String())
	require.Equal(t, "unknown_vendor_7", Vendor(7).String())
}

type countingRenderSystem struct {
	vendor  string
	queries int
}

func (r *countingRenderSystem) RenderVendor() string {
	r.queries++
	return r.vendor
}

func TestDetector(t *testing.T) {
	ctx := context.Background()

	rs := &countingRenderSystem{vendor: "NVIDIA Corporation"}
	d := NewDetector(rs)
	require.Equal(t, NVIDIA, d.Detect(ctx))
	rs.vendor = "Intel"
	require.Equal(t, Intel, d.Detect(ctx))
	require.Equal(t, 2, rs.queries)

	require.Equal(t, Intel, NewDetector(StaticRenderSystem("intel hd")).Detect(ctx))
	require.Equal(t, Unknown, NewDetector(nil).Detect(ctx))

	var nilDetector *Detector
	require.Equal(t, Unknown, nilDetector.Detect(ctx))
}
