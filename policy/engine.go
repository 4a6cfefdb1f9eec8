// Package policy decides which hardware-accelerated decode paths may run:
// whether an acceleration toggle applies to the current hardware, and
// whether acceleration of a given codec is disabled.
//
// Every decision is total: missing or unrecognized information never fails,
// it falls back to the documented default (unknown vendor shows everything,
// unknown codec is never disabled, missing setting is not visible).
package policy

import (
	"context"

	"github.com/xaionaro-go/avhwgate/gpuvendor"
	"github.com/xaionaro-go/avhwgate/hwaccel"
	"github.com/xaionaro-go/avhwgate/settings"
)

type VendorSource interface {
	Detect(ctx context.Context) gpuvendor.Vendor
}

// Engine holds the collaborators the decisions are made upon. Any of them
// may be nil. The engine does no locking of its own: the collaborators must
// be safe for concurrent reads.
type Engine struct {
	Backends hwaccel.Lister
	Vendor   VendorSource
	Settings settings.Store
}

func NewEngine(
	backends hwaccel.Lister,
	vendor VendorSource,
	store settings.Store,
) *Engine {
	return &Engine{
		Backends: backends,
		Vendor:   vendor,
		Settings: store,
	}
}

func (e *Engine) backendIDs(ctx context.Context) []string {
	if e.Backends == nil {
		return nil
	}
	return e.Backends.HWAccelIDs(ctx)
}

func (e *Engine) vendor(ctx context.Context) gpuvendor.Vendor {
	if e.Vendor == nil {
		return gpuvendor.Unknown
	}
	return e.Vendor.Detect(ctx)
}

func (e *Engine) getBool(id string) bool {
	if e.Settings == nil {
		return false
	}
	return e.Settings.GetBool(id)
}

func (e *Engine) getSetting(id string) settings.Setting {
	if e.Settings == nil {
		return nil
	}
	return e.Settings.GetSetting(id)
}
