// Package hwaccel enumerates the hardware-acceleration backends available
// to the decoders.
package hwaccel

import (
	"context"
	"slices"
)

// Lister returns the ids of the available backends ("vdpau", "vaapi", ...).
type Lister interface {
	HWAccelIDs(ctx context.Context) []string
}

// Static is a fixed list of backend ids.
type Static []string

var _ Lister = Static(nil)

func (s Static) HWAccelIDs(context.Context) []string {
	return slices.Clone(s)
}

// Has reports whether backend id is in ids.
func Has(ids []string, id string) bool {
	return slices.Contains(ids, id)
}
