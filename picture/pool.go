// pool.go implements the Picture descriptor pool.

package picture

import (
	"github.com/xaionaro-go/avhwgate/pool"
)

// Pool reuses Picture descriptors; Put releases the buffer reference.
var Pool = pool.New(
	func() *Picture { return &Picture{} },
	func(p *Picture) {
		p.Release()
		*p = Picture{}
	},
	nil,
)
