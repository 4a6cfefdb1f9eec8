package picture

// TakeReference makes p a copy of other sharing other's buffer: p's own
// reference is released first, then all fields are copied and the copied
// buffer (if any) is acquired. other is not modified.
func (p *Picture) TakeReference(other *Picture) *Picture {
	if p == other {
		return p
	}
	p.releaseBuffer()
	*p = *other
	if p.Buffer != nil {
		p.Buffer.Acquire()
	}
	return p
}

// AdoptMetadataOnly makes p a copy of other's metadata. p's own reference is
// released and p ends up without a buffer, whatever other holds.
func (p *Picture) AdoptMetadataOnly(other *Picture) *Picture {
	if p == other {
		p.releaseBuffer()
		return p
	}
	p.releaseBuffer()
	*p = *other
	p.Buffer = nil
	return p
}

// RawCopy duplicates p including the buffer reference value, without
// acquiring it. The result must either be followed by an explicit Acquire,
// or must not outlive p's reference.
func (p *Picture) RawCopy() Picture {
	return *p
}

// Release drops the buffer reference held by p, if any. Calling it again is
// a no-op. The metadata is kept.
func (p *Picture) Release() {
	p.releaseBuffer()
}

func (p *Picture) releaseBuffer() {
	if p.Buffer == nil {
		return
	}
	buf := p.Buffer
	p.Buffer = nil
	buf.Release()
}
