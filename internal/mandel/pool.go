package mandel

import (
	"sync"

	"github.com/san-kum/mandelbrot/internal/compute"
)

// block is the scratch space of one Smooth work unit.
type block struct {
	cs  []complex128
	out []compute.Escape
}

type blockPool struct {
	pool sync.Pool
}

func newBlockPool() *blockPool {
	return &blockPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &block{}
			},
		},
	}
}

// Get returns a block with room for n pixels.
func (p *blockPool) Get(n int) *block {
	b := p.pool.Get().(*block)
	if cap(b.cs) < n {
		b.cs = make([]complex128, n)
		b.out = make([]compute.Escape, n)
	}
	b.cs = b.cs[:n]
	b.out = b.out[:n]
	return b
}

func (p *blockPool) Put(b *block) {
	p.pool.Put(b)
}

var blocks = newBlockPool()
