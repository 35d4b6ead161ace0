package modfile

// objectPool hands out slices carved from a few big chunks.
// The parser uses it to avoid a separate allocation per pattern.
type objectPool[T any] struct {
	chunks    []objectPoolChunk[T]
	chunkSize int
}

type objectPoolChunk[T any] struct {
	data []T
	used int
}

func (c *objectPoolChunk[T]) available() int {
	return len(c.data) - c.used
}

func (c *objectPoolChunk[T]) makeSlice(n int) []T {
	slice := c.data[c.used : c.used+n : c.used+n]
	c.used += n
	return slice
}

func initObjectPool[T any](p *objectPool[T], chunkSize, maxChunks int) {
	p.chunks = make([]objectPoolChunk[T], 0, maxChunks)
	p.chunkSize = chunkSize
}

func (p *objectPool[T]) MakeSlice(n int) []T {
	if n > p.chunkSize {
		return make([]T, n)
	}

	for i := range p.chunks {
		c := &p.chunks[i]
		if c.available() >= n {
			return c.makeSlice(n)
		}
	}

	if len(p.chunks) < cap(p.chunks) {
		p.chunks = append(p.chunks, objectPoolChunk[T]{
			data: make([]T, p.chunkSize),
		})
		return p.chunks[len(p.chunks)-1].makeSlice(n)
	}

	// The pool is exhausted.
	return make([]T, n)
}
