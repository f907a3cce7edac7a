package pipelining

import (
	"log"

	"github.com/sarchlab/cellsort/sim"
)

// A Builder can build pipelines.
type Builder[T any] struct {
	width           int
	numStage        int
	cyclePerStage   int
	postPipelineBuf sim.Buffer[T]
}

// MakeBuilder creates a default builder
func MakeBuilder[T any]() Builder[T] {
	return Builder[T]{
		width:         1,
		numStage:      5,
		cyclePerStage: 1,
	}
}

// WithPipelineWidth sets the number of lanes in the pipeline. If width=4,
// 4 elements can be in the same stage at the same time.
func (b Builder[T]) WithPipelineWidth(n int) Builder[T] {
	b.width = n
	return b
}

// WithNumStage sets the number of pipeline stages
func (b Builder[T]) WithNumStage(n int) Builder[T] {
	b.numStage = n
	return b
}

// WithCyclePerStage sets the the number of cycles that each element needs to
// stage in each stage.
func (b Builder[T]) WithCyclePerStage(n int) Builder[T] {
	b.cyclePerStage = n
	return b
}

// WithPostPipelineBuffer sets the buffer that the elements can be pushed to
// after passing through the pipeline.
func (b Builder[T]) WithPostPipelineBuffer(buf sim.Buffer[T]) Builder[T] {
	b.postPipelineBuf = buf
	return b
}

// Build builds a pipeline.
func (b Builder[T]) Build(name string) Pipeline[T] {
	sim.NameMustBeValid(name)

	if b.width < 1 || b.numStage < 0 || b.cyclePerStage < 1 {
		log.Panicf("pipeline %s: invalid geometry width=%d stages=%d cps=%d",
			name, b.width, b.numStage, b.cyclePerStage)
	}

	if b.postPipelineBuf == nil {
		log.Panicf("pipeline %s: post-pipeline buffer is not set", name)
	}

	p := &pipelineImpl[T]{
		name:            name,
		width:           b.width,
		numStage:        b.numStage,
		cyclePerStage:   b.cyclePerStage,
		postPipelineBuf: b.postPipelineBuf,
	}

	p.Clear()

	return p
}
