// Package pipelining provides a pipeline definition.
package pipelining

import (
	"log"

	"github.com/sarchlab/cellsort/sim"
)

// Pipeline models a fixed number of register stages. An element accepted on
// one tick leaves the last stage, and is pushed to the post-pipeline buffer,
// numStage*cyclePerStage ticks later.
type Pipeline[T any] interface {
	sim.Named

	// Tick moves elements in the pipeline forward.
	Tick() (madeProgress bool)

	// CanAccept checks if the pipeline can accept a new element.
	CanAccept() bool

	// Accept adds an element to the pipeline. If the first pipeline stage is
	// currently occupied, this function panics.
	Accept(elem T)

	// Clear discards all the items that are currently in the pipeline.
	Clear()

	// Occupancy returns the number of elements in flight.
	Occupancy() int
}

type pipelineStageInfo[T any] struct {
	elem      T
	valid     bool
	cycleLeft int
}

type pipelineImpl[T any] struct {
	name            string
	width           int
	numStage        int
	cyclePerStage   int
	postPipelineBuf sim.Buffer[T]
	stages          [][]pipelineStageInfo[T]
}

func (p *pipelineImpl[T]) Name() string {
	return p.name
}

// Clear discards all the items in the pipeline.
func (p *pipelineImpl[T]) Clear() {
	p.stages = make([][]pipelineStageInfo[T], p.width)
	for i := 0; i < p.width; i++ {
		p.stages[i] = make([]pipelineStageInfo[T], p.numStage)
	}
}

// Tick moves elements in the pipeline forward.
func (p *pipelineImpl[T]) Tick() (madeProgress bool) {
	for lane := 0; lane < p.width; lane++ {
		for i := p.numStage - 1; i >= 0; i-- {
			stage := &p.stages[lane][i]

			if !stage.valid {
				continue
			}

			if stage.cycleLeft > 0 {
				stage.cycleLeft--
				madeProgress = true

				continue
			}

			if i == p.numStage-1 {
				madeProgress = p.tryMoveToPostPipelineBuffer(stage) || madeProgress
			} else {
				madeProgress = p.tryMoveToNextStage(lane, i) || madeProgress
			}
		}
	}

	return madeProgress
}

func (p *pipelineImpl[T]) tryMoveToPostPipelineBuffer(
	stage *pipelineStageInfo[T],
) (succeed bool) {
	if !p.postPipelineBuf.CanPush() {
		return false
	}

	p.postPipelineBuf.Push(stage.elem)
	*stage = pipelineStageInfo[T]{}

	return true
}

func (p *pipelineImpl[T]) tryMoveToNextStage(
	lane int,
	stageNum int,
) (succeed bool) {
	stage := &p.stages[lane][stageNum]
	nextStage := &p.stages[lane][stageNum+1]

	if nextStage.valid {
		return false
	}

	*nextStage = pipelineStageInfo[T]{
		elem:      stage.elem,
		valid:     true,
		cycleLeft: p.cyclePerStage - 1,
	}
	*stage = pipelineStageInfo[T]{}

	return true
}

// CanAccept checks if the pipeline can accept a new element.
func (p *pipelineImpl[T]) CanAccept() bool {
	if p.numStage == 0 {
		return p.postPipelineBuf.CanPush()
	}

	for lane := 0; lane < p.width; lane++ {
		if !p.stages[lane][0].valid {
			return true
		}
	}

	return false
}

// Accept adds an element to the pipeline. A zero-stage pipeline forwards the
// element to the post-pipeline buffer immediately.
func (p *pipelineImpl[T]) Accept(elem T) {
	if p.numStage == 0 {
		p.postPipelineBuf.Push(elem)
		return
	}

	for lane := 0; lane < p.width; lane++ {
		if p.stages[lane][0].valid {
			continue
		}

		p.stages[lane][0] = pipelineStageInfo[T]{
			elem:      elem,
			valid:     true,
			cycleLeft: p.cyclePerStage - 1,
		}

		return
	}

	log.Panicf("pipeline %s is not free, use CanAccept before Accept", p.name)
}

// Occupancy returns the number of elements in flight.
func (p *pipelineImpl[T]) Occupancy() int {
	n := 0

	for _, lane := range p.stages {
		for _, stage := range lane {
			if stage.valid {
				n++
			}
		}
	}

	return n
}
