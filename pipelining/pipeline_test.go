package pipelining

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/cellsort/sim"
)

type sample struct {
	value uint64
}

var _ = Describe("Pipeline", func() {
	var (
		mockCtrl           *gomock.Controller
		postPipelineBuffer *MockBuffer[sample]
		pipeline           Pipeline[sample]
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		postPipelineBuffer = NewMockBuffer[sample](mockCtrl)
		pipeline = MakeBuilder[sample]().
			WithPipelineWidth(1).
			WithNumStage(100).
			WithCyclePerStage(2).
			WithPostPipelineBuffer(postPipelineBuffer).
			Build("Pipeline")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should process items in pipeline", func() {
		item1 := sample{value: 1}
		item2 := sample{value: 2}

		Expect(pipeline.CanAccept()).To(BeTrue())

		pipeline.Accept(item1)
		Expect(pipeline.CanAccept()).To(BeFalse())
		Expect(func() { pipeline.Accept(item2) }).To(Panic())

		Expect(pipeline.Tick()).To(BeTrue())
		Expect(pipeline.CanAccept()).To(BeFalse())

		Expect(pipeline.Tick()).To(BeTrue())
		Expect(pipeline.CanAccept()).To(BeTrue())

		pipeline.Accept(item2)
		Expect(pipeline.Occupancy()).To(Equal(2))

		for i := 2; i < 199; i++ {
			Expect(pipeline.Tick()).To(BeTrue())
		}

		postPipelineBuffer.EXPECT().CanPush().Return(true)
		postPipelineBuffer.EXPECT().Push(item1)
		Expect(pipeline.Tick()).To(BeTrue())

		Expect(pipeline.Tick()).To(BeTrue())

		postPipelineBuffer.EXPECT().CanPush().Return(false)
		Expect(pipeline.Tick()).To(BeFalse())

		postPipelineBuffer.EXPECT().CanPush().Return(true)
		postPipelineBuffer.EXPECT().Push(item2)
		Expect(pipeline.Tick()).To(BeTrue())

		Expect(pipeline.Tick()).To(BeFalse())
		Expect(pipeline.Occupancy()).To(Equal(0))
	})

	It("should drop everything on clear", func() {
		pipeline.Accept(sample{value: 9})
		pipeline.Clear()

		Expect(pipeline.Occupancy()).To(Equal(0))
		Expect(pipeline.Tick()).To(BeFalse())
	})
})

var _ = Describe("Zero-Stage Pipeline", func() {
	var (
		mockCtrl           *gomock.Controller
		postPipelineBuffer *MockBuffer[sample]
		pipeline           Pipeline[sample]
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		postPipelineBuffer = NewMockBuffer[sample](mockCtrl)
		pipeline = MakeBuilder[sample]().
			WithNumStage(0).
			WithPostPipelineBuffer(postPipelineBuffer).
			Build("Pipeline")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should not accept if post buffer is full", func() {
		postPipelineBuffer.EXPECT().CanPush().Return(false)

		Expect(pipeline.CanAccept()).To(BeFalse())
	})

	It("should forward to post buffer directly", func() {
		item1 := sample{value: 1}

		postPipelineBuffer.EXPECT().CanPush().Return(true)
		postPipelineBuffer.EXPECT().Push(item1)

		Expect(pipeline.CanAccept()).To(BeTrue())
		pipeline.Accept(item1)
	})
})

var _ = Describe("Register chain", func() {
	It("should delay each element by the number of stages", func() {
		out := sim.NewBuffer[sample]("Out", 1)
		pipeline := MakeBuilder[sample]().
			WithNumStage(3).
			WithPostPipelineBuffer(out).
			Build("Chain")

		var seen []uint64
		for tick := uint64(0); tick < 8; tick++ {
			pipeline.Tick()
			pipeline.Accept(sample{value: tick})

			if s, ok := out.Pop(); ok {
				seen = append(seen, tick-s.value)
			}
		}

		Expect(seen).To(HaveLen(5))
		Expect(seen).To(HaveEach(uint64(3)))
	})

	It("should panic when built without an output buffer", func() {
		Expect(func() {
			MakeBuilder[sample]().WithNumStage(2).Build("Chain")
		}).To(Panic())
	})
})
