package oracle

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Comparator", func() {
	var (
		mockCtrl *gomock.Controller
		device   *MockDevice
		ctx      *SimContext
		cmp      *Comparator
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		device = NewMockDevice(mockCtrl)
		ctx = NewSimContext(device, nil)

		cfg := DefaultConfig()
		cfg.WindowDepth = 4
		cmp = NewComparator(cfg)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should accept a matching output", func() {
		device.EXPECT().Output().Return([]uint64{0, 1, 2, 3})

		observed, err := cmp.Check(ctx, 6, []uint64{0, 1, 2, 3})

		Expect(err).NotTo(HaveOccurred())
		Expect(observed).To(Equal([]uint64{0, 1, 2, 3}))
	})

	It("should report the first difference with both vectors", func() {
		device.EXPECT().Output().Return([]uint64{0, 1, 2, 4})

		_, err := cmp.Check(ctx, 6, []uint64{0, 1, 2, 3})

		div, ok := AsDivergence(err)
		Expect(ok).To(BeTrue())
		Expect(div.Cycle).To(Equal(6))
		Expect(div.Expected).To(Equal([]uint64{0, 1, 2, 3}))
		Expect(div.Observed).To(Equal([]uint64{0, 1, 2, 4}))
		Expect(div.Reason).To(Equal("first difference at element 3"))
	})

	It("should report an output of the wrong length", func() {
		device.EXPECT().Output().Return([]uint64{0, 1, 2})

		_, err := cmp.Check(ctx, 0, []uint64{0, 0, 0, 0})

		div, ok := AsDivergence(err)
		Expect(ok).To(BeTrue())
		Expect(div.Reason).To(Equal("output has 3 elements, want 4"))
	})

	It("should report a value wider than the value width", func() {
		device.EXPECT().Output().Return([]uint64{0, 0, 0, 256})

		_, err := cmp.Check(ctx, 0, []uint64{0, 0, 0, 0})

		div, ok := AsDivergence(err)
		Expect(ok).To(BeTrue())
		Expect(div.Reason).To(ContainSubstring("exceeds the value width"))
	})

	It("should not keep a reference to the device output", func() {
		out := []uint64{0, 1, 2, 3}
		device.EXPECT().Output().Return(out)

		observed, _ := cmp.Check(ctx, 0, []uint64{0, 1, 2, 3})
		out[0] = 9

		Expect(observed[0]).To(BeZero())
	})
})
