package window_test

import (
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cellsort/window"
)

var _ = Describe("Window", func() {
	It("should grow without eviction until full", func() {
		w := window.New(3, window.EvictSmallest)

		_, evicted := w.Insert(5)
		Expect(evicted).To(BeFalse())
		_, evicted = w.Insert(1)
		Expect(evicted).To(BeFalse())
		Expect(w.Full()).To(BeFalse())

		_, evicted = w.Insert(3)
		Expect(evicted).To(BeFalse())
		Expect(w.Full()).To(BeTrue())
		Expect(w.Values()).To(Equal([]uint64{1, 3, 5}))
	})

	It("should evict the smallest once full", func() {
		w := window.New(3, window.EvictSmallest)
		for _, v := range []uint64{4, 6, 8} {
			w.Insert(v)
		}

		v, evicted := w.Insert(7)
		Expect(evicted).To(BeTrue())
		Expect(v).To(Equal(uint64(4)))
		Expect(w.Values()).To(Equal([]uint64{6, 7, 8}))

		v, _ = w.Insert(2)
		Expect(v).To(Equal(uint64(2)))
		Expect(w.Values()).To(Equal([]uint64{6, 7, 8}))
	})

	It("should evict the largest once full", func() {
		w := window.New(2, window.EvictLargest)
		w.Insert(3)
		w.Insert(9)

		v, _ := w.Insert(5)
		Expect(v).To(Equal(uint64(9)))
		Expect(w.Values()).To(Equal([]uint64{3, 5}))
	})

	It("should evict the oldest once full", func() {
		w := window.New(3, window.EvictOldest)
		for _, v := range []uint64{9, 1, 5} {
			w.Insert(v)
		}

		v, _ := w.Insert(4)
		Expect(v).To(Equal(uint64(9)))
		Expect(w.Values()).To(Equal([]uint64{1, 4, 5}))

		v, _ = w.Insert(0)
		Expect(v).To(Equal(uint64(1)))
		Expect(w.Values()).To(Equal([]uint64{0, 4, 5}))
	})

	It("should match a sort-then-pop-front reference on random input", func() {
		r := rand.New(rand.NewSource(7))
		w := window.New(8, window.EvictSmallest)
		ref := []uint64{}

		for i := 0; i < 500; i++ {
			v := uint64(r.Intn(16))
			w.Insert(v)

			ref = append(ref, v)
			sort.Slice(ref, func(a, b int) bool { return ref[a] < ref[b] })
			if len(ref) > 8 {
				ref = ref[1:]
			}

			Expect(w.Values()).To(Equal(ref))
		}
	})

	It("should reset", func() {
		w := window.New(2, window.EvictSmallest)
		w.Insert(1)
		w.Reset()

		Expect(w.Len()).To(Equal(0))
		Expect(w.Values()).To(BeEmpty())
	})

	It("should reject a zero depth", func() {
		Expect(func() { window.New(0, window.EvictSmallest) }).To(Panic())
	})
})

var _ = Describe("EvictPolicy", func() {
	DescribeTable("parsing",
		func(name string, expected window.EvictPolicy) {
			p, err := window.ParseEvictPolicy(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(expected))
			Expect(p.String()).To(Equal(name))
		},
		Entry("smallest", "smallest", window.EvictSmallest),
		Entry("largest", "largest", window.EvictLargest),
		Entry("oldest", "oldest", window.EvictOldest),
	)

	It("should reject unknown names", func() {
		_, err := window.ParseEvictPolicy("newest")
		Expect(err).To(MatchError(ContainSubstring("newest")))
	})
})
