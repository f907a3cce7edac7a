package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BufferImpl", func() {
	var (
		buf Buffer[int]
	)

	BeforeEach(func() {
		buf = NewBuffer[int]("Buf", 2)
	})

	It("should allow push and pop", func() {
		Expect(buf.Capacity()).To(Equal(2))
		Expect(buf.CanPush()).To(BeTrue())

		buf.Push(1)
		Expect(buf.CanPush()).To(BeTrue())
		Expect(buf.Size()).To(Equal(1))

		buf.Push(2)
		Expect(buf.CanPush()).To(BeFalse())
		Expect(buf.Size()).To(Equal(2))
		Expect(func() {
			buf.Push(3)
		}).To(Panic())

		v, ok := buf.Peek()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(1))

		v, ok = buf.Pop()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(1))
		Expect(buf.Size()).To(Equal(1))

		v, _ = buf.Pop()
		Expect(v).To(Equal(2))
		Expect(buf.Size()).To(Equal(0))

		_, ok = buf.Peek()
		Expect(ok).To(BeFalse())
		_, ok = buf.Pop()
		Expect(ok).To(BeFalse())
	})

	It("should clear", func() {
		buf.Push(2)
		Expect(buf.Size()).To(Equal(1))

		buf.Clear()

		Expect(buf.Size()).To(Equal(0))
		Expect(buf.CanPush()).To(BeTrue())
	})

	It("should report pushes and pops to hooks", func() {
		var log []string
		buf.AcceptHook(HookFunc(func(ctx HookCtx) {
			log = append(log, ctx.Pos.Name)
		}))

		buf.Push(7)
		buf.Pop()

		Expect(log).To(Equal([]string{"Buffer Push", "Buffer Pop"}))
	})

	It("should reject invalid names", func() {
		Expect(func() { NewBuffer[int]("buf", 1) }).To(Panic())
	})
})
