package hooking

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("HookableBase", func() {
	var (
		mockCtrl *gomock.Controller
		hookable *HookableBase
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		hookable = &HookableBase{}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should invoke hooks in registration order", func() {
		hook1 := NewMockHook(mockCtrl)
		hook2 := NewMockHook(mockCtrl)
		pos := &HookPos{Name: "Pos"}
		ctx := HookCtx{Pos: pos, Item: 1}

		first := hook1.EXPECT().Func(ctx)
		hook2.EXPECT().Func(ctx).After(first)

		hookable.AcceptHook(hook1)
		hookable.AcceptHook(hook2)
		hookable.InvokeHook(ctx)

		Expect(hookable.NumHooks()).To(Equal(2))
		Expect(hookable.Hooks()).To(HaveLen(2))
	})

	It("should reject duplicated hooks", func() {
		hook := NewMockHook(mockCtrl)

		hookable.AcceptHook(hook)

		Expect(func() { hookable.AcceptHook(hook) }).To(Panic())
	})

	It("should create a log hook base writing to the given writer", func() {
		buf := new(bytes.Buffer)
		base := MakeLogHookBase(buf, "[test] ")

		base.Print("hello")

		Expect(buf.String()).To(ContainSubstring("[test] "))
		Expect(buf.String()).To(ContainSubstring("hello"))
	})
})
