package io

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/asm24/asm"
	"github.com/ezrec/asm24/cpu"
)

type bufferFile struct {
	bytes.Buffer
	closed bool
}

func (bf *bufferFile) Close() error {
	bf.closed = true
	return nil
}

var _ = Describe("Emitter", func() {
	var (
		mockCtrl *gomock.Controller
		root     *MockCreateFS
		sub      *MockCreateFS
		emitter  *Emitter
		obj      *asm.Object
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		root = NewMockCreateFS(mockCtrl)
		sub = NewMockCreateFS(mockCtrl)
		emitter = &Emitter{FS: root, Encoding: cpu.ENCODING_HEX}

		var err error
		source := strings.Join([]string{
			".entry MAIN",
			".extern OUT",
			"MAIN: jsr OUT",
			".data 1",
		}, "\n")
		obj, err = (&asm.Assembler{}).Assemble("src/prog.as", strings.NewReader(source))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should create a missing report directory", func() {
		file := &bufferFile{}
		gomock.InOrder(
			root.EXPECT().Sub("am").Return(nil, fs.ErrNotExist),
			root.EXPECT().Mkdir("am", fs.FileMode(0755)).Return(nil),
			root.EXPECT().Sub("am").Return(sub, nil),
			sub.EXPECT().Create("prog.am").Return(file, nil),
		)

		err := emitter.WriteExpanded(obj.Name, obj.Expanded)
		Expect(err).NotTo(HaveOccurred())
		Expect(file.String()).To(Equal(string(obj.Expanded)))
		Expect(file.closed).To(BeTrue())
	})

	It("should emit every report", func() {
		files := map[string]*bufferFile{
			"prog.ob":  {},
			"prog.ent": {},
			"prog.ext": {},
		}
		root.EXPECT().Sub("ob").Return(sub, nil)
		root.EXPECT().Sub("ent").Return(sub, nil)
		root.EXPECT().Sub("ext").Return(sub, nil)
		for name, file := range files {
			sub.EXPECT().Create(name).Return(file, nil)
		}

		err := emitter.Emit(obj)
		Expect(err).NotTo(HaveOccurred())

		Expect(files["prog.ob"].String()).To(Equal("2 1\n0100 " + obj.State.Code[0].Hex() + "\n0101 000001\n0102 00000C\n"))
		Expect(files["prog.ent"].String()).To(Equal("MAIN 0100\n"))
		Expect(files["prog.ext"].String()).To(Equal("OUT 0101\n"))
		for _, file := range files {
			Expect(file.closed).To(BeTrue())
		}
	})

	It("should report a File error and keep emitting", func() {
		ent := &bufferFile{}
		ext := &bufferFile{}
		root.EXPECT().Sub(gomock.Any()).Return(sub, nil).Times(3)
		sub.EXPECT().Create("prog.ob").Return(nil, fs.ErrPermission)
		sub.EXPECT().Create("prog.ent").Return(ent, nil)
		sub.EXPECT().Create("prog.ext").Return(ext, nil)

		err := emitter.Emit(obj)
		Expect(errors.Is(err, fs.ErrPermission)).To(BeTrue())

		var el *asm.ErrLine
		Expect(errors.As(err, &el)).To(BeTrue())
		Expect(el.Category).To(Equal(asm.CATEGORY_FILE))
		Expect(el.File).To(Equal("ob/prog.ob"))

		Expect(ent.closed).To(BeTrue())
		Expect(ext.closed).To(BeTrue())
	})

	It("should not create a directory over an unreadable one", func() {
		root.EXPECT().Sub("am").Return(nil, fs.ErrPermission)

		err := emitter.WriteExpanded(obj.Name, obj.Expanded)
		Expect(errors.Is(err, fs.ErrPermission)).To(BeTrue())
	})

	It("should reject a missing object", func() {
		Expect(emitter.Emit(nil)).To(MatchError(ErrObjectMissing))
	})
})
