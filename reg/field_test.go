package reg

import (
	"bytes"
	"log"
	"math/bits"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testReg struct{}

func TestField_Val(t *testing.T) {
	assert := assert.New(t)

	fd := NewField[uint32, testReg](2, 4)
	assert.Equal(uint(2), fd.Offset())
	assert.Equal(uint(4), fd.Width())
	assert.Equal(uint32(0b111100), fd.Mask())

	val := fd.Val(0b1010)
	assert.Equal(uint32(0b101000), val.Bits())
	assert.Equal(uint32(0b111100), val.Mask())
	assert.Equal(uint32(0), val.Bits()&^val.Mask())
}

func TestField_Val_Truncates(t *testing.T) {
	assert := assert.New(t)

	fd := NewField[uint8, testReg](0, 2)
	val := fd.Val(0b1011)
	assert.Equal(uint8(0b11), val.Bits())

	fd = NewField[uint8, testReg](3, 2)
	val = fd.Val(0b1011)
	assert.Equal(uint8(0b11<<3), val.Bits())
}

func TestField_FullWidth(t *testing.T) {
	assert := assert.New(t)

	fd := NewField[uint64, testReg](0, 64)
	assert.Equal(^uint64(0), fd.Mask())
	assert.Equal(uint(64), fd.Width())

	fd8 := NewField[uint8, testReg](0, 8)
	assert.Equal(uint8(0xff), fd8.Mask())
}

func TestField_MaskBits(t *testing.T) {
	assert := assert.New(t)

	for offset := uint(0); offset < 16; offset++ {
		for width := uint(1); offset+width <= 16; width++ {
			fd := NewField[uint16, testReg](offset, width)
			assert.Equal(width, uint(bits.OnesCount16(fd.Mask())))
			assert.Equal(offset, uint(bits.TrailingZeros16(fd.Mask())))
		}
	}
}

func TestField_Bounds(t *testing.T) {
	assert := assert.New(t)

	assert.PanicsWithError("field [4 +6] exceeds 8-bit register", func() {
		NewField[uint8, testReg](4, 6)
	})
	assert.PanicsWithError("field [0 +0] exceeds 32-bit register", func() {
		NewField[uint32, testReg](0, 0)
	})
	assert.PanicsWithError("field [64 +1] exceeds 64-bit register", func() {
		NewField[uint64, testReg](64, 1)
	})
}

func TestField_Set(t *testing.T) {
	assert := assert.New(t)

	flag := NewField[uint32, testReg](7, 1)
	assert.Equal(flag.Val(1), flag.Set())

	wide := NewField[uint32, testReg](4, 3)
	assert.Equal(uint32(0b111<<4), wide.Set().Bits())
}

func TestField_Union(t *testing.T) {
	assert := assert.New(t)

	lo := NewField[uint16, testReg](0, 2)
	hi := NewField[uint16, testReg](5, 3)

	both := lo.Union(hi)
	assert.Equal(uint(0), both.Offset())
	assert.Equal(lo.Mask()|hi.Mask(), both.Mask())
	assert.Equal(both.Mask(), hi.Union(lo).Mask())
}

func TestValue_Identity(t *testing.T) {
	assert := assert.New(t)

	fd := NewField[uint32, testReg](3, 5)
	val := fd.Val(0b10110)

	assert.Equal(val, val.Or(Value[uint32, testReg]{}))
	assert.Equal(val, Value[uint32, testReg]{}.Or(val))
	assert.Equal(Value[uint32, testReg]{}, Join[uint32, testReg]())
}

func TestJoin_AssociativeCommutative(t *testing.T) {
	assert := assert.New(t)

	a := NewField[uint32, testReg](0, 2).Val(0b01)
	b := NewField[uint32, testReg](2, 4).Val(0b10)
	c := NewField[uint32, testReg](7, 1).Val(1)

	abc := Join(a, b, c)
	assert.Equal(abc, a.Or(b).Or(c))
	assert.Equal(abc, a.Or(b.Or(c)))
	assert.Equal(abc, Join(c, b, a))
	assert.Equal(abc, Join(b, c, a))
}

func TestValue_OverlapWarning(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)

	a := NewField[uint32, testReg](0, 4).Val(0b1100)
	b := NewField[uint32, testReg](2, 4).Val(0b0011)

	// Default path stays silent.
	val := a.Or(b)
	assert.Equal(a.Mask()|b.Mask(), val.Mask())
	assert.Equal(a.Bits()|b.Bits(), val.Bits())
	assert.Empty(buf.String())

	Debug = true
	defer func() { Debug = false }()

	_ = a.Or(b)
	assert.Contains(buf.String(), "overlap")

	// Disjoint values never warn.
	buf.Reset()
	c := NewField[uint32, testReg](8, 4).Val(0b1111)
	_ = a.Or(c)
	assert.Empty(buf.String())
}
