package reg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRW_WriteBack(t *testing.T) {
	assert := assert.New(t)

	store := uint32(0xFFFFFFFF)
	rw := NewRW[uint32, testReg](&store)

	field1 := NewField[uint32, testReg](0, 2)
	field2 := NewField[uint32, testReg](2, 4)
	flag1 := NewField[uint32, testReg](7, 1)

	rw.WriteBack(Join(field1.Val(0b01), field2.Val(0b10), flag1.Val(1)))

	// Bits 0-1 = 01, 2-5 = 0010, bit 7 = 1; bit 6 and 8-31 keep their
	// original ones.
	assert.Equal(uint32(0xFFFFFFC9), store)
	assert.Equal(uint32(0b01), rw.Get(field1))
	assert.Equal(uint32(0b10), rw.Get(field2))
	assert.True(rw.IsSet(flag1))
}

func TestRW_WriteBack_Preserves(t *testing.T) {
	assert := assert.New(t)

	fd := NewField[uint16, testReg](4, 4)

	for _, prior := range []uint16{0x0000, 0xFFFF, 0xA5A5, 0x1234} {
		store := prior
		rw := NewRW[uint16, testReg](&store)

		val := fd.Val(0x9)
		rw.WriteBack(val)

		assert.Equal(prior&^val.Mask()|val.Bits(), store)
		assert.Equal(prior&^val.Mask(), store&^val.Mask())
	}
}

func TestRW_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	store := uint64(0)
	rw := NewRW[uint64, testReg](&store)

	rw.Write(0x123456789ABCDEF0)
	assert.Equal(uint64(0x123456789ABCDEF0), rw.Read())
}

func TestRW_SetBits_Clear(t *testing.T) {
	assert := assert.New(t)

	store := uint8(0xFF)
	rw := NewRW[uint8, testReg](&store)

	lo := NewField[uint8, testReg](0, 2)
	mid := NewField[uint8, testReg](2, 2)
	top := NewField[uint8, testReg](5, 2)

	rw.Clear(lo.Union(mid).Union(top))
	assert.Equal(uint8(0x90), store)

	rw.SetBits(mid)
	assert.Equal(uint8(0x9C), store)

	rw.SetAll()
	assert.Equal(uint8(0xFF), store)

	rw.ClearAll()
	assert.Equal(uint8(0x00), store)
}

func TestRW_Put_Overwrites(t *testing.T) {
	assert := assert.New(t)

	store := uint32(0xFFFFFFFF)
	rw := NewRW[uint32, testReg](&store)

	fd := NewField[uint32, testReg](4, 4)
	rw.Put(fd.Val(0xA))

	// Put discards the mask; bits outside the field are forced to 0.
	assert.Equal(uint32(0xA0), store)

	store = 0xFFFFFFFF
	rw.Set(fd)
	assert.Equal(uint32(0xF0), store)
}

func TestRO_Read(t *testing.T) {
	assert := assert.New(t)

	store := uint16(0b1110_0000)
	ro := NewRO[uint16, testReg](&store)

	assert.Equal(uint16(0b1110_0000), ro.Read())

	b1 := NewField[uint16, testReg](5, 1)
	b2 := NewField[uint16, testReg](6, 1)
	b3 := NewField[uint16, testReg](7, 1)

	assert.Equal(uint16(1), ro.Get(b1))
	assert.True(ro.IsSet(b2))
	assert.Equal(uint16(0b111), ro.Get(b1.Union(b2).Union(b3)))

	store = 0b0110_0000
	assert.False(ro.IsSet(b3))
	assert.Equal(uint16(0b011), ro.Get(b1.Union(b2).Union(b3)))
}

func TestWO_Write(t *testing.T) {
	assert := assert.New(t)

	store := uint32(0xDEADBEEF)
	wo := NewWO[uint32, testReg](&store)

	fd := NewField[uint32, testReg](8, 8)

	wo.Put(fd.Val(0x5A))
	assert.Equal(uint32(0x5A00), store)

	wo.Set(fd)
	assert.Equal(uint32(0xFF00), store)

	wo.SetAll()
	assert.Equal(uint32(0xFFFFFFFF), store)

	wo.ClearAll()
	assert.Equal(uint32(0), store)

	wo.Write(0x12345678)
	assert.Equal(uint32(0x12345678), store)
}
