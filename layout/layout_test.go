package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/regmap/reg"
	"github.com/ezrec/regmap/sim"
)

type ctrlReg struct{}
type statReg struct{}

func TestTable_Layout(t *testing.T) {
	assert := assert.New(t)

	mem := sim.NewMemory(0x08)
	tb := NewTable(mem.Base())

	ctrl := RW[uint32, ctrlReg](tb, 0x00)
	stat := RW[uint32, statReg](tb, 0x04)
	assert.NoError(tb.End(0x08))

	// The two registers resolve to distinct storage.
	ctrl.Write(0x11111111)
	stat.Write(0x22222222)
	assert.Equal(uint32(0x11111111), ctrl.Read())
	assert.Equal(uint32(0x22222222), stat.Read())
}

func TestTable_Pad(t *testing.T) {
	assert := assert.New(t)

	mem := sim.NewMemory(0x10)
	tb := NewTable(mem.Base())

	_ = RW[uint32, ctrlReg](tb, 0x00)
	tb.Pad(0x04)
	_ = RO[uint16, statReg](tb, 0x08)
	assert.NoError(tb.End(0x10))
}

func TestTable_MixedWidths(t *testing.T) {
	assert := assert.New(t)

	mem := sim.NewMemory(0x10)
	mem.Fill(0xFF)
	tb := NewTable(mem.Base())

	small := RW[uint8, ctrlReg](tb, 0x00)
	wide := RW[uint64, statReg](tb, 0x08)
	assert.NoError(tb.End(0x10))

	small.Write(0x12)
	assert.Equal(uint8(0x12), small.Read())
	assert.Equal(uint64(0xFFFFFFFFFFFFFFFF), wide.Read())
}

func TestTable_OffsetOrder(t *testing.T) {
	assert := assert.New(t)

	mem := sim.NewMemory(0x10)
	tb := NewTable(mem.Base())

	_ = RW[uint32, ctrlReg](tb, 0x04)
	_ = RW[uint32, statReg](tb, 0x00)

	err := tb.End(0x10)
	assert.ErrorContains(err, "overlaps")
	assert.Equal(ErrOffsetOrder{Offset: 0x00, Next: 0x08}, err)
}

func TestTable_OffsetAlign(t *testing.T) {
	assert := assert.New(t)

	mem := sim.NewMemory(0x10)
	tb := NewTable(mem.Base())

	_ = RW[uint32, ctrlReg](tb, 0x02)

	err := tb.End(0x10)
	assert.Equal(ErrOffsetAlign{Offset: 0x02, Size: 4}, err)
}

func TestTable_Extent(t *testing.T) {
	assert := assert.New(t)

	mem := sim.NewMemory(0x10)
	tb := NewTable(mem.Base())

	_ = RW[uint32, ctrlReg](tb, 0x00)
	_ = RW[uint32, statReg](tb, 0x04)

	err := tb.End(0x06)
	assert.Equal(ErrExtent{Extent: 0x06, Next: 0x08}, err)
}

func TestTable_Ended(t *testing.T) {
	assert := assert.New(t)

	mem := sim.NewMemory(0x10)
	tb := NewTable(mem.Base())

	_ = RW[uint32, ctrlReg](tb, 0x00)
	assert.NoError(tb.End(0x04))

	_ = RW[uint32, statReg](tb, 0x04)
	assert.ErrorIs(tb.Err(), ErrEnded)

	assert.ErrorIs(tb.End(0x08), ErrEnded)
}

func TestTable_FirstErrorSticks(t *testing.T) {
	assert := assert.New(t)

	mem := sim.NewMemory(0x10)
	tb := NewTable(mem.Base())

	_ = RW[uint32, ctrlReg](tb, 0x02) // misaligned
	_ = RW[uint32, statReg](tb, 0x00) // would be a second error

	assert.Equal(ErrOffsetAlign{Offset: 0x02, Size: 4}, tb.End(0x10))
}

func TestTable_AccessModes(t *testing.T) {
	assert := assert.New(t)

	mem := sim.NewMemory(0x0C)
	tb := NewTable(mem.Base())

	ro := RO[uint32, ctrlReg](tb, 0x00)
	wo := WO[uint32, statReg](tb, 0x04)
	rw := RW[uint32, reg.Raw](tb, 0x08)
	assert.NoError(tb.End(0x0C))

	wo.Write(0xCAFEF00D)
	rw.Write(0x0DDC0FFE)
	assert.Equal(uint32(0), ro.Read())
	assert.Equal(uint32(0x0DDC0FFE), rw.Read())
}
