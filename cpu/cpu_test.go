package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// flatMemory is a trivial 64k Bus used only by tests, so each test can
// seed exact bytes at exact addresses without going through memory/bus.
type flatMemory struct {
	data [65536]uint8
}

func (f *flatMemory) Read(addr uint16) uint8     { return f.data[addr] }
func (f *flatMemory) Write(addr uint16, v uint8) { f.data[addr] = v }

func newTestCPU(resetVector uint16) (*CPU, *flatMemory) {
	m := &flatMemory{}
	m.data[0xFFFC] = uint8(resetVector & 0xFF)
	m.data[0xFFFD] = uint8(resetVector >> 8)
	c := New(m)
	c.Reset()
	return c, m
}

func TestOpcodeTableFullyPopulated(t *testing.T) {
	for i := 0; i < 256; i++ {
		if opcodeTable[i] == nil {
			t.Errorf("opcodeTable[0x%.2X] is nil, every entry must be populated", i)
		}
	}
}

func TestResetVector(t *testing.T) {
	c, _ := newTestCPU(0xFF00)
	if got, want := c.PC, uint16(0xFF00); got != want {
		t.Errorf("PC after reset = %.4X, want %.4X", got, want)
	}
	if !c.Z {
		t.Error("Z should be true after reset")
	}
	if c.N || c.V || c.D || c.I || c.C {
		t.Error("only Z should be set after reset")
	}
	if got, want := c.S, uint8(0); got != want {
		t.Errorf("S after reset = %d, want %d", got, want)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	c, _ := newTestCPU(0xFF00)
	first := *c
	c.Reset()
	second := *c
	first.cycles, second.cycles = 0, 0
	if diff := deep.Equal(first, second); diff != nil {
		t.Errorf("reset is not idempotent: %v\nstate: %s", diff, spew.Sdump(second))
	}
}

func TestNOPLoop(t *testing.T) {
	c, m := newTestCPU(0xFF00)
	prog := []uint8{0xEA, 0xEA, 0xEA, 0x4C, 0x02, 0xFF}
	for i, b := range prog {
		m.data[0xFF00+uint16(i)] = b
	}

	steps := []struct {
		wantPC     uint16
		wantCycles int
	}{
		{0xFF01, 2},
		{0xFF02, 2},
		{0xFF03, 2},
		{0xFF02, 3},
	}
	for i, s := range steps {
		cycles, err := c.Step()
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i+1, err)
		}
		if c.PC != s.wantPC {
			t.Errorf("step %d: PC = %.4X, want %.4X", i+1, c.PC, s.wantPC)
		}
		if cycles != s.wantCycles {
			t.Errorf("step %d: cycles = %d, want %d", i+1, cycles, s.wantCycles)
		}
	}
}

func TestLDAImmSTAZp(t *testing.T) {
	c, m := newTestCPU(0xFF00)
	prog := []uint8{0xA9, 0x42, 0x85, 0x10}
	for i, b := range prog {
		m.data[0xFF00+uint16(i)] = b
	}

	if _, err := c.Step(); err != nil {
		t.Fatalf("LDA step: %v", err)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("STA step: %v", err)
	}

	if got, want := c.A, uint8(0x42); got != want {
		t.Errorf("A = %.2X, want %.2X", got, want)
	}
	if got, want := m.data[0x10], uint8(0x42); got != want {
		t.Errorf("RAM[0x10] = %.2X, want %.2X", got, want)
	}
	if c.N || c.Z {
		t.Errorf("N=%v Z=%v, want both false", c.N, c.Z)
	}
	if got, want := c.Cycles(), uint64(5); got != want {
		t.Errorf("cycles = %d, want %d", got, want)
	}
}

func TestBranchTakenSamePage(t *testing.T) {
	c, m := newTestCPU(0x00FE)
	prog := []uint8{0xA9, 0x00, 0xF0, 0x04} // LDA #$00; BEQ +4
	for i, b := range prog {
		m.data[0x00FE+uint16(i)] = b
	}

	if _, err := c.Step(); err != nil {
		t.Fatalf("LDA step: %v", err)
	}
	if !c.Z {
		t.Fatal("Z should be true after LDA #$00")
	}
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("BEQ step: %v", err)
	}
	if got, want := cycles, 3; got != want {
		t.Errorf("BEQ cycles = %d, want %d", got, want)
	}
	if got, want := c.PC, uint16(0x0106); got != want {
		t.Errorf("PC after taken branch = %.4X, want %.4X", got, want)
	}
}

func TestBranchPageCross(t *testing.T) {
	c, m := newTestCPU(0x00FD)
	m.data[0x00FD] = 0xF0 // BEQ +1
	m.data[0x00FE] = 0x01
	c.Z = true

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("BEQ step: %v", err)
	}
	if got, want := cycles, 4; got != want {
		t.Errorf("BEQ cycles = %d, want %d", got, want)
	}
	if got, want := c.PC, uint16(0x0100); got != want {
		t.Errorf("PC after taken cross-page branch = %.4X, want %.4X", got, want)
	}
}

func TestDecimalADC(t *testing.T) {
	c, m := newTestCPU(0xFF00)
	m.data[0xFF00] = 0x69 // ADC #$27
	m.data[0xFF01] = 0x27
	c.D = true
	c.C = false
	c.A = 0x15

	if _, err := c.Step(); err != nil {
		t.Fatalf("ADC step: %v", err)
	}
	if got, want := c.A, uint8(0x42); got != want {
		t.Errorf("A = %.2X, want %.2X", got, want)
	}
	if c.C {
		t.Error("C should be false")
	}
	if c.Z {
		t.Error("Z should be false")
	}
	if c.N {
		t.Error("N should be false")
	}
}

func TestJSRRTSPair(t *testing.T) {
	c, m := newTestCPU(0xFF00)
	m.data[0xFF00] = 0x20 // JSR $FF10
	m.data[0xFF01] = 0x10
	m.data[0xFF02] = 0xFF
	m.data[0xFF10] = 0x60 // RTS

	startS := c.S
	if _, err := c.Step(); err != nil {
		t.Fatalf("JSR step: %v", err)
	}
	if got, want := c.PC, uint16(0xFF10); got != want {
		t.Errorf("PC after JSR = %.4X, want %.4X", got, want)
	}
	lo := m.data[0x0100|uint16(c.S+1)]
	hi := m.data[0x0100|uint16(c.S+2)]
	if got, want := lo, uint8(0x02); got != want {
		t.Errorf("pushed low byte = %.2X, want %.2X", got, want)
	}
	if got, want := hi, uint8(0xFF); got != want {
		t.Errorf("pushed high byte = %.2X, want %.2X", got, want)
	}

	if _, err := c.Step(); err != nil {
		t.Fatalf("RTS step: %v", err)
	}
	if got, want := c.PC, uint16(0xFF03); got != want {
		t.Errorf("PC after RTS = %.4X, want %.4X", got, want)
	}
	if got, want := c.S, startS; got != want {
		t.Errorf("S after RTS/JSR pair = %d, want %d (restored)", got, want)
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, m := newTestCPU(0xFF00)
	m.data[0xFF00] = 0x48 // PHA
	m.data[0xFF01] = 0xA9 // LDA #$00 (clobber A)
	m.data[0xFF02] = 0x00
	m.data[0xFF03] = 0x68 // PLA
	c.A = 0x99

	want := c.A
	if _, err := c.Step(); err != nil { // PHA
		t.Fatalf("PHA: %v", err)
	}
	if _, err := c.Step(); err != nil { // LDA #$00
		t.Fatalf("LDA: %v", err)
	}
	if _, err := c.Step(); err != nil { // PLA
		t.Fatalf("PLA: %v", err)
	}
	if got := c.A; got != want {
		t.Errorf("A after PHA/clobber/PLA = %.2X, want %.2X", got, want)
	}
}

func TestKILHalts(t *testing.T) {
	c, m := newTestCPU(0xFF00)
	m.data[0xFF00] = 0x02 // KIL

	if _, err := c.Step(); err == nil {
		t.Fatal("expected HaltedError from KIL")
	} else if _, ok := err.(*HaltedError); !ok {
		t.Fatalf("expected *HaltedError, got %T", err)
	}

	cycles, err := c.Step()
	if err == nil {
		t.Fatal("expected HaltedError on subsequent step after halt")
	}
	if cycles != 0 {
		t.Errorf("cycles after halt = %d, want 0", cycles)
	}
}

func TestUndocumentedLAX(t *testing.T) {
	c, m := newTestCPU(0xFF00)
	m.data[0xFF00] = 0xA7 // LAX zp
	m.data[0xFF01] = 0x10
	m.data[0x10] = 0x77

	if _, err := c.Step(); err != nil {
		t.Fatalf("LAX step: %v", err)
	}
	if c.A != 0x77 || c.X != 0x77 {
		t.Errorf("A=%.2X X=%.2X, want both 0x77", c.A, c.X)
	}
}

func TestNMIVectorsAndServices(t *testing.T) {
	c, m := newTestCPU(0xFF00)
	m.data[0xFF00] = 0xEA // NOP, never reached
	m.data[0xFFFA] = 0x00
	m.data[0xFFFB] = 0xF0 // NMI vector -> 0xF000

	c.SetNMI(true)
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error servicing NMI: %v", err)
	}
	if got, want := cycles, 7; got != want {
		t.Errorf("NMI service cycles = %d, want %d", got, want)
	}
	if got, want := c.PC, uint16(0xF000); got != want {
		t.Errorf("PC after NMI = %.4X, want %.4X", got, want)
	}
	if !c.I {
		t.Error("I should be set after servicing an interrupt")
	}
}

func TestIRQIgnoredWhenInterruptsDisabled(t *testing.T) {
	c, m := newTestCPU(0xFF00)
	m.data[0xFF00] = 0xEA // NOP
	c.I = true
	c.SetIRQ(true)

	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := c.PC, uint16(0xFF01); got != want {
		t.Errorf("PC = %.4X, want %.4X (IRQ should have been ignored)", got, want)
	}
}

func TestRMWWritesBackToBus(t *testing.T) {
	c, m := newTestCPU(0xFF00)
	m.data[0xFF00] = 0xE6 // INC zp
	m.data[0xFF01] = 0x20
	m.data[0x20] = 0x7F

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("INC step: %v", err)
	}
	if got, want := m.data[0x20], uint8(0x80); got != want {
		t.Errorf("RAM[0x20] = %.2X, want %.2X", got, want)
	}
	if !c.N {
		t.Error("N should be set after incrementing to 0x80")
	}
	if got, want := cycles, 5; got != want {
		t.Errorf("cycles = %d, want %d", got, want)
	}
}
