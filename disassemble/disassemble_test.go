package disassemble

import (
	"strings"
	"testing"

	"github.com/stid/apple1-rst/memory"
)

func newProgram(t *testing.T, bytes ...uint8) *memory.RAM {
	t.Helper()
	ram, err := memory.NewRAM(0x10000)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	for i, b := range bytes {
		ram.Write(uint16(i), b)
	}
	return ram
}

func TestStepImmediate(t *testing.T) {
	mem := newProgram(t, 0xA9, 0x42) // LDA #$42
	text, n := Step(0, mem)
	if n != 2 {
		t.Errorf("length = %d, want 2", n)
	}
	if !strings.Contains(text, "LDA") || !strings.Contains(text, "#42") {
		t.Errorf("text = %q, want LDA immediate form", text)
	}
}

func TestStepAbsoluteThreeBytes(t *testing.T) {
	mem := newProgram(t, 0x4C, 0x00, 0xFF) // JMP $FF00
	text, n := Step(0, mem)
	if n != 3 {
		t.Errorf("length = %d, want 3", n)
	}
	if !strings.Contains(text, "JMP") || !strings.Contains(text, "FF00") {
		t.Errorf("text = %q, want JMP absolute form", text)
	}
}

func TestStepImpliedOneByte(t *testing.T) {
	mem := newProgram(t, 0xEA) // NOP
	text, n := Step(0, mem)
	if n != 1 {
		t.Errorf("length = %d, want 1", n)
	}
	if !strings.Contains(text, "NOP") {
		t.Errorf("text = %q, want NOP", text)
	}
}

func TestStepRelativeShowsTarget(t *testing.T) {
	mem := newProgram(t, 0xF0, 0x04) // BEQ +4
	text, n := Step(0, mem)
	if n != 2 {
		t.Errorf("length = %d, want 2", n)
	}
	if !strings.Contains(text, "0006") {
		t.Errorf("text = %q, want resolved branch target 0006", text)
	}
}

func TestStepUndocumentedOpcodeLabeled(t *testing.T) {
	mem := newProgram(t, 0x02) // KIL
	text, _ := Step(0, mem)
	if !strings.Contains(text, "KIL") {
		t.Errorf("text = %q, want KIL", text)
	}
}

func TestTableFullyPopulated(t *testing.T) {
	for i := 0; i < 256; i++ {
		if table[i].mnemonic == "" {
			t.Errorf("table[0x%.2X] has no mnemonic", i)
		}
	}
}
