package memory

import "testing"

func TestRAMInitialState(t *testing.T) {
	r, err := NewRAM(128)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	for addr := uint16(0); addr < 128; addr++ {
		if got := r.Read(addr); got != 0 {
			t.Errorf("Read(%d) = %.2X, want 0x00", addr, got)
		}
	}
}

func TestRAMReadWrite(t *testing.T) {
	r, err := NewRAM(256)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	r.Write(0x10, 0x42)
	if got, want := r.Read(0x10), uint8(0x42); got != want {
		t.Errorf("Read(0x10) = %.2X, want %.2X", got, want)
	}
	if got, want := r.Read(0x11), uint8(0); got != want {
		t.Errorf("Read(0x11) = %.2X, want %.2X", got, want)
	}
}

func TestRAMOutOfRange(t *testing.T) {
	r, err := NewRAM(16)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	r.Write(100, 0xFF)
	if got, want := r.Read(100), uint8(0); got != want {
		t.Errorf("Read(100) = %.2X, want %.2X", got, want)
	}
}

func TestRAMFlashHonorsLoadAddress(t *testing.T) {
	r, err := NewRAM(0x100)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	r.Flash([]byte{0x00, 0x10, 0xAA, 0xBB, 0xCC})
	if got, want := r.Read(0x10), uint8(0xAA); got != want {
		t.Errorf("Read(0x10) = %.2X, want %.2X", got, want)
	}
	if got, want := r.Read(0x11), uint8(0xBB); got != want {
		t.Errorf("Read(0x11) = %.2X, want %.2X", got, want)
	}
	if got, want := r.Read(0x12), uint8(0xCC); got != want {
		t.Errorf("Read(0x12) = %.2X, want %.2X", got, want)
	}
}

func TestRAMOpCounters(t *testing.T) {
	r, err := NewRAM(16)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	r.Read(0)
	r.Read(1)
	r.Write(0, 1)
	if got, want := r.ReadOps(), uint64(2); got != want {
		t.Errorf("ReadOps() = %d, want %d", got, want)
	}
	if got, want := r.WriteOps(), uint64(1); got != want {
		t.Errorf("WriteOps() = %d, want %d", got, want)
	}
}

func TestROMInitialState(t *testing.T) {
	r, err := NewROM(16)
	if err != nil {
		t.Fatalf("NewROM: %v", err)
	}
	for addr := uint16(0); addr < 16; addr++ {
		if got, want := r.Read(addr), uint8(0xFF); got != want {
			t.Errorf("Read(%d) = %.2X, want %.2X", addr, got, want)
		}
	}
}

func TestROMWriteIsNoOp(t *testing.T) {
	r, err := NewROM(16)
	if err != nil {
		t.Fatalf("NewROM: %v", err)
	}
	r.Write(0, 0x00)
	if got, want := r.Read(0), uint8(0xFF); got != want {
		t.Errorf("Read(0) after Write = %.2X, want %.2X (write should be ignored)", got, want)
	}
	if got, want := r.WriteOps(), uint64(0); got != want {
		t.Errorf("WriteOps() = %d, want %d", got, want)
	}
}

func TestROMFlashIgnoresLoadAddress(t *testing.T) {
	r, err := NewROM(16)
	if err != nil {
		t.Fatalf("NewROM: %v", err)
	}
	// Load address bytes say 0x00FC but the payload must land at offset 0.
	r.Flash([]byte{0x00, 0xFC, 0x4C, 0x02, 0xFF})
	want := []uint8{0x4C, 0x02, 0xFF}
	for i, w := range want {
		if got := r.Read(uint16(i)); got != w {
			t.Errorf("Read(%d) = %.2X, want %.2X", i, got, w)
		}
	}
}
