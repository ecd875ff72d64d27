package rfbclient

import "testing"

// TestDecodeCopyRect_Overlap is scenario 2 (§8): CopyRect must not
// corrupt overlapping source/destination regions.
func TestDecodeCopyRect_Overlap(t *testing.T) {
	const A, B, C, D = 1, 2, 3, 4

	data := []byte{0, 0, 0, 0} // srcX=0, srcY=0
	c := testConnection(data, 4, 1)
	c.screen.Lock()
	line := c.screen.scanLine(0)
	line[0], line[1], line[2], line[3] = A, B, C, D

	err := c.decodeCopyRect(Rect{X: 1, Y: 0, W: 3, H: 1})
	c.screen.Unlock()
	if err != nil {
		t.Fatalf("decodeCopyRect: %v", err)
	}

	c.screen.RLock()
	defer c.screen.RUnlock()
	got := c.screen.ScanLine(0)
	want := [4]uint32{A, A, B, C}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("pixel %d = %d, want %d", i, got[i], w)
		}
	}
}

// TestScreen_LockDiscipline is a property check for P7: a reader taking
// RLock never observes a torn write — every element of a scan line
// written under Lock is either all-old or all-new.
func TestScreen_LockDiscipline(t *testing.T) {
	s := NewScreen(8, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			s.Lock()
			v := uint32(i)
			s.FillRect(0, 0, 8, 1, v)
			s.Unlock()
		}
	}()

	for i := 0; i < 100; i++ {
		s.RLock()
		row := s.ScanLine(0)
		first := row[0]
		for _, p := range row {
			if p != first {
				s.RUnlock()
				t.Fatalf("torn read: row = %v", row)
			}
		}
		s.RUnlock()
	}
	<-done
}
