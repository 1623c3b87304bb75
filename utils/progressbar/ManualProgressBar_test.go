package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestManualProgressBar(t *testing.T) {
	var out bytes.Buffer
	p := NewManualProgressBar(10, 4, &out)

	for i := 0; i < 2; i++ {
		p.Increment()
	}
	if p.Progress() != 0.5 {
		t.Errorf("progress: want 0.5, have %v", p.Progress())
	}
	if err := p.Display(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "50.00%") {
		t.Errorf("display: want 50.00%%, have %q", out.String())
	}

	// Progress saturates at the maximum
	for i := 0; i < 10; i++ {
		p.Increment()
	}
	if err := p.Display(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "100.00%") {
		t.Errorf("display: want 100.00%%, have %q", out.String())
	}
	if n := strings.Count(p.String(), "█"); n != 10 {
		t.Errorf("string: want 10 filled cells, have %d", n)
	}
}
