package zpix

import (
	"bytes"
	"hash/adler32"
	"math/rand"
	"testing"
)

func TestWindowExpandReplicates(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		var w outputWindow
		w.reset()
		w.window = 1 << 15
		for _, b := range []byte("abcdefgh") {
			w.append(b)
		}
		w.expand(8, 4)
		if got, want := string(w.storage[:w.end]), "abcdefghabcd"; got != want {
			t.Fatalf("unexpected output: got %q want %q", got, want)
		}
	})

	t.Run("overlapping", func(t *testing.T) {
		var w outputWindow
		w.reset()
		w.window = 1 << 15
		for _, b := range []byte("ABC") {
			w.append(b)
		}
		w.expand(3, 5)
		if got, want := string(w.storage[:w.end]), "ABCABCAB"; got != want {
			t.Fatalf("unexpected output: got %q want %q", got, want)
		}
	})

	t.Run("distance-one-run", func(t *testing.T) {
		var w outputWindow
		w.reset()
		w.window = 1 << 15
		w.append('x')
		w.expand(1, 299)
		if w.end != 300 {
			t.Fatalf("end = %d, want 300", w.end)
		}
		if !bytes.Equal(w.storage[:300], bytes.Repeat([]byte{'x'}, 300)) {
			t.Fatal("distance-1 expansion should replicate the last byte")
		}
	})
}

func TestWindowRelease(t *testing.T) {
	var w outputWindow
	w.reset()
	w.window = 4
	for _, b := range []byte("abcdefgh") {
		w.append(b)
	}

	if got := w.release(9); got != nil {
		t.Fatalf("release beyond retained should yield nil, got %q", got)
	}
	if got := w.release(3); string(got) != "abc" {
		t.Fatalf("release(3) = %q, want %q", got, "abc")
	}
	if got := w.retained(); got != 5 {
		t.Fatalf("retained = %d, want 5", got)
	}

	// start slides to end-window but never past current.
	if w.start != 3 {
		t.Fatalf("start = %d, want 3 (clamped to current)", w.start)
	}
	if got := w.release(5); string(got) != "defgh" {
		t.Fatalf("release(5) = %q, want %q", got, "defgh")
	}
	if w.start != 4 {
		t.Fatalf("start = %d, want 4 (end-window)", w.start)
	}
}

func TestWindowChecksumMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 200000)
	rng.Read(data)

	var w outputWindow
	w.reset()
	w.window = 1 << 10

	// Interleave appends, expansions and releases so the storage compacts
	// and regrows, exercising the checksum fold on displaced prefixes.
	written := 0
	var mirror []byte
	for written < len(data) {
		n := 1 + rng.Intn(977)
		if written+n > len(data) {
			n = len(data) - written
		}
		for _, b := range data[written : written+n] {
			w.append(b)
		}
		mirror = append(mirror, data[written:written+n]...)
		written += n

		if avail := w.end - w.start; avail > 4 && rng.Intn(2) == 0 {
			offset := 1 + rng.Intn(avail-1)
			count := 1 + rng.Intn(64)
			w.expand(offset, count)
			from := len(mirror) - offset
			for i := 0; i < count; i++ {
				mirror = append(mirror, mirror[from+i])
			}
		}

		if r := w.retained(); r > 16 {
			w.release(r / 2)
		}
	}
	w.release(w.retained())

	if got, want := w.checksum(), adler32.Checksum(mirror); got != want {
		t.Fatalf("checksum = %08x, want %08x", got, want)
	}
}
