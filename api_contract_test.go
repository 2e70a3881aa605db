package zpix

import (
	"bytes"
	"compress/zlib"
	"testing"
)

func TestAPIContract_PushAfterDoneIsIdempotent(t *testing.T) {
	src := mustHex(t, storedHello)

	inf := NewInflator(nil)
	done, err := inf.Push(src)
	if err != nil || !done {
		t.Fatalf("Push = (%v, %v), want (true, nil)", done, err)
	}

	// Further pushes neither consume nor disturb the finished session.
	done, err = inf.Push([]byte("trailing garbage"))
	if err != nil || !done {
		t.Fatalf("Push after done = (%v, %v), want (true, nil)", done, err)
	}
	if got := inf.PullAll(); string(got) != "Hello" {
		t.Fatalf("output = %q, want %q", got, "Hello")
	}
}

func TestAPIContract_NeedsMoreDoesNotMutateOutput(t *testing.T) {
	data := bytes.Repeat([]byte("suspend/resume"), 1024)
	src := deflate(t, data, zlib.BestCompression)

	// Feeding a prefix must produce a prefix of the final output, never
	// different bytes, no matter where the stream is cut.
	full, err := Inflate(src, nil)
	if err != nil {
		t.Fatalf("Inflate failed: %v", err)
	}

	for _, cut := range []int{3, 17, len(src) / 3, len(src) / 2, len(src) - 5} {
		inf := NewInflator(nil)
		if _, err := inf.Push(src[:cut]); err != nil {
			t.Fatalf("cut %d: Push failed: %v", cut, err)
		}
		partial := inf.PullAll()
		if !bytes.Equal(partial, full[:len(partial)]) {
			t.Fatalf("cut %d: partial output is not a prefix of the full output", cut)
		}

		if done, err := inf.Push(src[cut:]); err != nil || !done {
			t.Fatalf("cut %d: resume Push = (%v, %v), want (true, nil)", cut, done, err)
		}
		rest := inf.PullAll()
		if !bytes.Equal(append(partial, rest...), full) {
			t.Fatalf("cut %d: resumed output mismatch", cut)
		}
	}
}

func TestAPIContract_EmptyPushIsHarmless(t *testing.T) {
	src := mustHex(t, fixedHelloWorld)

	inf := NewInflator(nil)
	if done, err := inf.Push(nil); err != nil || done {
		t.Fatalf("empty Push = (%v, %v), want (false, nil)", done, err)
	}
	if done, err := inf.Push(src); err != nil || !done {
		t.Fatalf("Push = (%v, %v), want (true, nil)", done, err)
	}
	if done, err := inf.Push(nil); err != nil || !done {
		t.Fatalf("empty Push after done = (%v, %v), want (true, nil)", done, err)
	}
	if got := inf.PullAll(); string(got) != "Hello, World!" {
		t.Fatalf("output = %q", got)
	}
}

func TestAPIContract_WindowBoundedWithSteadyPulls(t *testing.T) {
	// Pulling as output becomes available must keep resident storage near
	// the 32 KiB window instead of the full stream size.
	data := make([]byte, 1<<22)
	for i := range data {
		data[i] = byte(i * 31)
	}
	src := deflate(t, data, zlib.BestSpeed)

	inf := NewInflator(nil)
	var out []byte
	for off := 0; off < len(src); off += 4096 {
		end := off + 4096
		if end > len(src) {
			end = len(src)
		}
		if _, err := inf.Push(src[off:end]); err != nil {
			t.Fatalf("Push failed: %v", err)
		}
		out = append(out, inf.PullAll()...)
	}
	out = append(out, inf.PullAll()...)

	if !bytes.Equal(out, data) {
		t.Fatal("streamed output mismatch")
	}
	if cap(inf.output.storage) > 1<<18 {
		t.Fatalf("resident storage grew to %d bytes despite steady pulls", cap(inf.output.storage))
	}
}
