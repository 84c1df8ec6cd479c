package capi

import "testing"

func TestCreateReturnsDistinctHandles(t *testing.T) {
	h1 := Create()
	h2 := Create()
	defer Destroy(h1)
	defer Destroy(h2)

	if h1 == 0 || h2 == 0 {
		t.Fatal("Create returned the zero handle")
	}
	if h1 == h2 {
		t.Fatalf("Create returned the same handle twice: %d", h1)
	}
}

func TestDestroy(t *testing.T) {
	h := Create()

	if rc := Destroy(h); rc != Success {
		t.Fatalf("Destroy = %d, want Success", rc)
	}
	if rc := Destroy(h); rc != InvalidArgument {
		t.Errorf("second Destroy = %d, want InvalidArgument", rc)
	}
}

func TestZeroHandleNeverValid(t *testing.T) {
	if rc := Destroy(0); rc != InvalidArgument {
		t.Errorf("Destroy(0) = %d, want InvalidArgument", rc)
	}
	if rc := ProcessKey(0, 'a', 0); rc != InvalidArgument {
		t.Errorf("ProcessKey(0) = %d, want InvalidArgument", rc)
	}
	if _, rc := BufferText(0); rc != InvalidArgument {
		t.Errorf("BufferText(0) = %d, want InvalidArgument", rc)
	}
	if _, rc := CandidateCount(0); rc != InvalidArgument {
		t.Errorf("CandidateCount(0) = %d, want InvalidArgument", rc)
	}
}

func TestOperationsReportNotReady(t *testing.T) {
	h := Create()
	defer Destroy(h)

	if rc := ProcessKey(h, 'a', 0); rc != NotReady {
		t.Errorf("ProcessKey = %d, want NotReady", rc)
	}
	text, rc := BufferText(h)
	if rc != NotReady || text != "" {
		t.Errorf("BufferText = (%q, %d), want (\"\", NotReady)", text, rc)
	}
	count, rc := CandidateCount(h)
	if rc != NotReady || count != 0 {
		t.Errorf("CandidateCount = (%d, %d), want (0, NotReady)", count, rc)
	}
}

func TestUnknownHandle(t *testing.T) {
	if rc := ProcessKey(99999, 'a', 0); rc != InvalidArgument {
		t.Errorf("ProcessKey(unknown) = %d, want InvalidArgument", rc)
	}
}
