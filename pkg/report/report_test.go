package report

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLayoutText(t *testing.T) {
	l := Layout{Pieces: []string{"s1", "aR", "aR", "aR", "aR", "s1", "aR", "aR", "aR", "aR"}}

	want := "Path: s1 aR aR aR aR s1 aR aR aR aR  (closed)"
	if got := l.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestDiagnosisTextOpen(t *testing.T) {
	d := Diagnosis{
		Sequence: []string{"s2", "aR"},
		Closed:   false,
		Distance: 0.585786437626905,
		Angle:    0,
	}

	want := "Sequence: s2 aR\n" +
		"Closed: no\n" +
		"Distance: 0.585786437626905\n" +
		"Angle: 0"
	if got := d.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestDiagnosisTextClosed(t *testing.T) {
	d := Diagnosis{Sequence: []string{"aR", "aR"}, Closed: true}

	lines := strings.Split(d.Text(), "\n")
	if len(lines) != 4 {
		t.Fatalf("Text() has %d lines, want 4", len(lines))
	}
	if lines[1] != "Closed: yes" {
		t.Errorf("verdict line = %q, want %q", lines[1], "Closed: yes")
	}
}

func TestDiagnosisJSONRoundTrip(t *testing.T) {
	d := Diagnosis{Sequence: []string{"s1", "aL"}, Closed: false, Distance: 1.5, Angle: 0.25}

	var buf strings.Builder
	if err := WriteJSON(&buf, d); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var back Diagnosis
	if err := json.Unmarshal([]byte(buf.String()), &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back.Distance != d.Distance || back.Closed != d.Closed || len(back.Sequence) != 2 {
		t.Errorf("round trip = %+v, want %+v", back, d)
	}
}
