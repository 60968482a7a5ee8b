package config

import "testing"

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if TickQuantum <= 0 || TickQuantum > TickInterval {
		t.Fatalf("TickQuantum must be positive and no larger than TickInterval")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if MaxLabelLength <= 0 {
		t.Fatalf("MaxLabelLength must be positive")
	}
	if MinLapRows <= 0 || MaxHistoryRows < MinLapRows {
		t.Fatalf("unexpected row limits")
	}
}
