package ingestion

import "testing"

func TestFilterSkills(t *testing.T) {
	got := FilterSkills([]string{"Python", "foosball", "AWS", "", "snacks", "docker"})
	if len(got) != 3 {
		t.Fatalf("expected 3 skills, got %v", got)
	}
	if got[0] != "python" || got[1] != "aws" || got[2] != "docker" {
		t.Fatalf("unexpected filtered skills: %v", got)
	}
}

func TestFilterSkills_AllNoise(t *testing.T) {
	got := FilterSkills([]string{"ping pong", "free lunch"})
	if len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Python, SQL ,  Machine Learning,,")
	want := []string{"python", "sql", "machine learning"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize("   "); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestTokenize_KeepsUnknownSkills(t *testing.T) {
	got := Tokenize("cobol, fortran")
	if len(got) != 2 {
		t.Fatalf("tokenize must not whitelist, got %v", got)
	}
}
