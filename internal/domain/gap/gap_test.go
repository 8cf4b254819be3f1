package gap

import "testing"

func TestMissing_CaseInsensitive(t *testing.T) {
	got := Missing([]string{"Python", "SQL"}, []string{"python", "aws", "docker"})
	if len(got) != 2 {
		t.Fatalf("expected 2 missing, got %v", got)
	}
	if _, ok := got["aws"]; !ok {
		t.Fatalf("expected aws in gap: %v", got)
	}
	if _, ok := got["docker"]; !ok {
		t.Fatalf("expected docker in gap: %v", got)
	}
}

func TestMissing_SameSetsNoGap(t *testing.T) {
	skills := []string{"go", "postgresql", "redis"}
	got := Missing(skills, skills)
	if len(got) != 0 {
		t.Fatalf("expected no gap, got %v", got)
	}
}

func TestMissing_EmptyUserGetsWholeTarget(t *testing.T) {
	got := Missing(nil, []string{"Go", "Kubernetes"})
	if len(got) != 2 {
		t.Fatalf("expected whole target, got %v", got)
	}
	if _, ok := got["go"]; !ok {
		t.Fatalf("expected lowercased target skills: %v", got)
	}
}

func TestMissing_IdempotentUnderRelowercasing(t *testing.T) {
	first := Missing([]string{"PYTHON"}, []string{"Python", "AWS"})

	relowered := make([]string, 0, len(first))
	for s := range first {
		relowered = append(relowered, s)
	}
	second := Missing([]string{"python"}, relowered)

	if len(second) != len(first) {
		t.Fatalf("expected stable gap, first=%v second=%v", first, second)
	}
	for s := range first {
		if _, ok := second[s]; !ok {
			t.Fatalf("skill %q lost on second pass", s)
		}
	}
}

func TestMissing_IgnoresBlankTokens(t *testing.T) {
	got := Missing([]string{""}, []string{" ", "aws"})
	if len(got) != 1 {
		t.Fatalf("expected only aws, got %v", got)
	}
}
