package assess

import "testing"

func TestHeuristicGrade(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		want   Quality
	}{
		{
			name:   "struggle signal",
			answer: "i don't know",
			want:   QualityConfused,
		},
		{
			name:   "empty",
			answer: "",
			want:   QualityConfused,
		},
		{
			name:   "bare yes is incorrect not confused",
			answer: "yes",
			want:   QualityIncorrect,
		},
		{
			name:   "vocabulary plus causal reasoning and length",
			answer: "PID and prior tubal surgery increase risk because they damage the fallopian tube",
			want:   QualityGood,
		},
		{
			name:   "vocabulary alone",
			answer: "something about infection",
			want:   QualityPartial,
		},
		{
			name:   "causal language alone",
			answer: "one thing leads to another somehow",
			want:   QualityPartial,
		},
		{
			name:   "long but content-free",
			answer: "it is related to things in the body in general",
			want:   QualityPartial,
		},
		{
			name:   "short and content-free",
			answer: "the moon probably",
			want:   QualityIncorrect,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HeuristicGrade(tc.answer); got != tc.want {
				t.Errorf("HeuristicGrade(%q) = %q, want %q", tc.answer, got, tc.want)
			}
		})
	}
}

func TestHeuristicGrade_Deterministic(t *testing.T) {
	answer := "PID and prior tubal surgery increase risk because they damage the fallopian tube"
	first := HeuristicGrade(answer)
	for range 5 {
		if HeuristicGrade(answer) != first {
			t.Fatal("heuristic grade must be deterministic")
		}
	}
}
