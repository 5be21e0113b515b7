package interaction

import "testing"

func TestIsStruggling(t *testing.T) {
	cases := []struct {
		utterance string
		want      bool
	}{
		{"i don't know", true},
		{"I DON'T KNOW", true},
		{"idk", true},
		{"I'm confused about this", true},
		{"give me a hint", true},
		{"maybe", true},
		{"is it the kidneys?", true}, // trailing ? reads as fishing
		{"", true},
		{"hm", true},
		{"prerenal AKI from hypovolemia", false},
		{"yes", false},
		{"no", false},
		{"okay", false},
		{"PID and prior tubal surgery increase risk", false},
	}

	for _, tc := range cases {
		if got := IsStruggling(tc.utterance); got != tc.want {
			t.Errorf("IsStruggling(%q) = %v, want %v", tc.utterance, got, tc.want)
		}
	}
}

func TestIsStruggling_Deterministic(t *testing.T) {
	for range 3 {
		if !IsStruggling("i don't know") {
			t.Fatal("IsStruggling must be deterministic")
		}
	}
}
