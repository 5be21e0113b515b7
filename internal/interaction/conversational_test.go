package interaction

import "testing"

func TestIsConversational_ReadinessConfirmation(t *testing.T) {
	tutor := "Great work so far. Ready to move on to Risk Factors?"

	if !IsConversational("yes", tutor) {
		t.Error("'yes' after a readiness question should be conversational")
	}
	if !IsConversational("let's go", tutor) {
		t.Error("'let's go' after a readiness question should be conversational")
	}
}

func TestIsConversational_ConfirmationWithoutQuestion(t *testing.T) {
	tutor := "Tell me the main risk factors for ectopic pregnancy."

	// "yes" is still conversational here, but via the short-answer rule,
	// not the readiness rule, and "yes ok sure" is not.
	if IsConversational("sounds good to me", tutor) {
		t.Error("confirmation phrasing without a readiness question should not match rule (a)")
	}
}

func TestIsConversational_Clarification(t *testing.T) {
	cases := []string{
		"what do you mean by adnexal?",
		"can you rephrase that",
		"how is that different from PID?",
		"why are you asking me this",
	}
	for _, u := range cases {
		if !IsConversational(u, "What are the risk factors?") {
			t.Errorf("%q should be conversational (clarification)", u)
		}
	}
}

func TestIsConversational_HelpRequestNotStruggling(t *testing.T) {
	if !IsConversational("i could use some help structuring this answer", "Question?") {
		t.Error("non-struggling help request should be conversational")
	}
}

func TestIsConversational_ShortNonStruggle(t *testing.T) {
	if !IsConversational("ok", "Let's look at diagnosis next.") {
		t.Error("'ok' should be conversational")
	}
}

func TestIsConversational_SubstantiveAnswer(t *testing.T) {
	answers := []string{
		"PID and prior tubal surgery increase risk because they damage the fallopian tube",
		"prerenal AKI from hypovolemia",
		"i don't know", // struggling, not conversational
	}
	for _, u := range answers {
		if IsConversational(u, "What are the risk factors?") {
			t.Errorf("%q should not be conversational", u)
		}
	}
}
