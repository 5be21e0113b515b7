package interaction

import "strings"

// phraseBank holds the templated suggested responses per interaction type.
// "{topic}" is replaced with the session topic. Selection is random via the
// classifier's injected source so tests can pin the choice with a seed.
var phraseBank = map[Type][]string{
	TypeEmotionalSupport: {
		"That feeling is completely normal — {topic} trips up almost everyone at first. Let's slow down and take it one piece at a time.",
		"It's okay to feel stuck. You've already worked through harder things than {topic}. Want to take a smaller step together?",
		"Take a breath — struggling here doesn't mean anything about your ability. {topic} is genuinely hard material.",
	},
	TypeGiveUp: {
		"I hear you — this is a lot. How about one last, much smaller question on {topic}, and then we wrap up?",
		"We can absolutely pause. Before we do, let me show you how far you've already come with {topic}.",
		"Fair enough, this has been a grind. Let's simplify: one core idea about {topic}, nothing more.",
	},
	TypePersonalCasual: {
		"Happy to chat! I'm your tutor for {topic} today — shall we get back to it?",
		"Ha, good question — but I'm more interesting when I'm quizzing you on {topic}. Ready to continue?",
	},
	TypeMedicalAdvice: {
		"I can't give personal medical advice — for anything affecting you or someone you know, please talk to a clinician. For our session, let's stick to {topic} as study material.",
		"That sounds like a real-care question, which I'm not able to advise on. A healthcare professional is the right call. Meanwhile, want to keep working through {topic}?",
	},
	TypeChallengeAuthority: {
		"Good instinct to push back — checking sources is exactly what a clinician should do. Let's compare reasoning on this point of {topic}.",
		"You might be right! Walk me through what your source says about {topic} and we'll reason through the difference.",
	},
	TypeMetaLearning: {
		"Great question about studying itself. For {topic}, active recall beats rereading — which is exactly what we're doing here.",
		"You're making real progress — the fact that the questions feel harder means we're at the edge of what you know about {topic}. That's where learning happens.",
	},
	TypeTechnicalIssue: {
		"Sorry about that — let me repeat the last question on {topic}.",
		"Thanks for flagging it. Here's where we were with {topic}.",
	},
	TypeOffTopic: {
		"Interesting — but let's park that for now and stay focused on {topic}. We can circle back after the session.",
		"That's a bit outside today's scope. Back to {topic}: where were we?",
	},
}

// suggestedResponse picks a phrase for the type and fills in the topic.
// pick is an index supplier, typically rng.IntN.
func suggestedResponse(kind Type, topic string, pick func(n int) int) string {
	bank := phraseBank[kind]
	if len(bank) == 0 {
		return ""
	}
	phrase := bank[pick(len(bank))]
	return strings.ReplaceAll(phrase, "{topic}", topic)
}
