package session

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oslerai/preceptor/internal/assess"
	"github.com/oslerai/preceptor/internal/gaps"
	"github.com/oslerai/preceptor/internal/interaction"
	"github.com/oslerai/preceptor/internal/llm"
	"github.com/oslerai/preceptor/internal/triage"
)

// ErrSessionComplete is returned when a turn arrives after every subtopic
// has been triaged.
var ErrSessionComplete = errors.New("session: all subtopics complete")

// recentLineWindow is how many learner lines feed the gap prioritizer's
// confusion scoring.
const recentLineWindow = 6

// Engine drives one learner utterance through the full decision path.
// Construction wires the model-backed components; a nil provider yields a
// fully deterministic engine running on the heuristic fallbacks.
type Engine struct {
	classifier   *interaction.Classifier
	grader       *assess.Grader
	scorer       *assess.Scorer
	orchestrator *triage.Orchestrator
	transitions  *Transitioner
	log          *zap.Logger
}

// NewEngine builds an engine on the given provider.
func NewEngine(provider llm.Provider, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		classifier:   interaction.NewClassifier(nil),
		grader:       assess.NewGrader(provider, assess.DefaultConfig()),
		scorer:       assess.NewScorer(provider, assess.DefaultConfig()),
		orchestrator: triage.NewOrchestrator(gaps.NewAnalyzer(provider, gaps.DefaultConfig())),
		transitions:  NewTransitioner(nil),
		log:          log,
	}
}

// TurnResult is everything the rendering layer needs to answer one turn.
type TurnResult struct {
	Classification interaction.Classification

	// Assessed is false for conversational and non-learning turns, which
	// never touch grading or the question budget.
	Assessed  bool
	Grade     assess.Grade
	Reasoning assess.ReasoningScore

	Phase      triage.Phase
	NextAction triage.NextAction

	// SurfacedGaps is the prioritized, bounded list of open gaps after
	// this turn, for the tutor's next probe or acknowledgment.
	SurfacedGaps []gaps.Gap

	// Transition is set when this turn completed the subtopic.
	Transition *Transition
}

// ProcessTurn applies one learner utterance to the session. Session state
// changes only through the merged delta and the transcript append, so a
// failed turn leaves the triaging state untouched.
func (e *Engine) ProcessTurn(ctx context.Context, s *Session, utterance string) (*TurnResult, error) {
	if s.Complete() {
		return nil, ErrSessionComplete
	}
	sub := s.Current()
	lastTutor := s.LastTutorLine()
	s.Append(RoleLearner, utterance)

	res := &TurnResult{
		Classification: e.classifier.Classify(utterance, lastTutor, s.Topic),
		NextAction:     triage.ActionContinueConversation,
	}
	if !res.Classification.RequiresAssessment {
		e.log.Debug("non-learning interaction",
			zap.String("session", s.ID),
			zap.String("type", string(res.Classification.Type)))
		return res, nil
	}
	if interaction.IsConversational(utterance, lastTutor) {
		res.Classification.RequiresAssessment = false
		return res, nil
	}

	res.Assessed = true
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res.Grade = e.grader.Grade(gctx, assess.GradeInput{
			Answer:   utterance,
			Question: lastTutor,
			Topic:    s.Topic,
			Subtopic: sub.Title,
		})
		return nil
	})
	g.Go(func() error {
		res.Reasoning = e.scorer.Score(gctx, lastTutor, utterance)
		return nil
	})
	// Both legs resolve failures internally through their fallbacks.
	_ = g.Wait()

	outcome := e.orchestrator.Evaluate(ctx, triage.Input{
		Topic:        s.Topic,
		Subtopic:     sub.Title,
		Answer:       utterance,
		Quality:      res.Grade.Quality,
		Status:       sub.Triage,
		Requirements: triage.RequirementsFor(sub.Title),
	})
	sub.Triage = triage.Merge(sub.Triage, outcome.Delta)
	if res.Grade.Quality == assess.QualityExcellent || res.Grade.Quality == assess.QualityGood {
		sub.CorrectAnswers++
	}

	res.Phase = outcome.Phase
	res.NextAction = outcome.NextAction
	res.SurfacedGaps = e.surfaceGaps(s, sub)

	e.log.Info("turn evaluated",
		zap.String("session", s.ID),
		zap.String("subtopic", sub.Title),
		zap.String("quality", string(res.Grade.Quality)),
		zap.String("gradeSource", string(res.Grade.Source)),
		zap.String("phase", string(outcome.Phase)),
		zap.Int("questionsUsed", sub.Triage.QuestionsUsed),
		zap.Int("correctAnswers", sub.CorrectAnswers))

	if outcome.NextAction == triage.ActionCompleteSubtopic {
		tr := e.transitions.CompleteCurrent(s, outcome.Reason)
		res.Transition = &tr
		e.log.Info("subtopic complete",
			zap.String("session", s.ID),
			zap.String("subtopic", tr.CompletedTitle),
			zap.String("reason", string(outcome.Reason)),
			zap.String("status", string(tr.Status)),
			zap.Bool("sessionDone", tr.SessionDone))
	}
	return res, nil
}

// surfaceGaps prioritizes the open gaps of the current subtopic.
func (e *Engine) surfaceGaps(s *Session, sub *Subtopic) []gaps.Gap {
	if sub.Triage.Analysis == nil {
		return nil
	}
	var open []gaps.Gap
	for _, g := range sub.Triage.Analysis.AllGaps() {
		if addressed(sub.Triage.AddressedGaps, g.Description) {
			continue
		}
		open = append(open, g)
	}
	return gaps.Prioritize(open, gaps.SessionContext{
		RecentLearnerUtterances: s.RecentLearnerLines(recentLineWindow),
	})
}

// ApplyTurn runs one turn through a heuristic-only engine. Used for
// offline transcript replay.
func ApplyTurn(ctx context.Context, s *Session, utterance string) (*TurnResult, error) {
	return NewEngine(nil, nil).ProcessTurn(ctx, s, utterance)
}
