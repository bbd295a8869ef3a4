// Package quiz drives a study session: it pairs the weighted selector
// with the history and achievement ledgers and walks the session
// through its start, question, answer, and end states. The controller
// is not safe for concurrent use; the UI event loop is its only caller.
package quiz

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/achievements"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/history"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/pool"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/selection"
)

// Saver persists the learner's progress at session checkpoints.
type Saver interface {
	SaveHistory(*history.Store) error
	SaveAchievements(*achievements.Ledger) error
}

// Controller owns the session state machine.
type Controller struct {
	cfg      Config
	pool     *pool.Pool
	history  *history.Store
	ledger   *achievements.Ledger
	selector *selection.Selector
	saver    Saver

	// now is swappable so tests can drive the Quick Fire clock and the
	// daily challenge date.
	now func() time.Time

	warnings io.Writer

	state sessionState

	// dailyDone remembers the date whose challenge was already answered
	// correctly, so the question is served at most once per day.
	dailyDone string
}

// New wires a Controller. A nil saver disables persistence, which the
// tests use; warnings may be nil to default to stderr.
func New(cfg Config, p *pool.Pool, hist *history.Store, ledger *achievements.Ledger, sel *selection.Selector, saver Saver) *Controller {
	return &Controller{
		cfg:      cfg,
		pool:     p,
		history:  hist,
		ledger:   ledger,
		selector: sel,
		saver:    saver,
		now:      time.Now,
		warnings: os.Stderr,
	}
}

// SetClock replaces the controller's time source.
func (c *Controller) SetClock(now func() time.Time) { c.now = now }

// SetWarnings redirects non-fatal warning output.
func (c *Controller) SetWarnings(w io.Writer) { c.warnings = w }

// History exposes the backing history store for read-only display.
func (c *Controller) History() *history.Store { return c.history }

// Ledger exposes the achievement ledger for read-only display.
func (c *Controller) Ledger() *achievements.Ledger { return c.ledger }

// Pool exposes the loaded question pool.
func (c *Controller) Pool() *pool.Pool { return c.pool }

// ReplacePool swaps in a new question pool between sessions and prunes
// review entries that no longer resolve to a question.
func (c *Controller) ReplacePool(p *pool.Pool) error {
	if c.state.active {
		return ErrSessionActive
	}
	c.pool = p
	c.history.PruneReview(p.Contains)
	return nil
}

// Start begins a session. The category filter narrows selection to one
// category; empty means the whole pool. Quick Fire and review mode
// ignore the filter: Quick Fire draws from everything and starts its
// timer immediately, review draws from the incorrect-review queue.
func (c *Controller) Start(mode Mode, category string) error {
	if c.state.active {
		return ErrSessionActive
	}

	if mode == ModeQuickFire || mode == ModeReview {
		category = ""
	}
	if c.pool.Count(category) == 0 {
		return fmt.Errorf("quiz: no questions available for category %q", category)
	}

	var allowed map[int]bool
	if mode == ModeReview {
		var err error
		if allowed, err = c.reviewIndices(); err != nil {
			return err
		}
	}

	c.ledger.ResetSessionPoints()
	c.state = sessionState{
		active:   true,
		id:       uuid.NewString(),
		mode:     mode,
		category: category,
		used:     make(map[int]bool),
		allowed:  allowed,
	}

	switch {
	case mode == ModeQuickFire:
		c.state.target = c.cfg.QuickFireQuestions
		c.state.quickFireActive = true
		c.state.quickFireStart = c.now()
	case mode == ModeMiniQuiz:
		c.state.target = min(c.cfg.MiniQuizQuestions, c.pool.Count(category))
	case mode.singleQuestion():
		c.state.target = 1
	}
	return nil
}

// reviewIndices resolves the incorrect-review queue against the pool.
func (c *Controller) reviewIndices() (map[int]bool, error) {
	c.history.PruneReview(c.pool.Contains)
	allowed := make(map[int]bool)
	for i, q := range c.pool.Questions() {
		if c.history.Review[q.Key()] {
			allowed[i] = true
		}
	}
	if len(allowed) == 0 {
		return nil, fmt.Errorf("quiz: review queue is empty, nothing to retry")
	}
	return allowed, nil
}

// Active reports whether a session is running.
func (c *Controller) Active() bool { return c.state.active }

// Mode returns the running session's mode. Only meaningful while active.
func (c *Controller) Mode() Mode { return c.state.mode }

// SessionID returns the running session's identifier.
func (c *Controller) SessionID() string { return c.state.id }

// NextQuestion serves the next question, or nil when the session has
// nothing left to ask. Calling it again before the current question is
// answered or skipped returns the same view unchanged.
func (c *Controller) NextQuestion() (*QuestionView, error) {
	if !c.state.active {
		return nil, ErrNoActiveSession
	}
	if c.state.current != nil {
		return c.state.current, nil
	}

	if c.state.mode == ModeQuickFire {
		status := c.quickFireSnapshot()
		if !status.ShouldContinue {
			c.state.quickFireActive = false
			return nil, nil
		}
	}
	if c.state.target > 0 && c.state.answered+c.state.skipped >= c.state.target {
		return nil, nil
	}

	var idx int
	switch {
	case c.state.mode == ModeDailyChallenge:
		today := c.today()
		if c.dailyDone == today || c.ledger.DailyWarriorDates[today] {
			return nil, nil
		}
		idx = dailyIndex(today, c.pool.Len())
		if idx < 0 || c.state.used[idx] {
			return nil, nil
		}
	default:
		candidates := c.unusedCandidates()
		picked, ok := c.selector.Pick(candidates, func(i int) string {
			q, _ := c.pool.Question(i)
			return q.Key()
		}, c.history)
		if !ok {
			return nil, nil
		}
		idx = picked
	}

	q, ok := c.pool.Question(idx)
	if !ok {
		return nil, fmt.Errorf("quiz: pool index %d out of range", idx)
	}
	c.state.used[idx] = true

	view := &QuestionView{
		Question:  q,
		PoolIndex: idx,
		Number:    c.state.answered + c.state.skipped + 1,
		Streak:    c.state.streak,
	}
	if c.state.mode == ModeQuickFire {
		view.QuickFire = c.quickFireSnapshot()
	}
	c.state.current = view
	return view, nil
}

// SubmitAnswer grades the current question and applies every per-answer
// effect: score, streak, points, history, review queue, and badges.
func (c *Controller) SubmitAnswer(chosen int) (*AnswerResult, error) {
	if !c.state.active {
		return nil, ErrNoActiveSession
	}
	cur := c.state.current
	if cur == nil {
		return nil, ErrNoCurrentQuestion
	}
	q := cur.Question
	if chosen < 0 || chosen >= len(q.Options) {
		return nil, ErrInvalidAnswer
	}

	correct := chosen == q.CorrectIndex
	if correct {
		c.state.score++
		c.state.streak++
	} else {
		c.state.streak = 0
	}
	c.state.answered++
	c.state.questionsSinceBreak++
	c.state.current = nil

	points := c.pointsFor(correct, c.state.streak)
	c.ledger.AddPoints(points)

	at := c.now()
	today := c.today()
	c.history.RecordAnswer(q.Key(), q.Category, correct, at)
	newBadges := c.ledger.CheckAnswer(today, c.state.streak)

	result := &AnswerResult{
		Correct:         correct,
		ChosenIndex:     chosen,
		CorrectIndex:    q.CorrectIndex,
		Explanation:     q.Explanation,
		Points:          points,
		Streak:          c.state.streak,
		NewBadges:       newBadges,
		SessionScore:    c.state.score,
		SessionAnswered: c.state.answered,
	}

	if c.state.mode == ModeVerify {
		c.state.verifyAnswers = append(c.state.verifyAnswers, VerifyAnswer{
			Question:    q,
			ChosenIndex: chosen,
			Correct:     correct,
		})
	}

	if c.state.mode == ModeDailyChallenge && correct {
		c.dailyDone = today
		if c.ledger.CompleteDailyChallenge(today) {
			result.NewBadges = append(result.NewBadges, achievements.BadgeDailyWarrior)
		}
	}

	if c.state.mode == ModeQuickFire {
		c.state.quickFireAnswered++
		status := c.quickFireSnapshot()
		if c.state.quickFireAnswered >= c.state.target {
			c.state.quickFireActive = false
			if !status.TimedOut {
				result.QuickFireComplete = true
				if c.ledger.CompleteQuickFire() {
					result.NewBadges = append(result.NewBadges, achievements.BadgeQuickFireChampion)
				}
			}
		} else if status.TimedOut {
			c.state.quickFireActive = false
		}
	}

	result.SessionComplete = c.sessionComplete()
	return result, nil
}

// SkipQuestion discards the current question without grading it. In
// fixed-length modes the skip still consumes a question slot.
func (c *Controller) SkipQuestion() (*SkipResult, error) {
	if !c.state.active {
		return nil, ErrNoActiveSession
	}
	if c.state.current == nil {
		return nil, ErrNoCurrentQuestion
	}
	c.state.current = nil
	c.state.skipped++
	c.state.questionsSinceBreak++

	if c.state.mode == ModeQuickFire {
		c.state.quickFireAnswered++
		if c.state.quickFireAnswered >= c.state.target {
			c.state.quickFireActive = false
		}
	}
	return &SkipResult{SessionComplete: c.sessionComplete()}, nil
}

// EndSession finalizes the running session: perfect-session check,
// leaderboard entry, persistence, and state reset.
func (c *Controller) EndSession() (*Summary, error) {
	if !c.state.active {
		return nil, ErrNoActiveSession
	}
	return c.finish(), nil
}

// ForceEndSession ends any running session and is a no-op otherwise.
// Mode switches in the UI route through here so stale sessions cannot
// leak across screens.
func (c *Controller) ForceEndSession() *Summary {
	if !c.state.active {
		return &Summary{}
	}
	return c.finish()
}

func (c *Controller) finish() *Summary {
	st := &c.state

	summary := &Summary{
		Mode:          st.mode,
		Score:         st.score,
		Total:         st.answered,
		SessionPoints: c.ledger.SessionPoints,
	}
	if st.answered > 0 {
		summary.Accuracy = float64(st.score) / float64(st.answered) * 100
	}

	if c.ledger.CheckPerfectSession(st.score, st.answered) {
		summary.NewBadges = append(summary.NewBadges, achievements.BadgePerfectSession)
	}
	c.ledger.UpdateLeaderboard(st.id, st.score, st.answered, c.ledger.SessionPoints, c.now())
	summary.TotalPoints = c.ledger.PointsEarned

	if st.mode == ModeVerify {
		summary.Verify = c.verifyResult()
	}

	c.save()
	c.state = sessionState{}
	return summary
}

// save persists both ledgers. Failures are reported as warnings; a
// broken disk should never lose the in-memory session summary.
func (c *Controller) save() {
	if c.saver == nil {
		return
	}
	if err := c.saver.SaveHistory(c.history); err != nil {
		fmt.Fprintln(c.warnings, "warning: saving history:", err)
	}
	if err := c.saver.SaveAchievements(c.ledger); err != nil {
		fmt.Fprintln(c.warnings, "warning: saving achievements:", err)
	}
}

// Status snapshots the session for display.
func (c *Controller) Status() Status {
	return Status{
		Active:              c.state.active,
		Mode:                c.state.mode,
		Category:            c.state.category,
		Score:               c.state.score,
		Answered:            c.state.answered,
		Streak:              c.state.streak,
		SessionPoints:       c.ledger.SessionPoints,
		QuestionsSinceBreak: c.state.questionsSinceBreak,
	}
}

// QuickFireStatus reports the Quick Fire clock and slot budget, or nil
// outside Quick Fire mode. When the timer has expired it also retires
// the run internally.
func (c *Controller) QuickFireStatus() *QuickFireStatus {
	if !c.state.active || c.state.mode != ModeQuickFire {
		return nil
	}
	status := c.quickFireSnapshot()
	if status.TimedOut {
		c.state.quickFireActive = false
	}
	return status
}

func (c *Controller) quickFireSnapshot() *QuickFireStatus {
	elapsed := c.now().Sub(c.state.quickFireStart)
	remaining := c.cfg.QuickFireTimeLimit - elapsed
	if remaining < 0 {
		remaining = 0
	}
	timedOut := elapsed >= c.cfg.QuickFireTimeLimit
	return &QuickFireStatus{
		Answered:       c.state.quickFireAnswered,
		Target:         c.state.target,
		Remaining:      remaining,
		TimedOut:       timedOut,
		ShouldContinue: !timedOut && c.state.quickFireAnswered < c.state.target,
	}
}

// VerifyResults returns the verify-mode review for the running session.
func (c *Controller) VerifyResults() (*VerifyResult, error) {
	if !c.state.active {
		return nil, ErrNoActiveSession
	}
	if c.state.mode != ModeVerify {
		return nil, fmt.Errorf("quiz: session mode %s has no verify results", c.state.mode)
	}
	return c.verifyResult(), nil
}

func (c *Controller) verifyResult() *VerifyResult {
	res := &VerifyResult{
		Answers: c.state.verifyAnswers,
		Total:   len(c.state.verifyAnswers),
	}
	for _, a := range res.Answers {
		if a.Correct {
			res.Score++
		}
	}
	if res.Total > 0 {
		res.Accuracy = float64(res.Score) / float64(res.Total) * 100
	}
	return res
}

// BreakDue reports whether enough questions went by since the last
// break to suggest one.
func (c *Controller) BreakDue() bool {
	return c.cfg.BreakInterval > 0 && c.state.questionsSinceBreak >= c.cfg.BreakInterval
}

// ResetBreakCounter acknowledges a break reminder.
func (c *Controller) ResetBreakCounter() {
	c.state.questionsSinceBreak = 0
}

// sessionComplete reports whether the running session has met its
// question budget. Open-ended modes never complete from an answer or
// skip; their only completion signal is NextQuestion returning nil.
func (c *Controller) sessionComplete() bool {
	if !c.state.active {
		return true
	}
	if c.state.mode == ModeQuickFire {
		return !c.state.quickFireActive
	}
	if c.state.target > 0 {
		return c.state.answered+c.state.skipped >= c.state.target
	}
	return false
}

func (c *Controller) unusedCandidates() []int {
	all := c.pool.Indices(c.state.category)
	out := make([]int, 0, len(all))
	for _, i := range all {
		if c.state.used[i] {
			continue
		}
		if c.state.allowed != nil && !c.state.allowed[i] {
			continue
		}
		out = append(out, i)
	}
	return out
}

// pointsFor computes the delta for one answer. The streak passed in is
// the streak after the answer was applied.
func (c *Controller) pointsFor(correct bool, streak int) int {
	if !correct {
		return c.cfg.PointsPerIncorrect
	}
	if streak >= c.cfg.StreakBonusThreshold {
		return int(float64(c.cfg.PointsPerCorrect) * c.cfg.StreakBonusMultiplier)
	}
	return c.cfg.PointsPerCorrect
}

func (c *Controller) today() string {
	return c.now().Format("2006-01-02")
}
