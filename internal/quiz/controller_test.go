package quiz

import (
	"fmt"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/achievements"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/history"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/pool"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/selection"
)

func testQuestions(n int) []pool.Question {
	qs := make([]pool.Question, n)
	for i := range qs {
		qs[i] = pool.Question{
			Text:         fmt.Sprintf("Question %d?", i),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
			Category:     "Commands",
		}
	}
	return qs
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestController(t *testing.T, n int) (*Controller, *fakeClock) {
	t.Helper()
	p := pool.New(testQuestions(n), io.Discard)
	clock := &fakeClock{t: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)}
	c := New(DefaultConfig(), p, history.NewStore(), achievements.NewLedger(), selection.New(rand.New(rand.NewSource(1))), nil)
	c.SetClock(clock.now)
	c.SetWarnings(io.Discard)
	return c, clock
}

func mustNext(t *testing.T, c *Controller) *QuestionView {
	t.Helper()
	view, err := c.NextQuestion()
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if view == nil {
		t.Fatal("NextQuestion returned nil, want a question")
	}
	return view
}

func mustSubmit(t *testing.T, c *Controller, chosen int) *AnswerResult {
	t.Helper()
	res, err := c.SubmitAnswer(chosen)
	if err != nil {
		t.Fatalf("SubmitAnswer(%d): %v", chosen, err)
	}
	return res
}

func TestStandardSessionFlow(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}

	mustNext(t, c)
	res := mustSubmit(t, c, 0)
	if !res.Correct || res.Points != 10 || res.Streak != 1 {
		t.Fatalf("correct answer: got %+v", res)
	}

	mustNext(t, c)
	res = mustSubmit(t, c, 1)
	if res.Correct || res.Points != -2 || res.Streak != 0 {
		t.Fatalf("incorrect answer: got %+v", res)
	}

	sessionID := c.SessionID()
	summary, err := c.EndSession()
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if summary.Score != 1 || summary.Total != 2 {
		t.Fatalf("summary = %d/%d, want 1/2", summary.Score, summary.Total)
	}
	if summary.Accuracy != 50 {
		t.Fatalf("Accuracy = %v, want 50", summary.Accuracy)
	}
	if summary.SessionPoints != 8 {
		t.Fatalf("SessionPoints = %d, want 8", summary.SessionPoints)
	}
	if summary.TotalPoints != 10 {
		t.Fatalf("TotalPoints = %d, want 10 (penalty must not shrink lifetime)", summary.TotalPoints)
	}
	if got := len(c.Ledger().Leaderboard); got != 1 {
		t.Fatalf("leaderboard entries = %d, want 1", got)
	}
	if got := c.Ledger().Leaderboard[0].SessionID; got == "" || got != sessionID {
		t.Fatalf("leaderboard session id = %q, want %q", got, sessionID)
	}
	if c.Active() {
		t.Fatal("session should be inactive after EndSession")
	}
}

func TestStreakBonusAtThreshold(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}

	wantPoints := []int{10, 10, 10, 10, 15, 15}
	for i, want := range wantPoints {
		mustNext(t, c)
		res := mustSubmit(t, c, 0)
		if res.Points != want {
			t.Fatalf("answer %d: points = %d, want %d (streak %d)", i+1, res.Points, want, res.Streak)
		}
	}
}

func TestStreakResetsOnMiss(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 4; i++ {
		mustNext(t, c)
		mustSubmit(t, c, 0)
	}
	mustNext(t, c)
	if res := mustSubmit(t, c, 2); res.Streak != 0 {
		t.Fatalf("streak after miss = %d, want 0", res.Streak)
	}
	mustNext(t, c)
	if res := mustSubmit(t, c, 0); res.Points != 10 {
		t.Fatalf("points after streak reset = %d, want 10", res.Points)
	}
}

func TestNextQuestionIdempotentUntilAnswered(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	first := mustNext(t, c)
	second := mustNext(t, c)
	if first != second {
		t.Fatal("repeated NextQuestion should return the same pending question")
	}
	mustSubmit(t, c, 0)
	third := mustNext(t, c)
	if third == first {
		t.Fatal("a new question should be served after the answer")
	}
}

func TestNoRepeatsWithinSession(t *testing.T) {
	c, _ := newTestController(t, 5)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		view := mustNext(t, c)
		if seen[view.PoolIndex] {
			t.Fatalf("question %d served twice", view.PoolIndex)
		}
		seen[view.PoolIndex] = true
		mustSubmit(t, c, 0)
	}
	view, err := c.NextQuestion()
	if err != nil {
		t.Fatalf("NextQuestion after exhaustion: %v", err)
	}
	if view != nil {
		t.Fatal("exhausted pool should yield nil")
	}
}

func TestOpenEndedSubmitNeverCompletes(t *testing.T) {
	for _, mode := range []Mode{ModeStandard, ModeVerify} {
		t.Run(mode.String(), func(t *testing.T) {
			c, _ := newTestController(t, 2)
			if err := c.Start(mode, ""); err != nil {
				t.Fatalf("Start: %v", err)
			}
			for i := 0; i < 2; i++ {
				mustNext(t, c)
				if res := mustSubmit(t, c, 0); res.SessionComplete {
					t.Fatalf("answer %d reported SessionComplete; open-ended modes end only via NextQuestion", i+1)
				}
			}
			view, err := c.NextQuestion()
			if err != nil {
				t.Fatalf("NextQuestion after exhaustion: %v", err)
			}
			if view != nil {
				t.Fatal("exhausted pool should yield nil")
			}
		})
	}
}

func TestStartWhileActive(t *testing.T) {
	c, _ := newTestController(t, 5)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.Start(ModeQuickFire, ""); err != ErrSessionActive {
		t.Fatalf("second Start error = %v, want ErrSessionActive", err)
	}
}

func TestOperationsWithoutSession(t *testing.T) {
	c, _ := newTestController(t, 5)
	if _, err := c.NextQuestion(); err != ErrNoActiveSession {
		t.Fatalf("NextQuestion error = %v, want ErrNoActiveSession", err)
	}
	if _, err := c.SubmitAnswer(0); err != ErrNoActiveSession {
		t.Fatalf("SubmitAnswer error = %v, want ErrNoActiveSession", err)
	}
	if _, err := c.EndSession(); err != ErrNoActiveSession {
		t.Fatalf("EndSession error = %v, want ErrNoActiveSession", err)
	}
	summary := c.ForceEndSession()
	if summary == nil || summary.Total != 0 {
		t.Fatalf("ForceEndSession on idle controller = %+v, want empty summary", summary)
	}
}

func TestSubmitWithoutCurrentQuestion(t *testing.T) {
	c, _ := newTestController(t, 5)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := c.SubmitAnswer(0); err != ErrNoCurrentQuestion {
		t.Fatalf("error = %v, want ErrNoCurrentQuestion", err)
	}
	mustNext(t, c)
	if _, err := c.SubmitAnswer(9); err != ErrInvalidAnswer {
		t.Fatalf("error = %v, want ErrInvalidAnswer", err)
	}
}

func TestQuickFireCompletion(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeQuickFire, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var last *AnswerResult
	for i := 0; i < 5; i++ {
		view := mustNext(t, c)
		if view.QuickFire == nil {
			t.Fatal("quick fire view should carry a status")
		}
		last = mustSubmit(t, c, 0)
	}
	if !last.QuickFireComplete {
		t.Fatal("fifth answer should complete the quick fire run")
	}
	if !last.SessionComplete {
		t.Fatal("quick fire session should be complete")
	}
	if !contains(last.NewBadges, achievements.BadgeQuickFireChampion) {
		t.Fatalf("badges = %v, want quick_fire_champion", last.NewBadges)
	}
	if view, _ := c.NextQuestion(); view != nil {
		t.Fatal("no further questions after quick fire completes")
	}
}

func TestQuickFireTimeout(t *testing.T) {
	c, clock := newTestController(t, 10)
	if err := c.Start(ModeQuickFire, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	mustNext(t, c)
	mustSubmit(t, c, 0)

	clock.advance(4 * time.Minute)

	status := c.QuickFireStatus()
	if status == nil || !status.TimedOut || status.ShouldContinue {
		t.Fatalf("status = %+v, want timed out", status)
	}
	if status.Remaining != 0 {
		t.Fatalf("Remaining = %v, want 0", status.Remaining)
	}
	if view, _ := c.NextQuestion(); view != nil {
		t.Fatal("no questions after the timer expires")
	}
	if c.Ledger().Has(achievements.BadgeQuickFireChampion) {
		t.Fatal("timeout must not award quick_fire_champion")
	}
}

func TestQuickFireSkipConsumesSlot(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeQuickFire, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 4; i++ {
		mustNext(t, c)
		mustSubmit(t, c, 0)
	}
	mustNext(t, c)
	skip, err := c.SkipQuestion()
	if err != nil {
		t.Fatalf("SkipQuestion: %v", err)
	}
	if !skip.SessionComplete {
		t.Fatal("skipping the last slot should complete the run")
	}
	if c.Ledger().Has(achievements.BadgeQuickFireChampion) {
		t.Fatal("a skipped-out run must not award quick_fire_champion")
	}
}

func TestSkipDoesNotTouchScoring(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	mustNext(t, c)
	if _, err := c.SkipQuestion(); err != nil {
		t.Fatalf("SkipQuestion: %v", err)
	}
	status := c.Status()
	if status.Score != 0 || status.Answered != 0 || status.Streak != 0 {
		t.Fatalf("skip changed scoring: %+v", status)
	}
	if c.History().TotalAnswered() != 0 {
		t.Fatal("skip must not record history")
	}
}

func TestMiniQuizLength(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeMiniQuiz, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 3; i++ {
		mustNext(t, c)
		res := mustSubmit(t, c, 0)
		if want := i == 2; res.SessionComplete != want {
			t.Fatalf("answer %d: SessionComplete = %v, want %v", i+1, res.SessionComplete, want)
		}
	}
	if view, _ := c.NextQuestion(); view != nil {
		t.Fatal("mini quiz should stop at three questions")
	}
}

func TestDailyChallengeDeterministicAndOncePerDay(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeDailyChallenge, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	view := mustNext(t, c)
	if want := dailyIndex("2026-08-28", 10); view.PoolIndex != want {
		t.Fatalf("daily index = %d, want %d", view.PoolIndex, want)
	}
	res := mustSubmit(t, c, 0)
	if !res.SessionComplete {
		t.Fatal("daily challenge is a single question")
	}
	if !contains(res.NewBadges, achievements.BadgeDailyWarrior) {
		t.Fatalf("badges = %v, want daily_warrior", res.NewBadges)
	}
	if _, err := c.EndSession(); err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	// Same day again: the challenge is spent.
	if err := c.Start(ModeDailyChallenge, ""); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if view, _ := c.NextQuestion(); view != nil {
		t.Fatal("daily challenge should not repeat within a day")
	}
}

func TestDailyChallengeNewDayNewQuestion(t *testing.T) {
	c, clock := newTestController(t, 10)
	if err := c.Start(ModeDailyChallenge, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	mustNext(t, c)
	mustSubmit(t, c, 0)
	c.ForceEndSession()

	clock.advance(24 * time.Hour)
	if err := c.Start(ModeDailyChallenge, ""); err != nil {
		t.Fatalf("Start next day: %v", err)
	}
	view := mustNext(t, c)
	if want := dailyIndex("2026-08-29", 10); view.PoolIndex != want {
		t.Fatalf("next-day index = %d, want %d", view.PoolIndex, want)
	}
}

func TestDailyChallengeIncorrectNoBadge(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeDailyChallenge, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	mustNext(t, c)
	res := mustSubmit(t, c, 1)
	if contains(res.NewBadges, achievements.BadgeDailyWarrior) {
		t.Fatal("incorrect daily answer must not award daily_warrior")
	}
}

func TestVerifyModeReview(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeVerify, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	mustNext(t, c)
	mustSubmit(t, c, 0)
	mustNext(t, c)
	mustSubmit(t, c, 3)

	res, err := c.VerifyResults()
	if err != nil {
		t.Fatalf("VerifyResults: %v", err)
	}
	if res.Score != 1 || res.Total != 2 || res.Accuracy != 50 {
		t.Fatalf("verify result = %+v", res)
	}
	if len(res.Answers) != 2 || res.Answers[0].ChosenIndex != 0 || res.Answers[1].Correct {
		t.Fatalf("recorded answers = %+v", res.Answers)
	}

	summary, err := c.EndSession()
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if summary.Verify == nil || summary.Verify.Total != 2 {
		t.Fatalf("summary should carry the verify review, got %+v", summary.Verify)
	}
}

func TestVerifyResultsWrongMode(t *testing.T) {
	c, _ := newTestController(t, 10)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := c.VerifyResults(); err == nil {
		t.Fatal("VerifyResults outside verify mode should error")
	}
}

func TestCategoryFilter(t *testing.T) {
	qs := testQuestions(4)
	qs[2].Category = "Security"
	qs[3].Category = "Security"
	p := pool.New(qs, io.Discard)
	c := New(DefaultConfig(), p, history.NewStore(), achievements.NewLedger(), selection.New(rand.New(rand.NewSource(1))), nil)
	c.SetClock((&fakeClock{t: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)}).now)

	if err := c.Start(ModeStandard, "Security"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 2; i++ {
		view := mustNext(t, c)
		if view.Question.Category != "Security" {
			t.Fatalf("question %d category = %q", view.PoolIndex, view.Question.Category)
		}
		mustSubmit(t, c, 0)
	}
	if view, _ := c.NextQuestion(); view != nil {
		t.Fatal("filtered pool should be exhausted after two questions")
	}
}

func TestStartUnknownCategory(t *testing.T) {
	c, _ := newTestController(t, 4)
	if err := c.Start(ModeStandard, "No Such Category"); err == nil {
		t.Fatal("Start with an empty category should error")
	}
	if c.Active() {
		t.Fatal("failed start must not leave a session active")
	}
}

func TestIncorrectAnswerEntersReviewQueue(t *testing.T) {
	c, _ := newTestController(t, 4)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	view := mustNext(t, c)
	mustSubmit(t, c, 1)
	keys := c.History().ReviewKeys()
	if len(keys) != 1 || keys[0] != view.Question.Key() {
		t.Fatalf("review keys = %v, want [%s]", keys, view.Question.Key())
	}
}

func TestReviewModeServesOnlyMissedQuestions(t *testing.T) {
	c, _ := newTestController(t, 4)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	missed := make(map[string]bool)
	for i := 0; i < 4; i++ {
		view := mustNext(t, c)
		if i < 2 {
			mustSubmit(t, c, 1)
			missed[view.Question.Key()] = true
		} else {
			mustSubmit(t, c, 0)
		}
	}
	c.ForceEndSession()

	if err := c.Start(ModeReview, ""); err != nil {
		t.Fatalf("Start review: %v", err)
	}
	for i := 0; i < 2; i++ {
		view := mustNext(t, c)
		if !missed[view.Question.Key()] {
			t.Fatalf("review served %q, which was never missed", view.Question.Key())
		}
		mustSubmit(t, c, 0)
	}
	if view, _ := c.NextQuestion(); view != nil {
		t.Fatal("review session should exhaust after the missed questions")
	}
	c.ForceEndSession()

	// Correct retries emptied the queue.
	if err := c.Start(ModeReview, ""); err == nil {
		t.Fatal("review with an empty queue should refuse to start")
	}
	if c.Active() {
		t.Fatal("failed review start must not leave a session active")
	}
}

func TestReviewModeEmptyQueue(t *testing.T) {
	c, _ := newTestController(t, 4)
	if err := c.Start(ModeReview, ""); err == nil {
		t.Fatal("review with no history should refuse to start")
	}
}

func TestPerfectSessionOnEnd(t *testing.T) {
	c, _ := newTestController(t, 5)
	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 3; i++ {
		mustNext(t, c)
		mustSubmit(t, c, 0)
	}
	summary, err := c.EndSession()
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if !contains(summary.NewBadges, achievements.BadgePerfectSession) {
		t.Fatalf("badges = %v, want perfect_session", summary.NewBadges)
	}
}

func TestBreakReminder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BreakInterval = 2
	p := pool.New(testQuestions(5), io.Discard)
	c := New(cfg, p, history.NewStore(), achievements.NewLedger(), selection.New(rand.New(rand.NewSource(1))), nil)
	c.SetClock((&fakeClock{t: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)}).now)

	if err := c.Start(ModeStandard, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	mustNext(t, c)
	mustSubmit(t, c, 0)
	if c.BreakDue() {
		t.Fatal("break should not be due after one question")
	}
	mustNext(t, c)
	mustSubmit(t, c, 0)
	if !c.BreakDue() {
		t.Fatal("break should be due after two questions")
	}
	c.ResetBreakCounter()
	if c.BreakDue() {
		t.Fatal("reset should clear the reminder")
	}
}

func TestDailyIndexVectors(t *testing.T) {
	tests := []struct {
		date string
		size int
		want int
	}{
		{"2026-08-28", 10, 1},
		{"2026-08-29", 10, 2},
		{"2023-01-15", 10, 7},
		{"2023-01-15", 7, 4},
		{"2026-08-28", 0, -1},
	}
	for _, tt := range tests {
		if got := dailyIndex(tt.date, tt.size); got != tt.want {
			t.Errorf("dailyIndex(%q, %d) = %d, want %d", tt.date, tt.size, got, tt.want)
		}
	}
}

func TestParseModeRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeStandard, ModeVerify, ModeQuickFire, ModeMiniQuiz, ModeDailyChallenge, ModePopQuiz, ModeReview} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseMode("speedrun"); err == nil {
		t.Fatal("unknown mode name should error")
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
