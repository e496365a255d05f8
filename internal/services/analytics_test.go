package services

import "testing"

func TestPlatformStats(t *testing.T) {
	db := newTestDB(t)
	analytics := NewAnalyticsService(db)
	sessions := NewSessionService(db)
	attempts := NewAttemptService(db)
	users := NewUserService(db)

	if _, err := users.Register(RegisterUserParams{Phone: "+111"}); err != nil {
		t.Fatalf("register user: %v", err)
	}

	q := seedQuestion(t, db, "MTH", "Algebra", "A", 2, true)
	seedQuestion(t, db, "PHY", "Mechanics", "B", 3, false)

	desc, err := sessions.Create(CreateSessionParams{SubjectCode: "MTH", QuestionCount: 1})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := attempts.Submit(SubmitAnswerParams{
		SessionID: desc.SessionID, QuestionID: q.ID, ChosenOption: "A",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := sessions.Complete(desc.SessionID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	stats, err := analytics.PlatformStats()
	if err != nil {
		t.Fatalf("platform stats: %v", err)
	}
	if stats.Users.TotalUsers != 1 {
		t.Errorf("expected 1 user, got %d", stats.Users.TotalUsers)
	}
	if stats.Questions.TotalQuestions != 2 || stats.Questions.VerifiedQuestions != 1 {
		t.Errorf("unexpected question stats: %+v", stats.Questions)
	}
	if stats.Questions.TotalSubjects != 2 {
		t.Errorf("expected 2 subjects, got %d", stats.Questions.TotalSubjects)
	}
	if stats.Sessions.TotalSessions != 1 || stats.Sessions.CompletedSessions != 1 {
		t.Errorf("unexpected session stats: %+v", stats.Sessions)
	}
	if stats.Sessions.AvgScore != 1 {
		t.Errorf("expected avg score 1, got %v", stats.Sessions.AvgScore)
	}
}

func TestSubjectPerformanceStats(t *testing.T) {
	db := newTestDB(t)
	analytics := NewAnalyticsService(db)
	sessions := NewSessionService(db)
	attempts := NewAttemptService(db)

	mth := seedQuestion(t, db, "MTH", "Algebra", "A", 2, true)
	seedQuestion(t, db, "PHY", "Mechanics", "B", 3, true)

	completed, err := sessions.Create(CreateSessionParams{SubjectCode: "MTH", QuestionCount: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := attempts.Submit(SubmitAnswerParams{
		SessionID: completed.SessionID, QuestionID: mth.ID, ChosenOption: "A",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := sessions.Complete(completed.SessionID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// A PHY session left active.
	if _, err := sessions.Create(CreateSessionParams{SubjectCode: "PHY", QuestionCount: 1}); err != nil {
		t.Fatalf("create phy: %v", err)
	}

	rows, err := analytics.SubjectPerformanceStats(30)
	if err != nil {
		t.Fatalf("subject performance: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 subject rows, got %d", len(rows))
	}
	if rows[0].SubjectCode != "MTH" {
		t.Errorf("expected MTH ordered first by completions, got %q", rows[0].SubjectCode)
	}
	if rows[0].CompletedSessions != 1 || rows[0].AvgPercentage != 100 {
		t.Errorf("unexpected MTH row: %+v", rows[0])
	}
	if rows[1].CompletedSessions != 0 {
		t.Errorf("expected 0 completed PHY sessions, got %d", rows[1].CompletedSessions)
	}
}

func TestDifficultyStats(t *testing.T) {
	db := newTestDB(t)
	analytics := NewAnalyticsService(db)
	attempts := NewAttemptService(db)

	easy := seedQuestion(t, db, "MTH", "Algebra", "A", 1, true)
	hard := seedQuestion(t, db, "MTH", "Calculus", "B", 5, true)

	for _, option := range []string{"A", "A", "B"} { // 2 correct, 1 wrong
		if _, err := attempts.Submit(SubmitAnswerParams{
			SessionID: "s", QuestionID: easy.ID, ChosenOption: option, TimeSpentMs: 1000,
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if _, err := attempts.Submit(SubmitAnswerParams{
		SessionID: "s", QuestionID: hard.ID, ChosenOption: "C", TimeSpentMs: 4000,
	}); err != nil {
		t.Fatalf("submit hard: %v", err)
	}

	stats, err := analytics.DifficultyStats("MTH")
	if err != nil {
		t.Fatalf("difficulty stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 difficulty rows, got %d", len(stats))
	}
	if stats[0].Difficulty != 1 || stats[0].TotalAttempts != 3 || stats[0].CorrectAttempts != 2 {
		t.Errorf("unexpected difficulty-1 row: %+v", stats[0])
	}
	if stats[0].Accuracy != 66.67 {
		t.Errorf("expected accuracy 66.67, got %v", stats[0].Accuracy)
	}
	if stats[1].Difficulty != 5 || stats[1].Accuracy != 0 {
		t.Errorf("unexpected difficulty-5 row: %+v", stats[1])
	}
	if stats[1].AvgTimeMs != 4000 {
		t.Errorf("expected avg time 4000, got %d", stats[1].AvgTimeMs)
	}
}
