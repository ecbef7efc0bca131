package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/memora-labs/memora/internal/engine"
)

// submissionFile is the on-disk shape accepted by `memora submit`.
type submissionFile struct {
	LearnerID   string    `json:"learner_id"`
	DocumentID  string    `json:"document_id"`
	CompletedAt time.Time `json:"completed_at"`
	Answers     []struct {
		ItemID        string  `json:"item_id"`
		Correct       bool    `json:"correct"`
		TimeTakenSecs float64 `json:"time_taken_secs"`
	} `json:"answers"`
}

var submitCmd = &cobra.Command{
	Use:   "submit <session.json>",
	Short: "Process a completed quiz session",
	Long:  "Records the session's attempts, recomputes mastery, updates the review schedule and evaluates the regeneration trigger. Prints the result as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read session: %w", err)
		}
		var sf submissionFile
		if err := json.Unmarshal(raw, &sf); err != nil {
			return fmt.Errorf("parse session %s: %w", args[0], err)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eng := engine.New(st, nil, newLogger(), cfg)
		defer eng.Close()

		sub := engine.Submission{
			LearnerID:   sf.LearnerID,
			DocumentID:  sf.DocumentID,
			CompletedAt: sf.CompletedAt,
		}
		for _, a := range sf.Answers {
			sub.Answers = append(sub.Answers, engine.Answer{
				ItemID:        a.ItemID,
				Correct:       a.Correct,
				TimeTakenSecs: a.TimeTakenSecs,
			})
		}

		res, err := eng.ProcessSubmission(cmd.Context(), sub)
		if err != nil {
			return err
		}

		out := map[string]any{
			"session_id":         res.SessionID,
			"questions_answered": res.QuestionsAnswered,
			"correct_count":      res.CorrectCount,
			"session_score":      res.SessionScore,
			"item_scores":        res.ItemScores,
			"document_mastery":   res.DocumentScore,
			"interval_days":      res.Schedule.IntervalDays,
			"next_review_date":   res.Schedule.NextReviewDate,
			"session_count":      res.Regeneration.SessionCount,
			"regeneration_due":   res.Regeneration.Due,
		}
		if res.Regeneration.Due {
			out["weak_topics"] = res.Regeneration.WeakTopics
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}
