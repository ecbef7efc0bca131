package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery and schedule state for a learner and document",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")
		documentID, _ := cmd.Flags().GetString("document")
		if learnerID == "" || documentID == "" {
			return fmt.Errorf("--learner and --document are required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		r := st.Repos()

		itemScores, err := r.Mastery.ItemScores(ctx, documentID, learnerID)
		if err != nil {
			return err
		}
		docScore, _, err := r.Mastery.DocumentScore(ctx, documentID, learnerID)
		if err != nil {
			return err
		}
		sessions, err := r.Counters.Get(ctx, documentID, learnerID)
		if err != nil {
			return err
		}

		out := map[string]any{
			"learner_id":       learnerID,
			"document_id":      documentID,
			"document_mastery": docScore,
			"item_scores":      itemScores,
			"sessions":         sessions,
		}

		sched, err := r.Schedules.Get(ctx, documentID, learnerID)
		if err != nil {
			return err
		}
		if sched != nil {
			out["interval_days"] = sched.IntervalDays
			out["next_review_date"] = sched.NextReviewDate
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	statsCmd.Flags().String("learner", "", "Learner to report on")
	statsCmd.Flags().String("document", "", "Document to report on")
}
