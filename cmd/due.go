package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/memora-labs/memora/internal/reminder"
)

// printNotifier writes due reviews to stdout, one line per pair.
type printNotifier struct{}

func (printNotifier) NotifyDue(_ context.Context, reviews []reminder.DueReview) error {
	for _, r := range reviews {
		fmt.Printf("%s\t%s\tdue since %s\tinterval %dd\n",
			r.DocumentID, r.LearnerID,
			r.NextReviewDate.Format(time.RFC3339), r.IntervalDays)
	}
	return nil
}

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List review pairs whose next review date has passed",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := reminder.New(st.Repos().Schedules, printNotifier{}, newLogger())

		watch, _ := cmd.Flags().GetDuration("watch")
		if watch <= 0 {
			return svc.RunOnce(cmd.Context())
		}

		if err := svc.Start(watch); err != nil {
			return err
		}
		defer svc.Stop()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		<-ctx.Done()
		return nil
	},
}

func init() {
	dueCmd.Flags().Duration("watch", 0, "Keep scanning at this interval until interrupted (e.g. 1h)")
}
