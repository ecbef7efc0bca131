package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/memora-labs/memora/internal/store"
)

// itemFile is the on-disk shape accepted by `memora items load`.
type itemFile struct {
	Items []struct {
		ItemID     string   `json:"item_id"`
		DocumentID string   `json:"document_id"`
		LearnerID  string   `json:"learner_id"`
		Keywords   []string `json:"keywords"`
	} `json:"items"`
}

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage the quiz item catalog",
}

var itemsLoadCmd = &cobra.Command{
	Use:   "load <items.json>",
	Short: "Load or update quiz items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read items: %w", err)
		}
		var f itemFile
		if err := json.Unmarshal(raw, &f); err != nil {
			return fmt.Errorf("parse items %s: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		for _, it := range f.Items {
			err := st.Repos().Catalog.Put(ctx, store.Item{
				ItemID:     it.ItemID,
				DocumentID: it.DocumentID,
				LearnerID:  it.LearnerID,
				Keywords:   it.Keywords,
			})
			if err != nil {
				return fmt.Errorf("put item %s: %w", it.ItemID, err)
			}
		}

		fmt.Printf("loaded %d items\n", len(f.Items))
		return nil
	},
}

var itemsRetireCmd = &cobra.Command{
	Use:   "retire <item-id>",
	Short: "Retire a quiz item",
	Long:  "Retired items keep their attempt history but no longer count toward document mastery or regeneration targeting.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")
		if learnerID == "" {
			return fmt.Errorf("--learner is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Repos().Catalog.Retire(cmd.Context(), args[0], learnerID); err != nil {
			return fmt.Errorf("retire item: %w", err)
		}
		fmt.Println("retired", args[0])
		return nil
	},
}

func init() {
	itemsRetireCmd.Flags().String("learner", "", "Learner the item belongs to")
	itemsCmd.AddCommand(itemsLoadCmd)
	itemsCmd.AddCommand(itemsRetireCmd)
}
