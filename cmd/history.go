package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizmith/quizmith/internal/store"
	"github.com/quizmith/quizmith/internal/ui/layout"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List answered questions and scheduled reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		responses, err := s.EventRepo().QueryResponses(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query responses: %w", err)
		}

		if len(responses) == 0 {
			fmt.Println("No questions answered yet.")
			return nil
		}

		fmt.Printf("%-12s  %-20s  %-9s  %-4s  %-6s  %-12s  %s\n",
			"Date", "Topic", "Outcome", "Ans", "Conf", "Review", "Question")
		fmt.Println(strings.Repeat("─", 110))

		for _, r := range responses {
			topic := r.Topic
			if topic == "" {
				topic = "Sample Quiz"
			}
			topic = layout.Truncate(topic, 20)

			review := "-"
			if r.ReviewDate != nil {
				review = r.ReviewDate.Format("Jan 02, 2006")
			}

			question := layout.Truncate(r.Question, 40)

			fmt.Printf("%-12s  %-20s  %-9s  %-4s  %-6s  %-12s  %s\n",
				r.At.Format("Jan 02, 2006"),
				topic,
				r.Outcome,
				r.Selected,
				r.Confidence,
				review,
				question,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of responses to list")
}
