package cli

import (
	"time"

	"github.com/spf13/cobra"

	apperrors "tradebook/internal/errors"
	"tradebook/internal/models"
	"tradebook/pkg/utils"
)

// addNoteCommands adds daily-note commands.
func addNoteCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Daily notes",
		Long:  "Record and review daily journal notes with an optional mood.",
	}

	cmd.AddCommand(newNoteAddCmd(app))
	cmd.AddCommand(newNoteShowCmd(app))

	rootCmd.AddCommand(cmd)
}

func newNoteAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Save the note for a day",
		Long: `Save the journal note for a calendar day. Saving again for the same day
replaces the existing note; there is at most one note per day.`,
		Example: `  tradebook note add "Choppy session, stayed flat" --mood Disciplined
  tradebook note add "Revenge traded after the stop-out" --mood Frustrated --date 2024-03-12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			dateStr, _ := cmd.Flags().GetString("date")
			moodStr, _ := cmd.Flags().GetString("mood")

			if dateStr == "" {
				dateStr = models.NoteDate(time.Now())
			} else if _, err := time.Parse("2006-01-02", dateStr); err != nil {
				output.Error("Invalid date %q (want YYYY-MM-DD)", dateStr)
				return err
			}

			mood := models.Mood(moodStr)
			if moodStr != "" && !models.ValidMood(mood) {
				output.Error("Unknown mood %q (one of Happy, Neutral, Sad, Frustrated, Disciplined)", moodStr)
				return apperrors.NewValidationError("mood", moodStr, "not a recognized mood")
			}

			note := models.DailyNote{
				Date:    dateStr,
				Content: args[0],
				Mood:    mood,
			}
			if err := app.Journal.SaveNote(ctx, note); err != nil {
				output.Error("Failed to save note: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(note)
			}
			output.Success("✓ Note saved for %s", dateStr)
			return nil
		},
	}

	cmd.Flags().String("date", "", "calendar date (YYYY-MM-DD, default today)")
	cmd.Flags().String("mood", "", "mood (Happy|Neutral|Sad|Frustrated|Disciplined)")
	return cmd
}

func newNoteShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the note for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			_, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			dateStr, _ := cmd.Flags().GetString("date")
			if dateStr == "" {
				dateStr = models.NoteDate(time.Now())
			}

			note, err := app.Journal.NoteByDate(dateStr)
			if err != nil {
				output.Info("No note for %s.", dateStr)
				return nil
			}

			if output.IsJSON() {
				return output.JSON(note)
			}
			output.Bold("Note - %s", note.Date)
			if note.Mood != "" {
				output.Printf("  Mood: %s\n", note.Mood)
			}
			output.Printf("  %s\n", note.Content)
			if !note.UpdatedAt.IsZero() {
				output.Dim("Updated %s %s", utils.FormatDate(note.UpdatedAt), utils.FormatTime(note.UpdatedAt))
			}
			return nil
		},
	}

	cmd.Flags().String("date", "", "calendar date (YYYY-MM-DD, default today)")
	return cmd
}
