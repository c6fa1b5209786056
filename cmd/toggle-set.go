package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/misterclayt0n/reset/internal/program"
	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/misterclayt0n/reset/internal/utils"
	"github.com/spf13/cobra"
)

var toggleSetCmd = &cobra.Command{
	Use:   "toggle-set [exercise-index] [set-index]",
	Short: "Toggle completion of one set of today's workout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, err := strconv.Atoi(args[0])
		if err != nil || exIdx < 1 {
			return fmt.Errorf("Invalid exercise index. Must be a positive integer")
		}
		setIdx, err := strconv.Atoi(args[1])
		if err != nil || setIdx < 1 {
			return fmt.Errorf("Invalid set index. Must be a positive integer")
		}
		exIdx--
		setIdx--

		st, err := storage.NewStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := requireProfile(st)
		if err != nil {
			return err
		}

		now := time.Now()
		day := resolveDayFor(profile, now)
		if len(day.Exercises) == 0 {
			return fmt.Errorf("Nothing to track today (%s)", day.Slot.Name)
		}

		dl, err := st.GetOrCreateDailyLog(utils.DayKey(now))
		if err != nil {
			return fmt.Errorf("Failed to load today's log: %w", err)
		}

		if err := program.ToggleSet(dl, day.Exercises, exIdx, setIdx); err != nil {
			return err
		}

		if err := st.SaveDailyLog(dl); err != nil {
			return fmt.Errorf("Failed to save today's log: %w", err)
		}

		name := day.Exercises[exIdx].Name
		state := "pending"
		if dl.SetsCompleted[exIdx][setIdx] {
			state = "done"
		}
		if program.IsExerciseComplete(dl, exIdx) {
			fmt.Printf("✅ Set %d of '%s' marked %s, exercise complete!\n", setIdx+1, name, state)
		} else {
			fmt.Printf("✅ Set %d of '%s' marked %s\n", setIdx+1, name, state)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleSetCmd)
}
