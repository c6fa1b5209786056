package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/misterclayt0n/reset/internal/models"
	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/misterclayt0n/reset/internal/utils"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

// watchCmd follows today's log from the store, printing each revision as it
// lands. Useful when toggling sets from another device.
var watchCmd = &cobra.Command{
	Use:   "watch [date]",
	Short: "Follow a day's log and print every revision (Ctrl-C to stop)",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if _, err := requireProfile(st); err != nil {
			return err
		}

		date := utils.DayKey(time.Now())
		if len(args) == 1 {
			if _, err := utils.ParseDayKey(args[0]); err != nil {
				return fmt.Errorf("Invalid date %q, expected YYYY-MM-DD", args[0])
			}
			date = args[0]
		}

		fmt.Printf("Watching %s (every %s)...\n", date, watchInterval)
		stop := st.WatchDailyLog(date, watchInterval, func(dl *models.DailyLog) {
			fmt.Printf("[%s] %s updated: %d exercises complete\n",
				dl.UpdatedAt.Local().Format("15:04:05"), dl.Date, len(dl.CompletedExercises))
		})

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		stop()
		fmt.Println("\nStopped watching.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 5*time.Second, "Poll interval")
}
