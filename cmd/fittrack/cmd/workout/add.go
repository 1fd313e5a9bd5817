package workout

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
	"fittrack/internal/domain/workout"
	"fittrack/internal/model"
)

var (
	addDate     string
	addType     string
	addDuration string
	addCalories string
	addNotes    string
	addPickDate bool
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new workout",
	Long: `Logs a workout for the logged-in user. Fields not given as flags
are prompted for; --pick-date opens a calendar to choose the date.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		username, err := a.CurrentUser()
		if err != nil {
			return err
		}

		if addDate == "" {
			addDate = time.Now().Format(model.DateLayout)
		}
		if addPickDate {
			addDate = pickDate(addDate, os.Stdin, os.Stdout)
		}

		if addType == "" {
			addType, err = promptType()
			if err != nil {
				return err
			}
		}

		scanner := bufio.NewScanner(os.Stdin)
		if addDuration == "" {
			addDuration = promptLine(scanner, "Duration (minutes): ")
		}
		if addCalories == "" {
			addCalories = promptLine(scanner, "Calories: ")
		}

		w, err := a.Workouts.Add(cmd.Context(), username, workout.Input{
			Date:     addDate,
			Type:     addType,
			Duration: addDuration,
			Calories: addCalories,
			Notes:    addNotes,
		})
		if err != nil {
			return err
		}

		fmt.Println()
		color.Green("Workout saved!")
		fmt.Printf("%s  %s  %d min  %d kcal\n", w.Date, w.Type, w.DurationMin, w.Calories)
		return nil
	},
}

func promptType() (string, error) {
	fmt.Println("Workout type:")
	for i, t := range model.WorkoutTypes {
		fmt.Printf("%2d. %s\n", i+1, t)
	}
	fmt.Printf("Your choice [1-%d]: ", len(model.WorkoutTypes))

	var choice string
	_, _ = fmt.Scanln(&choice)

	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || n < 1 || n > len(model.WorkoutTypes) {
		return "", fmt.Errorf("invalid choice")
	}
	return model.WorkoutTypes[n-1], nil
}

func promptLine(scanner *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if scanner.Scan() {
		return scanner.Text()
	}
	return ""
}

func init() {
	AddCmd.Flags().StringVarP(&addDate, "date", "d", "", "workout date (YYYY-MM-DD, default today)")
	AddCmd.Flags().StringVarP(&addType, "type", "t", "", "workout type")
	AddCmd.Flags().StringVar(&addDuration, "duration", "", "duration in minutes")
	AddCmd.Flags().StringVar(&addCalories, "calories", "", "calories burned")
	AddCmd.Flags().StringVar(&addNotes, "notes", "", "optional notes")
	AddCmd.Flags().BoolVar(&addPickDate, "pick-date", false, "choose the date from a calendar")
}
