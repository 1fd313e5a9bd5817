package data

import (
	"github.com/spf13/cobra"
)

var DataCmd = &cobra.Command{
	Use:   "data",
	Short: "Export and import workouts as CSV",
}
