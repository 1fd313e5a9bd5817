package profile

import (
	"github.com/spf13/cobra"
)

// Fields is the fixed set of profile keys, in display order.
var Fields = []string{"name", "age", "weight_(kg)", "height_(cm)", "daily_calorie_goal"}

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
}
