package model

// DateLayout is the canonical calendar-date form used everywhere a
// workout date is stored or compared.
const DateLayout = "2006-01-02"

// TypePlaceholder is the sentinel a selection widget hands over when
// the user never picked a workout type. The ledger rejects it.
const TypePlaceholder = "Select workout type"

// WorkoutTypes is the fixed vocabulary offered by the UI. Imported rows
// may carry free text; the ledger tolerates that.
var WorkoutTypes = []string{
	"Running",
	"Cycling",
	"Swimming",
	"Weight Training",
	"Yoga",
	"Pilates",
	"CrossFit",
	"Boxing",
	"Dancing",
	"Walking",
	"Hiking",
	"Rowing",
	"Jump Rope",
	"Elliptical",
	"Aerobics",
	"Sports (Basketball, Soccer, etc.)",
	"Stretching",
	"HIIT",
	"Other",
}

// Workout is one logged session. CreatedAt is the record's stable
// identity: assigned once, unique within a user, never rewritten.
type Workout struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	DurationMin int    `json:"duration_min"`
	Calories    int    `json:"calories"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"created_at"`
}
