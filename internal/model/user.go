package model

// UserRecord is everything stored for one user. Workouts keep insertion
// order; the history view sorts a copy for display.
type UserRecord struct {
	Password string            `json:"password"`
	Profile  map[string]string `json:"profile"`
	Workouts []Workout         `json:"workouts"`
	Settings map[string]string `json:"settings"`
}

// NewUserRecord returns a record with every collection allocated, the
// shape register writes to disk.
func NewUserRecord(password string) *UserRecord {
	return &UserRecord{
		Password: password,
		Profile:  map[string]string{},
		Workouts: []Workout{},
		Settings: map[string]string{},
	}
}

// Document is the whole users file: username -> record. Usernames are
// case-sensitive and immutable once created.
type Document map[string]*UserRecord
