package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsernameMaxLen bounds usernames; they are keys.
const UsernameMaxLen = 150

// The gpa column holds at most GPAIntegerDigits digits before the point and GPAScale after it.
const (
	GPAIntegerDigits = 8
	GPAScale         = 4
)

var gpaLimit = decimal.New(1, GPAIntegerDigits)

// FitsGPAColumn reports whether d is stored without rounding or overflow.
func FitsGPAColumn(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(GPAScale)) && d.Abs().LessThan(gpaLimit)
}

func init() {
	// GPA renders as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

// User is a student account together with its profile.
type User struct {
	Username         string              `json:"username" gorm:"primaryKey;size:150"`
	PasswordHash     string              `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName        string              `json:"first_name" gorm:"type:text"`
	LastName         string              `json:"last_name" gorm:"type:text"`
	School           string              `json:"school" gorm:"type:text"`
	EmailPersonal    string              `json:"email_personal" gorm:"type:text"`
	EmailSchool      string              `json:"email_school" gorm:"type:text"`
	Age              *int                `json:"age"`
	Grade            *int                `json:"grade"`
	Extracurriculars string              `json:"extracurriculars" gorm:"type:text"`
	Interests        string              `json:"interests" gorm:"type:text"`
	GPA              decimal.NullDecimal `json:"gpa" gorm:"column:gpa;type:decimal(12,4)"`
	Courses          string              `json:"courses" gorm:"type:text"`
	AuthToken        string              `json:"-" gorm:"uniqueIndex;size:64;not null"`
	CreatedAt        time.Time           `json:"-"`
	UpdatedAt        time.Time           `json:"-"`
}

// ProfileColumns maps the mutable profile fields (by JSON name) to their columns.
// Username, password and token are never updatable through the profile.
var ProfileColumns = map[string]string{
	"first_name":       "first_name",
	"last_name":        "last_name",
	"school":           "school",
	"email_personal":   "email_personal",
	"email_school":     "email_school",
	"age":              "age",
	"grade":            "grade",
	"extracurriculars": "extracurriculars",
	"interests":        "interests",
	"gpa":              "gpa",
	"courses":          "courses",
}
