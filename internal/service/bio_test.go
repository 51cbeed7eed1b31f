package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"internmatch/internal/model"
)

func TestBuildBio(t *testing.T) {
	grade := 11
	zero := 0

	tests := []struct {
		name string
		user model.User
		want string
	}{
		{
			name: "full profile in fixed order",
			user: model.User{
				FirstName: "Jane", LastName: "Doe", School: "North High", Grade: &grade,
				GPA:              decimal.NewNullDecimal(decimal.RequireFromString("3.85")),
				Interests:        "AI",
				Extracurriculars: "Robotics",
				Courses:          "AP CS",
			},
			want: "Name: Jane Doe | School: North High | Grade: 11 | GPA: 3.85 | Interests: AI | Extracurriculars: Robotics | Courses: AP CS",
		},
		{
			name: "absent fields omitted",
			user: model.User{FirstName: "Jane", Grade: &zero, Courses: "Art"},
			want: "Name: Jane | Courses: Art",
		},
		{
			name: "empty profile",
			user: model.User{LastName: "Doe"},
			want: "Student seeking internship opportunities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildBio(&tt.user))
		})
	}
}
