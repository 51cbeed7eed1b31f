package service

import (
	"fmt"
	"strings"

	"internmatch/internal/model"
)

const (
	bioDelimiter   = " | "
	placeholderBio = "Student seeking internship opportunities"
)

// BuildBio summarizes a profile for the ranking model. Empty fields are left out.
func BuildBio(u *model.User) string {
	var parts []string
	if u.FirstName != "" {
		parts = append(parts, "Name: "+strings.TrimSpace(u.FirstName+" "+u.LastName))
	}
	if u.School != "" {
		parts = append(parts, "School: "+u.School)
	}
	if u.Grade != nil && *u.Grade != 0 {
		parts = append(parts, fmt.Sprintf("Grade: %d", *u.Grade))
	}
	if u.GPA.Valid && !u.GPA.Decimal.IsZero() {
		parts = append(parts, "GPA: "+u.GPA.Decimal.String())
	}
	if u.Interests != "" {
		parts = append(parts, "Interests: "+u.Interests)
	}
	if u.Extracurriculars != "" {
		parts = append(parts, "Extracurriculars: "+u.Extracurriculars)
	}
	if u.Courses != "" {
		parts = append(parts, "Courses: "+u.Courses)
	}

	if len(parts) == 0 {
		return placeholderBio
	}
	return strings.Join(parts, bioDelimiter)
}

func displayName(u *model.User) string {
	if u.FirstName == "" {
		return "Student"
	}
	return u.FirstName
}
