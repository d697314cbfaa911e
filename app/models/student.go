package models

import "strconv"

// Student carries the academic metadata the fees service embeds in each
// roster entry.
type Student struct {
	ID           string `json:"id" validate:"required"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	RollNumber   int    `json:"rollNumber,omitempty"`
	Email        string `json:"email,omitempty"`
	GuardianName string `json:"guardianName,omitempty"`
	Class        string `json:"class,omitempty"`
	Section      string `json:"section,omitempty"`
	AcademicYear string `json:"academicYear,omitempty"`
	IsActive     bool   `json:"isActive,omitempty"`
}

// FullName joins the first and last name for display and search.
func (s Student) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// RollNumberString is the roll number as free text, for substring search.
func (s Student) RollNumberString() string {
	return strconv.Itoa(s.RollNumber)
}

// StudentFeeRecord is one roster entry: a student plus their embedded fee
// record, exactly as returned by GET /fees/students.
type StudentFeeRecord struct {
	Student
	Fees FeeRecord `json:"fees"`
}
