package dto

import (
	"testing"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validRequest() CreateTrainingCenterRequest {
	return CreateTrainingCenterRequest{
		CenterName:   "Alpha Institute",
		CenterCode:   "ABC123DEF456",
		ContactPhone: "9876543210",
	}
}

func TestValidationAcceptsValidRequest(t *testing.T) {
	v := NewValidator()

	req := validRequest()
	req.Address = &AddressDTO{DetailedAddress: "12 MG Road", City: "Pune", State: "MH", Pincode: "411001"}
	req.StudentCapacity = intPtr(0)
	req.CoursesOffered = []string{"Go", "SQL"}
	req.ContactEmail = strPtr("admin@alpha.example")

	if err := v.Struct(&req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestValidationFieldMessages(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name    string
		mutate  func(*CreateTrainingCenterRequest)
		field   string
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(r *CreateTrainingCenterRequest) { r.CenterName = "" },
			field:   "centerName",
			message: "Center name is mandatory",
		},
		{
			name:    "blank name",
			mutate:  func(r *CreateTrainingCenterRequest) { r.CenterName = "   " },
			field:   "centerName",
			message: "Center name is mandatory",
		},
		{
			name:    "name too long",
			mutate:  func(r *CreateTrainingCenterRequest) { r.CenterName = "An Institute Name That Runs Past Forty Characters" },
			field:   "centerName",
			message: "Center name must be less than 40 characters",
		},
		{
			name:    "missing code",
			mutate:  func(r *CreateTrainingCenterRequest) { r.CenterCode = "" },
			field:   "centerCode",
			message: "Center code is mandatory",
		},
		{
			name:    "short code",
			mutate:  func(r *CreateTrainingCenterRequest) { r.CenterCode = "short" },
			field:   "centerCode",
			message: "Center code must be exactly 12 characters",
		},
		{
			name:    "non-alphanumeric code",
			mutate:  func(r *CreateTrainingCenterRequest) { r.CenterCode = "ABC-123-D456" },
			field:   "centerCode",
			message: "Center code must be alphanumeric",
		},
		{
			name:    "negative capacity",
			mutate:  func(r *CreateTrainingCenterRequest) { r.StudentCapacity = intPtr(-5) },
			field:   "studentCapacity",
			message: "Capacity cannot be negative",
		},
		{
			name:    "bad email",
			mutate:  func(r *CreateTrainingCenterRequest) { r.ContactEmail = strPtr("not-an-email") },
			field:   "contactEmail",
			message: "Invalid email format",
		},
		{
			name:    "missing phone",
			mutate:  func(r *CreateTrainingCenterRequest) { r.ContactPhone = "" },
			field:   "contactPhone",
			message: "Contact phone is mandatory",
		},
		{
			name:    "short phone",
			mutate:  func(r *CreateTrainingCenterRequest) { r.ContactPhone = "12345" },
			field:   "contactPhone",
			message: "Contact phone must be a 10-digit number",
		},
		{
			name:    "non-digit phone",
			mutate:  func(r *CreateTrainingCenterRequest) { r.ContactPhone = "98765x3210" },
			field:   "contactPhone",
			message: "Contact phone must be a 10-digit number",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := v.Struct(&req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			messages := ValidationMessages(err)
			if got := messages[tc.field]; got != tc.message {
				t.Fatalf("messages[%q] = %q, want %q (all: %v)", tc.field, got, tc.message, messages)
			}
		})
	}
}

func TestToModelPreservesCourseOrder(t *testing.T) {
	req := validRequest()
	req.CoursesOffered = []string{"Go", "SQL", "Go"}

	m := req.ToModel()

	if len(m.Courses) != 3 {
		t.Fatalf("got %d courses, want 3", len(m.Courses))
	}
	for i, want := range []string{"Go", "SQL", "Go"} {
		if m.Courses[i].CourseOrdinal != i || m.Courses[i].CourseName != want {
			t.Fatalf("course[%d] = (%d, %q), want (%d, %q)", i, m.Courses[i].CourseOrdinal, m.Courses[i].CourseName, i, want)
		}
	}
}

func TestDTORoundTrip(t *testing.T) {
	req := validRequest()
	req.Address = &AddressDTO{City: "Pune", State: "MH"}
	req.CoursesOffered = []string{"Go", "SQL"}

	m := req.ToModel()
	m.TrainingCenterID = 7
	m.TrainingCenterCreatedOn = 1700000000000

	d := ToTrainingCenterDTO(*m)

	if d.ID != 7 || d.CenterName != req.CenterName || d.CenterCode != req.CenterCode {
		t.Fatalf("unexpected dto: %+v", d)
	}
	if d.Address == nil || d.Address.City != "Pune" {
		t.Fatalf("address not carried over: %+v", d.Address)
	}
	if len(d.CoursesOffered) != 2 || d.CoursesOffered[0] != "Go" || d.CoursesOffered[1] != "SQL" {
		t.Fatalf("courses not carried over in order: %v", d.CoursesOffered)
	}
	if d.CreatedOn != 1700000000000 {
		t.Fatalf("createdOn = %d", d.CreatedOn)
	}
}
