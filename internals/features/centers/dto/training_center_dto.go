package dto

import (
	"traini8_backend/internals/features/centers/model"
)

// ============================
// Response DTO
// ============================

type AddressDTO struct {
	DetailedAddress string `json:"detailedAddress"`
	City            string `json:"city"`
	State           string `json:"state"`
	Pincode         string `json:"pincode"`
}

type TrainingCenterDTO struct {
	ID              int64       `json:"id"`
	CenterName      string      `json:"centerName"`
	CenterCode      string      `json:"centerCode"`
	Address         *AddressDTO `json:"address"`
	StudentCapacity *int        `json:"studentCapacity"`
	CoursesOffered  []string    `json:"coursesOffered"`
	CreatedOn       int64       `json:"createdOn"`
	ContactEmail    *string     `json:"contactEmail"`
	ContactPhone    string      `json:"contactPhone"`
}

// ============================
// Create Request DTO
// ============================

type CreateTrainingCenterRequest struct {
	CenterName      string      `json:"centerName" validate:"required,notblank,max=40"`
	CenterCode      string      `json:"centerCode" validate:"required,len=12,alphanum"`
	Address         *AddressDTO `json:"address"`
	StudentCapacity *int        `json:"studentCapacity" validate:"omitempty,min=0"`
	CoursesOffered  []string    `json:"coursesOffered"`
	CreatedOn       *int64      `json:"createdOn"` // accepted but always overwritten server-side
	ContactEmail    *string     `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone    string      `json:"contactPhone" validate:"required,len=10,number"`
}

// ============================
// Converter
// ============================

func (r *CreateTrainingCenterRequest) ToModel() *model.TrainingCenterModel {
	m := &model.TrainingCenterModel{
		TrainingCenterName:            r.CenterName,
		TrainingCenterCode:            r.CenterCode,
		TrainingCenterStudentCapacity: r.StudentCapacity,
		TrainingCenterContactEmail:    r.ContactEmail,
		TrainingCenterContactPhone:    r.ContactPhone,
	}
	if r.Address != nil {
		m.TrainingCenterAddress = &model.TrainingCenterAddress{
			DetailedAddress: r.Address.DetailedAddress,
			City:            r.Address.City,
			State:           r.Address.State,
			Pincode:         r.Address.Pincode,
		}
	}
	for i, name := range r.CoursesOffered {
		m.Courses = append(m.Courses, model.TrainingCenterCourseModel{
			CourseOrdinal: i,
			CourseName:    name,
		})
	}
	return m
}

func ToTrainingCenterDTO(m model.TrainingCenterModel) TrainingCenterDTO {
	d := TrainingCenterDTO{
		ID:              m.TrainingCenterID,
		CenterName:      m.TrainingCenterName,
		CenterCode:      m.TrainingCenterCode,
		StudentCapacity: m.TrainingCenterStudentCapacity,
		CreatedOn:       m.TrainingCenterCreatedOn,
		ContactEmail:    m.TrainingCenterContactEmail,
		ContactPhone:    m.TrainingCenterContactPhone,
	}
	if m.TrainingCenterAddress != nil {
		d.Address = &AddressDTO{
			DetailedAddress: m.TrainingCenterAddress.DetailedAddress,
			City:            m.TrainingCenterAddress.City,
			State:           m.TrainingCenterAddress.State,
			Pincode:         m.TrainingCenterAddress.Pincode,
		}
	}
	if len(m.Courses) > 0 {
		d.CoursesOffered = make([]string, 0, len(m.Courses))
		for _, course := range m.Courses {
			d.CoursesOffered = append(d.CoursesOffered, course.CourseName)
		}
	}
	return d
}

func ToTrainingCenterDTOs(models []model.TrainingCenterModel) []TrainingCenterDTO {
	result := make([]TrainingCenterDTO, 0, len(models))
	for _, m := range models {
		result = append(result, ToTrainingCenterDTO(m))
	}
	return result
}
