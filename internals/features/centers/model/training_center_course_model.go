package model

// TrainingCenterCourseModel keeps coursesOffered in submission order.
// The ordinal is part of the key so the same course name may repeat.
type TrainingCenterCourseModel struct {
	CourseCenterID int64  `gorm:"column:course_center_id;primaryKey" json:"-"`
	CourseOrdinal  int    `gorm:"column:course_ordinal;primaryKey" json:"-"`
	CourseName     string `gorm:"column:course_name;type:text;not null" json:"courseName"`
}

// TableName sets the table name for TrainingCenterCourseModel
func (TrainingCenterCourseModel) TableName() string {
	return "training_center_courses"
}
