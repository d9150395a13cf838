package model

// TrainingCenterAddress is embedded into the owning row (no identity of its own).
type TrainingCenterAddress struct {
	DetailedAddress string `gorm:"column:detailed_address;type:text" json:"detailedAddress"`
	City            string `gorm:"column:city;type:varchar(100)" json:"city"`
	State           string `gorm:"column:state;type:varchar(100)" json:"state"`
	Pincode         string `gorm:"column:pincode;type:varchar(10)" json:"pincode"`
}

type TrainingCenterModel struct {
	TrainingCenterID              int64                  `gorm:"column:training_center_id;primaryKey;autoIncrement" json:"id"`
	TrainingCenterName            string                 `gorm:"column:training_center_name;type:varchar(40);not null" json:"centerName"`
	TrainingCenterCode            string                 `gorm:"column:training_center_code;type:varchar(12);not null;uniqueIndex:uq_training_centers_code" json:"centerCode"`
	TrainingCenterAddress         *TrainingCenterAddress `gorm:"embedded;embeddedPrefix:training_center_address_" json:"address,omitempty"`
	TrainingCenterStudentCapacity *int                   `gorm:"column:training_center_student_capacity" json:"studentCapacity,omitempty"`
	TrainingCenterCreatedOn       int64                  `gorm:"column:training_center_created_on;not null" json:"createdOn"`
	TrainingCenterContactEmail    *string                `gorm:"column:training_center_contact_email;type:varchar(255)" json:"contactEmail,omitempty"`
	TrainingCenterContactPhone    string                 `gorm:"column:training_center_contact_phone;type:varchar(10);not null" json:"contactPhone"`

	// Ordered side table, one row per offered course.
	Courses []TrainingCenterCourseModel `gorm:"foreignKey:CourseCenterID;references:TrainingCenterID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName sets the table name for TrainingCenterModel
func (TrainingCenterModel) TableName() string {
	return "training_centers"
}
