package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// NewValidator builds the validator used for training-center requests.
// "notblank" rejects whitespace-only values, matching the mandatory-field rules.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// ValidationMessages turns validator errors into the field → message map
// returned inside the 400 envelope.
func ValidationMessages(err error) map[string]string {
	messages := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["request"] = err.Error()
		return messages
	}
	for _, fe := range ve {
		switch fe.Field() {
		case "CenterName":
			if fe.Tag() == "max" {
				messages["centerName"] = "Center name must be less than 40 characters"
			} else {
				messages["centerName"] = "Center name is mandatory"
			}
		case "CenterCode":
			switch fe.Tag() {
			case "required":
				messages["centerCode"] = "Center code is mandatory"
			case "len":
				messages["centerCode"] = "Center code must be exactly 12 characters"
			default:
				messages["centerCode"] = "Center code must be alphanumeric"
			}
		case "StudentCapacity":
			messages["studentCapacity"] = "Capacity cannot be negative"
		case "ContactEmail":
			messages["contactEmail"] = "Invalid email format"
		case "ContactPhone":
			if fe.Tag() == "required" {
				messages["contactPhone"] = "Contact phone is mandatory"
			} else {
				messages["contactPhone"] = "Contact phone must be a 10-digit number"
			}
		default:
			messages[fe.Field()] = "Invalid value"
		}
	}
	return messages
}
