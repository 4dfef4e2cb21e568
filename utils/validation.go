package utils

import (
	"errors"
	"log"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"OncoCare/models"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrInvalidResetCode   = errors.New("invalid reset code")
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidateUserData validates user data using ozzo-validation.
func ValidateUserData(user models.User) error {
	err := validation.ValidateStruct(&user,
		validation.Field(&user.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&user.Email, validation.Required, is.Email),
		validation.Field(&user.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
		validation.Field(&user.DateOfBirth, validation.Match(dateRegex).Error("must be YYYY-MM-DD")),
		validation.Field(&user.Sex, validation.In("Male", "Female", "Other", "")),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateAppointmentData validates an appointment before it is stored.
func ValidateAppointmentData(appointment models.Appointment) error {
	err := validation.ValidateStruct(&appointment,
		validation.Field(&appointment.OwnerID, validation.Required),
		validation.Field(&appointment.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&appointment.Category, validation.Required,
			validation.In("medical", "treatment", "support", "screening")),
		validation.Field(&appointment.Date, validation.Required, validation.Match(dateRegex).Error("must be YYYY-MM-DD")),
		validation.Field(&appointment.Time, validation.Required, validation.Match(timeRegex).Error("must be HH:MM")),
		validation.Field(&appointment.DurationMinutes, validation.Required, validation.Min(15)),
		validation.Field(&appointment.Notes, validation.Length(0, 2000)),
		validation.Field(&appointment.Location, validation.By(validateLocation)),
		validation.Field(&appointment.ReminderLeadTimes, validation.Each(validation.Min(1))),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

func validateLocation(value interface{}) error {
	location, _ := value.(models.Location)
	return validation.ValidateStruct(&location,
		validation.Field(&location.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&location.Kind, validation.Required,
			validation.In("hospital", "clinic", "home", "online")),
	)
}

// ValidateScreeningData validates a screening before it is stored.
func ValidateScreeningData(screening models.Screening) error {
	err := validation.ValidateStruct(&screening,
		validation.Field(&screening.OwnerID, validation.Required),
		validation.Field(&screening.Type, validation.Required,
			validation.In("breast_self_exam", "pap_smear", "mammography", "colonoscopy", "skin_check", "blood_test")),
		validation.Field(&screening.Frequency, validation.Required,
			validation.In("monthly", "yearly", "every_2_years", "every_3_years", "every_5_years")),
		validation.Field(&screening.Result, validation.By(validateScreeningResult)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

func validateScreeningResult(value interface{}) error {
	result, _ := value.(models.ScreeningResult)
	return validation.ValidateStruct(&result,
		validation.Field(&result.Status, validation.In("normal", "abnormal", "follow_up_needed", "")),
		validation.Field(&result.Notes, validation.Length(0, 2000)),
	)
}

// ValidateArticleData validates an article before it is stored.
func ValidateArticleData(article models.Article) error {
	err := validation.ValidateStruct(&article,
		validation.Field(&article.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&article.Summary, validation.Length(0, 500)),
		validation.Field(&article.Body, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateVideoData validates a video before it is stored.
func ValidateVideoData(video models.Video) error {
	err := validation.ValidateStruct(&video,
		validation.Field(&video.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&video.URL, validation.Required, is.URL),
		validation.Field(&video.DurationSeconds, validation.Min(0)),
		validation.Field(&video.Description, validation.Length(0, 2000)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	err := validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}
	return nil
}
