package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OncoCare/models"
)

func validAppointment() models.Appointment {
	return models.Appointment{
		OwnerID:         "user-1",
		Title:           "Oncology follow-up",
		Category:        "medical",
		Date:            "2025-11-15",
		Time:            "14:30",
		DurationMinutes: 30,
		Location: models.Location{
			Name: "City Hospital",
			Kind: "hospital",
		},
	}
}

func TestValidateAppointmentData(t *testing.T) {
	t.Run("valid appointment passes", func(t *testing.T) {
		require.NoError(t, ValidateAppointmentData(validAppointment()))
	})

	tests := []struct {
		name   string
		mutate func(*models.Appointment)
	}{
		{
			name:   "missing owner",
			mutate: func(a *models.Appointment) { a.OwnerID = "" },
		},
		{
			name:   "empty title",
			mutate: func(a *models.Appointment) { a.Title = "" },
		},
		{
			name:   "unknown category",
			mutate: func(a *models.Appointment) { a.Category = "dental" },
		},
		{
			name:   "malformed date",
			mutate: func(a *models.Appointment) { a.Date = "15-11-2025" },
		},
		{
			name:   "hour out of range",
			mutate: func(a *models.Appointment) { a.Time = "25:00" },
		},
		{
			name:   "duration below minimum",
			mutate: func(a *models.Appointment) { a.DurationMinutes = 10 },
		},
		{
			name:   "location without name",
			mutate: func(a *models.Appointment) { a.Location.Name = "" },
		},
		{
			name:   "unknown location kind",
			mutate: func(a *models.Appointment) { a.Location.Kind = "boat" },
		},
		{
			name:   "non-positive reminder lead time",
			mutate: func(a *models.Appointment) { a.ReminderLeadTimes = []int{60, 0} },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointment := validAppointment()
			tt.mutate(&appointment)
			assert.Error(t, ValidateAppointmentData(appointment))
		})
	}
}

func TestValidateScreeningData(t *testing.T) {
	valid := models.Screening{
		OwnerID:   "user-1",
		Type:      "mammography",
		Frequency: "every_2_years",
	}
	require.NoError(t, ValidateScreeningData(valid))

	t.Run("unknown type", func(t *testing.T) {
		screening := valid
		screening.Type = "x_ray"
		assert.Error(t, ValidateScreeningData(screening))
	})

	t.Run("unknown frequency", func(t *testing.T) {
		screening := valid
		screening.Frequency = "weekly"
		assert.Error(t, ValidateScreeningData(screening))
	})

	t.Run("unknown result status", func(t *testing.T) {
		screening := valid
		screening.Result.Status = "inconclusive"
		assert.Error(t, ValidateScreeningData(screening))
	})

	t.Run("result status optional", func(t *testing.T) {
		screening := valid
		screening.Result.Notes = "no findings"
		assert.NoError(t, ValidateScreeningData(screening))
	})
}

func TestValidateUserData(t *testing.T) {
	valid := models.User{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "Str0ng!pass",
	}
	require.NoError(t, ValidateUserData(valid))

	t.Run("bad email", func(t *testing.T) {
		user := valid
		user.Email = "not-an-email"
		assert.Error(t, ValidateUserData(user))
	})

	t.Run("short password", func(t *testing.T) {
		user := valid
		user.Password = "S!1a"
		assert.Error(t, ValidateUserData(user))
	})

	t.Run("password without complexity", func(t *testing.T) {
		user := valid
		user.Password = "alllowercase"
		assert.Error(t, ValidateUserData(user))
	})

	t.Run("malformed date of birth", func(t *testing.T) {
		user := valid
		user.DateOfBirth = "01/01/1990"
		assert.Error(t, ValidateUserData(user))
	})
}

func TestValidateArticleData(t *testing.T) {
	valid := models.Article{
		Title: "Understanding screening intervals",
		Body:  "Screening intervals depend on the exam type.",
	}
	require.NoError(t, ValidateArticleData(valid))

	t.Run("missing body", func(t *testing.T) {
		article := valid
		article.Body = ""
		assert.Error(t, ValidateArticleData(article))
	})
}

func TestValidateVideoData(t *testing.T) {
	valid := models.Video{
		Title: "Guided breathing exercise",
		URL:   "https://videos.example.com/breathing.mp4",
	}
	require.NoError(t, ValidateVideoData(valid))

	t.Run("invalid URL", func(t *testing.T) {
		video := valid
		video.URL = "not a url"
		assert.Error(t, ValidateVideoData(video))
	})
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	require.NotEqual(t, "Str0ng!pass", hash)

	assert.True(t, CheckPassword(hash, "Str0ng!pass"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
