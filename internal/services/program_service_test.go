package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/bmi"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationWeeks(t *testing.T) {
	cases := map[string]struct {
		weeks int
		ok    bool
	}{
		"12 Wochen":      {12, true},
		"16 weeks":       {16, true},
		"approx. 4-6 wk": {4, true},
		"Ongoing":        {0, false},
		"":               {0, false},
		"0 weeks":        {0, false},
	}
	for in, want := range cases {
		weeks, ok := DurationWeeks(in)
		assert.Equal(t, want.ok, ok, in)
		assert.Equal(t, want.weeks, weeks, in)
	}
}

func TestStartProgram(t *testing.T) {
	db := dbtest.Open(t)
	user := createUser(t, db, "ada@example.com")
	svc := NewProgramService(db)
	svc.now = func() time.Time { return time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC) }

	program, err := svc.Start(user.ID, &dto.StartProgramRequest{
		ProgramType: "Fitness",
		ProgramName: "Full-Body Fitness",
		Description: ptr("Varied training"),
		Duration:    "12 weeks",
	})
	require.NoError(t, err)
	assert.NotZero(t, program.ID)
	assert.Equal(t, "Fitness", program.ProgramType)
	assert.Equal(t, "2026-01-15", program.StartDate)
	require.NotNil(t, program.EndDate)
	assert.Equal(t, "2026-04-09", *program.EndDate)
	assert.Equal(t, models.ProgramActive, program.Status)

	open, err := svc.Start(user.ID, &dto.StartProgramRequest{
		ProgramType: "Fitness", ProgramName: "Maintenance", Duration: "Ongoing",
	})
	require.NoError(t, err)
	assert.Nil(t, open.EndDate)
	assert.Nil(t, open.Description)

	_, err = svc.Start(user.ID, &dto.StartProgramRequest{ProgramName: "No type"})
	assertValidation(t, err, "")
	_, err = svc.Start(user.ID, &dto.StartProgramRequest{ProgramType: "No name"})
	assertValidation(t, err, "")
}

func TestStartProgramStoresBlankDescriptionAsNull(t *testing.T) {
	db := dbtest.Open(t)
	user := createUser(t, db, "ada@example.com")
	svc := NewProgramService(db)

	for _, desc := range []string{"", "   "} {
		program, err := svc.Start(user.ID, &dto.StartProgramRequest{
			ProgramType: "Sport", ProgramName: "Blank", Description: ptr(desc),
		})
		require.NoError(t, err)
		assert.Nil(t, program.Description)

		var stored models.UserProgram
		require.NoError(t, db.First(&stored, program.ID).Error)
		assert.Nil(t, stored.Description)
	}

	program, err := svc.Start(user.ID, &dto.StartProgramRequest{
		ProgramType: "Sport", ProgramName: "Padded", Description: ptr("  Varied training "),
	})
	require.NoError(t, err)
	require.NotNil(t, program.Description)
	assert.Equal(t, "Varied training", *program.Description)
}

func TestListPrograms(t *testing.T) {
	db := dbtest.Open(t)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	svc := NewProgramService(db)

	first, err := svc.Start(alice.ID, &dto.StartProgramRequest{ProgramType: "Sport", ProgramName: "One"})
	require.NoError(t, err)
	second, err := svc.Start(alice.ID, &dto.StartProgramRequest{ProgramType: "Sport", ProgramName: "Two"})
	require.NoError(t, err)
	_, err = svc.Start(bob.ID, &dto.StartProgramRequest{ProgramType: "Sport", ProgramName: "Bob's"})
	require.NoError(t, err)

	programs, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, second.ID, programs[0].ID)
	assert.Equal(t, first.ID, programs[1].ID)
}

func TestRecommendations(t *testing.T) {
	db := dbtest.Open(t)
	user := createUser(t, db, "ada@example.com")
	svc := NewProgramService(db)

	empty, err := svc.Recommendations(user.ID)
	require.NoError(t, err)
	assert.Nil(t, empty.BMI)
	assert.Nil(t, empty.Status)
	assert.Empty(t, empty.Programs)

	now := time.Now().UTC()
	seedRecord(t, db, user.ID, 110, now.Add(-time.Hour))
	seedRecord(t, db, user.ID, 50, now)

	recs, err := svc.Recommendations(user.ID)
	require.NoError(t, err)
	require.NotNil(t, recs.Status)
	assert.Equal(t, bmi.SeverelyUnderweight, *recs.Status)
	require.Len(t, recs.Programs, 2)
	assert.Equal(t, 1, recs.Programs[0].ID)
}

func TestRecommendedForCoversEveryStatus(t *testing.T) {
	for _, st := range []bmi.Status{bmi.SeverelyUnderweight, bmi.Underweight, bmi.NormalWeight, bmi.Overweight, bmi.Obese} {
		assert.NotEmpty(t, recommendedFor(st), st)
	}
	assert.Empty(t, recommendedFor(bmi.Status("unknown")))
}
