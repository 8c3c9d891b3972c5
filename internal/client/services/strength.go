package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

// StrengthWorkoutType is the workout type used for logged strength sets.
const StrengthWorkoutType = "Gym"

// Upper bounds for one logged strength set.
const (
	MaxStrengthSets   = 100
	MaxStrengthReps   = 1000
	MaxStrengthWeight = 1000.0
)

var (
	ErrStrengthInput = errors.New("sets (1-100), reps (1-1000) and weight (up to 1000 kg) must be positive")
	ErrStrengthNotes = errors.New("notes are not in <sets>x<reps>@<weight>kg form")
)

// StrengthSet is one exercise written as "3x10@40kg".
type StrengthSet struct {
	Sets   int
	Reps   int
	Weight float64
}

// StrengthEstimate is what a strength set is logged as.
type StrengthEstimate struct {
	Calories int
	Minutes  int
}

// EstimateStrength rates a set at 0.1 kcal per rep-kilogram and two
// minutes per set.
func EstimateStrength(sets, reps int, weight float64) (StrengthEstimate, error) {
	if sets <= 0 || sets > MaxStrengthSets || reps <= 0 || reps > MaxStrengthReps ||
		!(weight > 0 && weight <= MaxStrengthWeight) {
		return StrengthEstimate{}, ErrStrengthInput
	}
	return StrengthEstimate{
		Calories: int(math.Round(float64(sets*reps) * weight * 0.1)),
		Minutes:  int(math.Round(float64(sets) * 2)),
	}, nil
}

var strengthNotesRe = regexp.MustCompile(`^\s*(\d+)\s*[xX]\s*(\d+)\s*@\s*(\d+(?:\.\d+)?)\s*(?:kg)?\s*$`)

// ParseStrengthNotes reads notes written by StrengthSet.Notes.
func ParseStrengthNotes(notes string) (StrengthSet, error) {
	m := strengthNotesRe.FindStringSubmatch(notes)
	if m == nil {
		return StrengthSet{}, fmt.Errorf("%w: %q", ErrStrengthNotes, notes)
	}
	sets, err := strconv.Atoi(m[1])
	if err != nil {
		return StrengthSet{}, fmt.Errorf("%w: sets: %w", ErrStrengthNotes, err)
	}
	reps, err := strconv.Atoi(m[2])
	if err != nil {
		return StrengthSet{}, fmt.Errorf("%w: reps: %w", ErrStrengthNotes, err)
	}
	weight, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return StrengthSet{}, fmt.Errorf("%w: weight: %w", ErrStrengthNotes, err)
	}
	return StrengthSet{Sets: sets, Reps: reps, Weight: weight}, nil
}

// Volume is reps times weight, per set.
func (s StrengthSet) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

// Notes formats s as "3x10@40kg".
func (s StrengthSet) Notes() string {
	return fmt.Sprintf("%dx%d@%skg", s.Sets, s.Reps, strconv.FormatFloat(s.Weight, 'f', -1, 64))
}

// Input turns s into a workout ready to be saved.
func (s StrengthSet) Input(intensity string) (models.WorkoutInput, error) {
	est, err := EstimateStrength(s.Sets, s.Reps, s.Weight)
	if err != nil {
		return models.WorkoutInput{}, err
	}
	if strings.TrimSpace(intensity) == "" {
		intensity = models.IntensityModerate
	}
	notes := s.Notes()
	return models.WorkoutInput{
		WorkoutType:    StrengthWorkoutType,
		Duration:       est.Minutes,
		Intensity:      intensity,
		CaloriesBurned: est.Calories,
		Notes:          &notes,
	}, nil
}

// VolumePoint is one bar of the volume chart.
type VolumePoint struct {
	Name   string
	Volume float64
}

// VolumeSeries returns the volume of every workout whose notes parse as a
// strength set. Other workouts are skipped.
func VolumeSeries(workouts []models.Workout) []VolumePoint {
	var out []VolumePoint
	for _, w := range workouts {
		set, err := ParseStrengthNotes(w.NotesText())
		if err != nil {
			continue
		}
		out = append(out, VolumePoint{Name: w.WorkoutType, Volume: set.Volume()})
	}
	return out
}
