package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/theirongolddev/mrrgen/internal/model"
)

// MaxMonths caps the projection horizon (50 years).
const MaxMonths = model.MaxProjectionMonths

// MinGrowthPercent is the lowest monthly growth that keeps revenue non-negative.
const MinGrowthPercent = -100

// Rules shared by struct tags on ProjectionConfig and the single-value checks.
const (
	monthsRule = "gte=0,lte=600"
	growthRule = "finite,gte=-100"
)

var (
	// ErrMonthsOutOfRange is returned for a horizon outside 0..MaxMonths.
	ErrMonthsOutOfRange = errors.New("months out of range")
	// ErrInvalidGrowth is returned for non-finite growth or growth below -100%.
	ErrInvalidGrowth = errors.New("invalid growth rate")
)

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		log.Fatalf("registering finite rule: %v", err)
	}
	return v
})

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateMonths reports whether n is a usable projection horizon.
func ValidateMonths(n int) error {
	if validate().Var(n, monthsRule) != nil {
		return monthsError(n)
	}
	return nil
}

// ValidateGrowth reports whether g is a usable monthly growth percentage.
func ValidateGrowth(g float64) error {
	if validate().Var(g, growthRule) != nil {
		return growthError(g)
	}
	return nil
}

// Validate checks the projection settings after file, env and flag layering.
func (p ProjectionConfig) Validate() error {
	err := validate().Struct(p)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].StructField() {
		case "Months":
			return monthsError(p.Months)
		case "GrowthPercent":
			return growthError(p.GrowthPercent)
		}
	}
	if err != nil {
		return err
	}
	_, err = ParseStart(p.Start)
	return err
}

func monthsError(n int) error {
	return fmt.Errorf("%w: %d (want 0 to %d)", ErrMonthsOutOfRange, n, MaxMonths)
}

func growthError(g float64) error {
	return fmt.Errorf("%w: %v (want a finite number of at least %d)", ErrInvalidGrowth, g, MinGrowthPercent)
}
