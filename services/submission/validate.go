package submission

import (
	"math"
	"strconv"
	"strings"

	"parcelo/models"
)

// ValidateBasics checks the first wizard step. Errors are keyed by field
// name; an empty map means the step may advance.
func ValidateBasics(in models.BasicsInput) models.FieldErrors {
	errs := models.FieldErrors{}

	if strings.TrimSpace(in.Subject) == "" {
		errs["subject"] = "subject is required"
	}
	if strings.TrimSpace(in.Location) == "" {
		errs["location"] = "location is required"
	}

	if strings.TrimSpace(in.Price) == "" {
		errs["price"] = "price is required"
	} else if v, err := strconv.ParseFloat(in.Price, 64); err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		errs["price"] = "price must be a number greater than zero"
	}

	if strings.TrimSpace(in.Area) != "" {
		if v, err := strconv.ParseFloat(in.Area, 64); err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			errs["area"] = "area must be a number greater than zero"
		}
	}

	return errs
}

// ValidateImages checks the second wizard step: a listing needs at least
// one image for its card and carousel views.
func ValidateImages(images []string) models.FieldErrors {
	errs := models.FieldErrors{}
	if len(images) == 0 {
		errs["images"] = "at least one image is required"
	}
	return errs
}
