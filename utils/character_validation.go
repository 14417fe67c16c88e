package utils

// ValidateCharacterLifespan validates a character's years against the world timeline
func ValidateCharacterLifespan(birthYear, deathYear int, alive bool, worldCurrentYear int) FieldValidationErrors {
	errs := FieldValidationErrors{}

	// birth_year: nothing can postdate the world's present
	if birthYear > worldCurrentYear {
		errs = append(errs, FieldValidationError{"birth_year", "Birth year cannot be beyond the world's current year"})
	}

	// death_year: only meaningful for dead characters
	if alive {
		if deathYear != 0 {
			errs = append(errs, FieldValidationError{"death_year", "A living character cannot have a death year"})
		}
		return errs
	}

	if deathYear < birthYear {
		errs = append(errs, FieldValidationError{"death_year", "Death year cannot precede birth year"})
	}
	if deathYear > worldCurrentYear {
		errs = append(errs, FieldValidationError{"death_year", "Death year cannot be beyond the world's current year"})
	}

	return errs
}
