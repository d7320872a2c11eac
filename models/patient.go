package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Patient is the persisted patient record. A patient owns zero or more
// appointments; deleting a patient cascades to them at the storage level.
type Patient struct {
	ID          int        `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth Date       `json:"date_of_birth"`
	Gender      *string    `json:"gender"`
	PhoneNumber *string    `json:"phone_number"`
	Email       *string    `json:"email"`
	Address     *string    `json:"address"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type PatientCreate struct {
	FirstName   string  `json:"first_name" binding:"required,max=50"`
	LastName    string  `json:"last_name" binding:"required,max=50"`
	DateOfBirth Date    `json:"date_of_birth" binding:"required"`
	Gender      *string `json:"gender" binding:"omitempty,max=10"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	Address     *string `json:"address"`
}

// PatientUpdate is a partial patch. Every field records whether it was
// present in the body, so an omitted key never overwrites stored data.
type PatientUpdate struct {
	FirstName   Optional[string] `json:"first_name"`
	LastName    Optional[string] `json:"last_name"`
	DateOfBirth Optional[Date]   `json:"date_of_birth"`
	Gender      Optional[string] `json:"gender"`
	PhoneNumber Optional[string] `json:"phone_number"`
	Email       Optional[string] `json:"email"`
	Address     Optional[string] `json:"address"`
}

// Validate checks the fields that were actually set. first_name,
// last_name and date_of_birth back NOT NULL columns, so an explicit
// null there is rejected up front instead of failing in the store.
func (u *PatientUpdate) Validate() []FieldError {
	var errs []FieldError
	if u.FirstName.Set {
		if !u.FirstName.Valid {
			errs = append(errs, FieldError{"first_name", "must not be null"})
		} else if len(u.FirstName.Value) > 50 {
			errs = append(errs, FieldError{"first_name", "must be at most 50 characters"})
		}
	}
	if u.LastName.Set {
		if !u.LastName.Valid {
			errs = append(errs, FieldError{"last_name", "must not be null"})
		} else if len(u.LastName.Value) > 50 {
			errs = append(errs, FieldError{"last_name", "must be at most 50 characters"})
		}
	}
	if u.DateOfBirth.Set && !u.DateOfBirth.Valid {
		errs = append(errs, FieldError{"date_of_birth", "must not be null"})
	}
	if u.Gender.Set && u.Gender.Valid && len(u.Gender.Value) > 10 {
		errs = append(errs, FieldError{"gender", "must be at most 10 characters"})
	}
	if u.PhoneNumber.Set && u.PhoneNumber.Valid && len(u.PhoneNumber.Value) > 20 {
		errs = append(errs, FieldError{"phone_number", "must be at most 20 characters"})
	}
	if u.Email.Set && u.Email.Valid {
		if len(u.Email.Value) > 100 {
			errs = append(errs, FieldError{"email", "must be at most 100 characters"})
		} else if validate.Var(u.Email.Value, "email") != nil {
			errs = append(errs, FieldError{"email", "must be a valid email address"})
		}
	}
	return errs
}

// Apply merges the set fields into the loaded record. Unset fields keep
// their prior values; an explicit null clears the nullable columns.
func (u *PatientUpdate) Apply(p *Patient) {
	if u.FirstName.Set && u.FirstName.Valid {
		p.FirstName = u.FirstName.Value
	}
	if u.LastName.Set && u.LastName.Valid {
		p.LastName = u.LastName.Value
	}
	if u.DateOfBirth.Set && u.DateOfBirth.Valid {
		p.DateOfBirth = u.DateOfBirth.Value
	}
	if u.Gender.Set {
		p.Gender = optionalString(u.Gender)
	}
	if u.PhoneNumber.Set {
		p.PhoneNumber = optionalString(u.PhoneNumber)
	}
	if u.Email.Set {
		p.Email = optionalString(u.Email)
	}
	if u.Address.Set {
		p.Address = optionalString(u.Address)
	}
}

func optionalString(o Optional[string]) *string {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
