// Package validator wraps the krid checks in declarative, translation-friendly
// rules so that Korean identifiers and phone numbers can be validated alongside
// other form fields.
//
// A Rule pairs a boolean Check with the ValidationError reported when the check
// fails. Apply evaluates any number of rules and aggregates the failures into a
// ValidationErrors value, which implements error.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidRRN("rrn", form.RRN),
//	    validator.ValidKoreanPhone("phone", form.Phone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // verrs.Get(field) holds the messages,
//	        // verrs.GetErrors(field) the translation keys and values.
//	    }
//	}
//
// # Error Handling
//
// Rules never panic and never return errors themselves. Use errors.As or
// ExtractValidationErrors to get at the field-level details of an Apply
// result.
//
// # Thread Safety
//
// Rules capture their inputs by value and hold no shared state, so they can be
// built and applied from multiple goroutines.
package validator
