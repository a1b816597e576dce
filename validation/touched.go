package validation

// Touched tracks which form fields the user has interacted with
// (blurred). It gates when errors are surfaced: a field's error is shown
// only once the field has been touched.
type Touched map[string]bool

// NewTouched creates an empty touched set.
func NewTouched() Touched {
	return Touched{}
}

// Touch marks a single field as interacted with and returns the set for
// chaining.
func (t Touched) Touch(field string) Touched {
	t[field] = true
	return t
}

// TouchAll marks every given field as interacted with. Forms call it on
// submit so all errors surface together.
func (t Touched) TouchAll(fields ...string) Touched {
	for _, field := range fields {
		t[field] = true
	}
	return t
}

// Visible filters errs down to fields present in the touched set. The
// input maps are not modified.
func Visible(errs Errors, touched Touched) Errors {
	visible := Errors{}
	for field, msg := range errs {
		if touched[field] {
			visible[field] = msg
		}
	}
	return visible
}
