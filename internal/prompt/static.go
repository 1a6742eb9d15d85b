package prompt

// Static is a Prompter with canned answers, used by tests and by
// non-interactive callers that already hold every value.
type Static struct {
	// Inputs maps prompt titles to answers. Missing titles fall back to the
	// prompt's default value.
	Inputs map[string]string

	// Secrets maps prompt titles to answers.
	Secrets map[string]string

	// ConfirmAnswer is returned by every Confirm call.
	ConfirmAnswer bool

	// Err, when set, is returned by every method.
	Err error
}

// Input returns the canned answer for title, or the default.
func (s *Static) Input(title, defaultValue string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if v, ok := s.Inputs[title]; ok {
		return v, nil
	}
	return defaultValue, nil
}

// Secret returns the canned secret for title.
func (s *Static) Secret(title string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Secrets[title], nil
}

// Confirm returns the canned confirmation answer.
func (s *Static) Confirm(title string, defaultValue bool) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	return s.ConfirmAnswer, nil
}
