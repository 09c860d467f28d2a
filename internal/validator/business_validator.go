package validator

// ValidateSubmissionTarget requires exactly one of assignment_id or quiz_id.
func (v *Validator) ValidateSubmissionTarget(req *SubmissionCreateRequest) error {
	switch {
	case req.AssignmentID == nil && req.QuizID == nil:
		return ValidationErrors{{
			Field:   "assignment_id",
			Message: "one of assignment_id or quiz_id is required",
			Rule:    "submission_target",
		}}
	case req.AssignmentID != nil && req.QuizID != nil:
		return ValidationErrors{{
			Field:   "quiz_id",
			Message: "only one of assignment_id or quiz_id may be set",
			Rule:    "submission_target",
		}}
	}
	return nil
}

// ValidateSubmissionCreate runs the tag rules and the target rule together.
func (v *Validator) ValidateSubmissionCreate(req *SubmissionCreateRequest) error {
	var errs ValidationErrors
	if err := v.Validate(req); err != nil {
		errs = append(errs, err.(ValidationErrors)...)
	}
	if err := v.ValidateSubmissionTarget(req); err != nil {
		errs = append(errs, err.(ValidationErrors)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
