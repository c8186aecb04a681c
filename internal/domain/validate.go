package domain

// Scalar limits shared with the database schema. The schema enforces the
// same bounds via domains; these checks fail earlier and with a field name.
const (
	TitleMaxLength        = 255
	LanguageCodeMaxLength = 5
	LinkMaxLength         = 2048
	ChannelIDMaxLength    = 32
	VideoIDMaxLength      = 16
	PlaylistIDMaxLength   = 40
)

func validateTitle(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	if len(value) > TitleMaxLength {
		return &ValidationError{Field: field, Reason: "must be at most 255 characters"}
	}
	return nil
}

// Language codes are expected to look like BCP-47 tags ("en-US"); only the
// length bound is enforced.
func validateLanguageCode(value string) error {
	if value == "" {
		return &ValidationError{Field: "language_code", Reason: "must not be empty"}
	}
	if len(value) > LanguageCodeMaxLength {
		return &ValidationError{Field: "language_code", Reason: "must be at most 5 characters"}
	}
	return nil
}

func validateExternalID(field, value string, max int) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	if len(value) > max {
		return &ValidationError{Field: field, Reason: "exceeds maximum length"}
	}
	return nil
}

func validateOptionalURL(field string, value *string) error {
	if value != nil && len(*value) > LinkMaxLength {
		return &ValidationError{Field: field, Reason: "must be at most 2048 characters"}
	}
	return nil
}
