package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CreateSessionRequest registers a Gemini API key and opens a coaching session.
type CreateSessionRequest struct {
	APIKey string `json:"api_key" validate:"required,min=1"`
}

// GuideRequest asks the expert team for one layered study guide.
// InputData content is embedded verbatim into outbound prompts; required-field
// presence is enforced here at the caller boundary, not inside the pipeline.
type GuideRequest struct {
	ServiceType string            `json:"service_type" validate:"required,min=1"`
	InputData   map[string]string `json:"input_data"`
}

// Validate validates the CreateSessionRequest using the validator.
func (r *CreateSessionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GuideRequest using the validator, then checks that
// every field the service type requires is present and non-empty.
func (r *GuideRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}

	st := ParseServiceType(r.ServiceType)
	for _, key := range st.RequiredInputKeys() {
		if r.InputData[key] == "" {
			return fmt.Errorf("input_data field %q is required for service %q", key, st)
		}
	}
	return nil
}
