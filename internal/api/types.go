package api

// Pass represents a server-issued pass record. Unknown fields in the
// response are ignored; url is absent until the server assigns one.
type Pass struct {
	PassTypeIdentifier string `json:"passTypeIdentifier"`
	SerialNumber       string `json:"serialNumber"`
	URL                string `json:"url,omitempty"`
}

// passURLResponse represents the GET /passes/{type}/{serial}/url
// response.
type passURLResponse struct {
	URL string `json:"url"`
}

// emailRequest represents the POST /passes/{type}/{serial}/email
// request.
type emailRequest struct {
	Email string `json:"email"`
}

// errorEnvelope is the JSON error body the API sends on failures.
type errorEnvelope struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}
