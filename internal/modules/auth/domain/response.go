package domain

// Flow names one of the three credential exchanges with the backend.
type Flow string

const (
	FlowLogin     Flow = "login"
	FlowRegister  Flow = "register"
	FlowFederated Flow = "federated"
)

func (f Flow) Path() string {
	switch f {
	case FlowRegister:
		return "/register/"
	case FlowFederated:
		return "/google/"
	default:
		return "/login/"
	}
}

func (f Flow) FallbackMessage() string {
	switch f {
	case FlowRegister:
		return "Registration failed"
	case FlowFederated:
		return "Google authentication failed"
	default:
		return "Login failed"
	}
}

// registrationFields are the serializer fields whose validation errors the
// backend reports as arrays, in the order they are surfaced.
var registrationFields = []string{"username", "email", "password"}

// ErrorMessage chooses the message of a failed response: `error`, then
// `detail`, then for registration the first field validation error, then
// the flow's fallback.
func ErrorMessage(flow Flow, body map[string]any) string {
	if msg := stringValue(body["error"]); msg != "" {
		return msg
	}
	if msg := stringValue(body["detail"]); msg != "" {
		return msg
	}
	if flow == FlowRegister {
		for _, field := range registrationFields {
			if msg := firstString(body[field]); msg != "" {
				return msg
			}
		}
	}
	return flow.FallbackMessage()
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func firstString(v any) string {
	switch t := v.(type) {
	case []any:
		if len(t) > 0 {
			return stringValue(t[0])
		}
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	case string:
		return t
	}
	return ""
}
