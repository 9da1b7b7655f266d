package errx

import "fmt"

// Code is a registered error code, e.g. JOB_NOT_FOUND
type Code string

type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry groups the error codes of one domain under a common prefix
type Registry struct {
	prefix string
	codes  map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]definition),
	}
}

// Register adds a code to the registry. Registering the same code twice panics.
func (r *Registry) Register(name string, errType Type, httpStatus int, message string) Code {
	code := Code(fmt.Sprintf("%s_%s", r.prefix, name))
	if _, exists := r.codes[code]; exists {
		panic(fmt.Sprintf("errx: duplicate error code %s", code))
	}

	r.codes[code] = definition{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return code
}

// New builds an error for a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.codes[code]
	if !ok {
		return &Error{
			Code:       string(code),
			Type:       TypeInternal,
			Message:    "unregistered error code",
			HTTPStatus: statusFor(TypeInternal),
		}
	}

	return &Error{
		Code:       string(code),
		Type:       def.errType,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}
