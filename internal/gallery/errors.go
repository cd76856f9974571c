package gallery

import "fmt"

// AddError is returned when a canvas cannot be registered because its
// surface could not be allocated. The gallery is left unchanged apart from
// the consumed ID.
type AddError struct {
	ID   ID
	Kind Kind
	Err  error
}

func (e *AddError) Error() string {
	return fmt.Sprintf("gallery: add %s canvas %d: %v", e.Kind, e.ID, e.Err)
}

func (e *AddError) Unwrap() error {
	return e.Err
}
