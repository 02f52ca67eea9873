package api

import (
	"fmt"
	"net/http"

	"github.com/plantkeeper/plantkeeper/internal/common"
)

// HTTPError is a non-2xx backend response. Body holds a short snippet of the
// response body for log interpolation; user-facing messages stay generic.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Body)
}

// Is lets a 404 match common.ErrNotFound through errors.Is.
func (e *HTTPError) Is(target error) bool {
	return target == common.ErrNotFound && e.Status == http.StatusNotFound
}
