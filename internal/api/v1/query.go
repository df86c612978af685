package v1

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vmunix/streamdash/internal/dashboard"
)

const defaultLimit = 50

// selectionQuery is the query string form of a dashboard.Selection.
// Year fields are zero when absent.
type selectionQuery struct {
	YearMin  int    `json:"year_min" validate:"omitempty,gte=1800,lte=2200"`
	YearMax  int    `json:"year_max" validate:"omitempty,gte=1800,lte=2200,gtefield=YearMin"`
	Category string `json:"category" validate:"max=64"`
	Rating   string `json:"rating" validate:"max=32"`
	Country  string `json:"country" validate:"max=128"`
	Genre    string `json:"genre" validate:"max=128"`
}

// pageQuery is the paging window for list endpoints.
type pageQuery struct {
	Limit  int `json:"limit" validate:"gte=1,lte=500"`
	Offset int `json:"offset" validate:"gte=0"`
}

// queryError reports a malformed or invalid query string.
type queryError struct {
	msg    string
	fields map[string]string
}

func (e *queryError) Error() string { return e.msg }

func newValidator() *validator.Validate {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateQuery runs struct validation and converts failures to a *queryError
// keyed by query parameter.
func validateQuery(v *validator.Validate, q any) error {
	err := v.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = friendlyMessage(fe)
	}
	return &queryError{msg: "invalid query", fields: fields}
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "gtefield":
		return "must not be before year_min"
	default:
		return "is invalid"
	}
}

// queryInt parses an optional integer parameter.
func queryInt(r *http.Request, name string, defaultVal int) (int, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, &queryError{
			msg:    "invalid query",
			fields: map[string]string{name: "must be an integer"},
		}
	}
	return i, nil
}

// parseSelection reads the facet filters from the query string. A year range
// is applied only if year_min or year_max is present; the missing bound is
// taken from the dataset's year bounds.
func (s *Server) parseSelection(r *http.Request) (dashboard.Selection, error) {
	var q selectionQuery
	var err error
	if q.YearMin, err = queryInt(r, "year_min", 0); err != nil {
		return dashboard.Selection{}, err
	}
	if q.YearMax, err = queryInt(r, "year_max", 0); err != nil {
		return dashboard.Selection{}, err
	}
	values := r.URL.Query()
	q.Category = strings.TrimSpace(values.Get("category"))
	q.Rating = strings.TrimSpace(values.Get("rating"))
	q.Country = strings.TrimSpace(values.Get("country"))
	q.Genre = strings.TrimSpace(values.Get("genre"))

	hasYears := q.YearMin != 0 || q.YearMax != 0
	if hasYears {
		facets := s.deps.Dashboard.Facets()
		if q.YearMin == 0 {
			q.YearMin = min(facets.YearMin, q.YearMax)
		}
		if q.YearMax == 0 {
			q.YearMax = max(facets.YearMax, q.YearMin)
		}
	}

	if err := validateQuery(s.validate, q); err != nil {
		return dashboard.Selection{}, err
	}

	sel := dashboard.Selection{
		Category: q.Category,
		Rating:   q.Rating,
		Country:  q.Country,
		Genre:    q.Genre,
	}
	if hasYears {
		sel = sel.Between(q.YearMin, q.YearMax)
	}
	return sel, nil
}

// parsePage reads limit and offset.
func (s *Server) parsePage(r *http.Request) (pageQuery, error) {
	var p pageQuery
	var err error
	if p.Limit, err = queryInt(r, "limit", defaultLimit); err != nil {
		return p, err
	}
	if p.Offset, err = queryInt(r, "offset", 0); err != nil {
		return p, err
	}
	if err := validateQuery(s.validate, p); err != nil {
		return p, err
	}
	return p, nil
}
