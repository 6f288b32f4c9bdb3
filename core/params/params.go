package params

import (
	"net/url"
	"strconv"

	"planit-api/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams carries the common list-endpoint query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string

	extra url.Values
}

// NewQueryParams parses pagination parameters from the request, clamping
// them to sane bounds.
func NewQueryParams(c echo.Context) QueryParams {
	p := QueryParams{
		PageNumber: constants.DefaultPageNumber,
		PageSize:   constants.DefaultPageSize,
		Search:     c.QueryParam("search"),
		extra:      url.Values{},
	}

	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && n > 0 {
		if n > constants.MaxPageSize {
			n = constants.MaxPageSize
		}
		p.PageSize = n
	}

	return p
}

// Offset returns the zero-based row offset for the current page.
func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// Add records an extra query parameter for outbound request building.
func (p *QueryParams) Add(key, value string) {
	if p.extra == nil {
		p.extra = url.Values{}
	}
	p.extra.Add(key, value)
}

// Encode renders the parameters as a query string.
func (p QueryParams) Encode() string {
	v := url.Values{}
	for key, values := range p.extra {
		v[key] = values
	}
	v.Set("page", strconv.Itoa(p.PageNumber))
	v.Set("pageSize", strconv.Itoa(p.PageSize))
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v.Encode()
}
