// Package handler contains the echo handlers for the spatial HTTP API.
package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PagedResponse is the list envelope: the unpaged total plus the page
// numbers of the neighbouring pages, nil at either end.
type PagedResponse struct {
	Count    int64 `json:"count"`
	Next     *int  `json:"next"`
	Previous *int  `json:"previous"`
	Results  any   `json:"results"`
}

func newPagedResponse(count int64, page, pageSize int, results any) *PagedResponse {
	resp := &PagedResponse{
		Count:   count,
		Results: results,
	}

	if page > 1 {
		previous := page - 1
		resp.Previous = &previous
	}
	if int64(page)*int64(pageSize) < count {
		next := page + 1
		resp.Next = &next
	}

	return resp
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed so the usecase layer applies its defaults.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}

// queryBool parses a boolean query parameter. Absent or malformed values
// yield nil, which disables the filter.
func queryBool(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &value
}

// queryFloat parses a float query parameter. Absent or malformed values
// yield nil, which disables the filter.
func queryFloat(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &value
}
