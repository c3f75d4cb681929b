package category

import (
	"MyPockit/pkg/response"
	"net/http"
)

var (
	ErrCategoryNotFound = response.NewError(http.StatusNotFound, "category not found")
	ErrFetchCategories  = response.NewError(http.StatusInternalServerError, "Failed to fetch categories. Try again later")
)
