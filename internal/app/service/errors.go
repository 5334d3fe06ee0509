package service

import (
	"net/http"

	"github.com/globaltravelbg/package-feed-service/internal/pkg/exception"
)

var (
	ErrPackageNotFound = exception.ApplicationError{
		Message:    "package not found",
		StatusCode: http.StatusNotFound,
	}

	ErrPackageListUnavailable = exception.ApplicationError{
		Message:    "failed to fetch packages list",
		StatusCode: http.StatusInternalServerError,
	}

	ErrPackageDetailUnavailable = exception.ApplicationError{
		Message:    "failed to fetch package details",
		StatusCode: http.StatusInternalServerError,
	}

	ErrDestinationFeedUnavailable = exception.ApplicationError{
		Message:    "failed to fetch or parse destinations",
		StatusCode: http.StatusInternalServerError,
	}
)
