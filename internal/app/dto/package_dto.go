package dto

import (
	"fmt"
	"net/http"

	"github.com/globaltravelbg/package-feed-service/internal/pkg/exception"
)

// PackageSummary is one entry of the package listing. Thumbnail stays a
// pointer so the response carries an explicit null when the package has no
// images.
type PackageSummary struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Duration   int      `json:"duration"`
	Overnights int      `json:"overnights"`
	Transport  string   `json:"transport"`
	Countries  []string `json:"countries"`
	Cities     []string `json:"cities"`
	MinPrice   string   `json:"minPrice"`
	PriceNote  string   `json:"priceNote"`
	Thumbnail  *string  `json:"thumbnail"`
	Period     Period   `json:"period"`
}

type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type NamedEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PriceInfo struct {
	Price          string `json:"price"`
	PriceNote      string `json:"priceNote"`
	PriceNoteShort string `json:"priceNoteShort"`
}

type ScheduleEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

type Hotel struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Country          string   `json:"country"`
	City             string   `json:"city"`
	Website          string   `json:"website,omitempty"`
	Images           []string `json:"images"`
	Overview         string   `json:"overview,omitempty"`
	Details          string   `json:"details,omitempty"`
	Board            string   `json:"board,omitempty"`
	MinPriceInDouble *float64 `json:"minPriceInDouble,omitempty"`
	Currency         string   `json:"currency,omitempty"`
}

type AdditionalPayment struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type AdditionalExcursion struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Type     string   `json:"type,omitempty"`
	Price    string   `json:"price,omitempty"`
	Images   []string `json:"images"`
	Overview string   `json:"overview,omitempty"`
	Details  string   `json:"details,omitempty"`
}

// PackageDetail is the full nested record served by /api/packages/{id}.
type PackageDetail struct {
	ID                   string                `json:"id"`
	Title                string                `json:"title"`
	Subtitle             string                `json:"subtitle"`
	Duration             int                   `json:"duration"`
	Overnights           int                   `json:"overnights"`
	Transport            string                `json:"transport"`
	Countries            []NamedEntity         `json:"countries"`
	Cities               []NamedEntity         `json:"cities"`
	MinPrice             PriceInfo             `json:"minPrice"`
	Board                string                `json:"board,omitempty"`
	PriceNote1           string                `json:"priceNote1,omitempty"`
	PriceNote2           string                `json:"priceNote2,omitempty"`
	Images               []string              `json:"images"`
	Period               Period                `json:"period"`
	Overview             string                `json:"overview,omitempty"`
	AdditionalConditions string                `json:"additionalConditions,omitempty"`
	DailySchedule        []ScheduleEntry       `json:"dailySchedule"`
	Hotels               []Hotel               `json:"hotels"`
	AdditionalPayments   []AdditionalPayment   `json:"additionalPayments"`
	AdditionalExcursions []AdditionalExcursion `json:"additionalExcursions"`
}

// PackageDetailRequest carries the path parameter of the detail endpoint.
type PackageDetailRequest struct {
	ID string `json:"id" validate:"required,numeric"`
}

func (r *PackageDetailRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *PackageDetailRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}
