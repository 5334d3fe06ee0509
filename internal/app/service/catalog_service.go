package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/globaltravelbg/package-feed-service/internal/app/dto"
	"github.com/globaltravelbg/package-feed-service/internal/pkg/exception"
	"github.com/globaltravelbg/package-feed-service/internal/pkg/feed"
	"github.com/globaltravelbg/package-feed-service/internal/pkg/feedtext"
)

const defaultListLimit = 20

// FeedFetcher fetches one feed endpoint and decodes the document into out.
type FeedFetcher interface {
	Fetch(ctx context.Context, path string, out any) error
}

// CatalogService projects the upstream feed into the client-facing package
// and destination records. Everything is derived fresh per call; nothing is
// cached across requests.
type CatalogService struct {
	Feed      FeedFetcher
	ListLimit int
}

func NewCatalogService(fetcher FeedFetcher, listLimit int) *CatalogService {
	if listLimit <= 0 {
		listLimit = defaultListLimit
	}

	return &CatalogService{
		Feed:      fetcher,
		ListLimit: listLimit,
	}
}

// PackageList fetches the package index and enriches each stub with a
// thumbnail from its detail endpoint. The index may list retired ids whose
// detail fetch 404s; those entries are logged and dropped rather than
// failing the whole listing. Surviving entries keep index order.
func (s *CatalogService) PackageList(ctx context.Context) ([]dto.PackageSummary, error) {
	var index feed.PackagesDocument
	if err := s.Feed.Fetch(ctx, "Packages", &index); err != nil {
		return nil, withCause(ErrPackageListUnavailable, err)
	}

	stubs := index.Packages
	if len(stubs) > s.ListLimit {
		stubs = stubs[:s.ListLimit]
	}

	// one detail fetch per stub, all in flight at once; a failed stub marks
	// its slot nil instead of failing the batch
	enriched := make([]*dto.PackageSummary, len(stubs))
	group, groupCtx := errgroup.WithContext(ctx)

	for i, stub := range stubs {
		i, stub := i, stub
		group.Go(func() error {
			summary, err := s.enrichStub(groupCtx, stub)
			if err != nil {
				slog.WarnContext(ctx, "package failed to fetch details, skipping",
					slog.String("id", stub.ID),
					slog.String("title", feedtext.Decode(stub.Title)),
					slog.Any("error", err))

				return nil
			}

			enriched[i] = summary

			return nil
		})
	}

	_ = group.Wait() // workers swallow their own errors

	summaries := make([]dto.PackageSummary, 0, len(enriched))
	for _, summary := range enriched {
		if summary != nil {
			summaries = append(summaries, *summary)
		}
	}

	return summaries, nil
}

// enrichStub fetches the stub's detail document solely for its first image.
func (s *CatalogService) enrichStub(ctx context.Context, stub feed.PackageStub) (*dto.PackageSummary, error) {
	var detail feed.PackageDocument
	if err := s.Feed.Fetch(ctx, "Package/"+stub.ID, &detail); err != nil {
		return nil, err
	}

	var thumbnail *string
	if images := detail.Images.Items; len(images) > 0 {
		url := images[0].URL
		thumbnail = &url
	}

	return &dto.PackageSummary{
		ID:         stub.ID,
		Title:      feedtext.Decode(stub.Title),
		Subtitle:   feedtext.Decode(stub.Subtitle),
		Duration:   int(stub.Duration),
		Overnights: int(stub.Overnights),
		Transport:  feedtext.Decode(stub.Transport.Name),
		Countries:  namesOf(stub.Countries.Items),
		Cities:     namesOf(stub.Cities.Items),
		MinPrice:   feedtext.Decode(stub.MinPrice.Price),
		PriceNote:  feedtext.Decode(stub.MinPrice.PriceNoteShort),
		Thumbnail:  thumbnail,
		Period: dto.Period{
			From: stub.Period.FromDate,
			To:   stub.Period.ToDate,
		},
	}, nil
}

// PackageDetail fetches one package's detail feed and projects the complete
// nested record. A missing upstream package maps to ErrPackageNotFound; any
// other failure maps to ErrPackageDetailUnavailable.
func (s *CatalogService) PackageDetail(ctx context.Context, id string) (dto.PackageDetail, error) {
	var doc feed.PackageDocument
	if err := s.Feed.Fetch(ctx, "Package/"+id, &doc); err != nil {
		var upstream *feed.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return dto.PackageDetail{}, ErrPackageNotFound
		}

		return dto.PackageDetail{}, withCause(ErrPackageDetailUnavailable, err)
	}

	if !doc.HasPackageRoot() || doc.ID == "" {
		return dto.PackageDetail{}, ErrPackageNotFound
	}

	return projectDetail(doc), nil
}

func projectDetail(doc feed.PackageDocument) dto.PackageDetail {
	countries := make([]dto.NamedEntity, len(doc.Countries.Items))
	for i, country := range doc.Countries.Items {
		countries[i] = dto.NamedEntity{
			ID:   fallbackID(country.ID, i),
			Name: feedtext.DecodeRich(country.Name),
		}
	}

	cities := make([]dto.NamedEntity, len(doc.Cities.Items))
	for i, city := range doc.Cities.Items {
		cities[i] = dto.NamedEntity{
			ID:   fallbackID(city.ID, i),
			Name: feedtext.DecodeRich(city.Name),
		}
	}

	schedule := make([]dto.ScheduleEntry, len(doc.DailySchedule.Items))
	for i, day := range doc.DailySchedule.Items {
		schedule[i] = dto.ScheduleEntry{
			ID:      fallbackID(day.ID, i),
			Title:   feedtext.DecodeRich(day.Title),
			Details: feedtext.DecodeRich(day.Details),
		}
	}

	hotels := make([]dto.Hotel, len(doc.Hotels.Items))
	for i, hotel := range doc.Hotels.Items {
		var minPrice *float64
		if hotel.MinPriceInDouble != 0 {
			price := float64(hotel.MinPriceInDouble)
			minPrice = &price
		}

		hotels[i] = dto.Hotel{
			ID:               fallbackID(hotel.ID, i),
			Name:             feedtext.DecodeRich(hotel.Name),
			Country:          feedtext.DecodeRich(hotel.Country.Name),
			City:             feedtext.DecodeRich(hotel.City.Name),
			Website:          hotel.Website,
			Images:           urlsOf(hotel.Images.Items),
			Overview:         feedtext.DecodeRich(hotel.Overview),
			Details:          feedtext.DecodeRich(hotel.Details),
			Board:            feedtext.DecodeRich(hotel.Board.Name),
			MinPriceInDouble: minPrice,
			Currency:         hotel.Currency,
		}
	}

	payments := make([]dto.AdditionalPayment, len(doc.AdditionalPayments.Items))
	for i, payment := range doc.AdditionalPayments.Items {
		currency := payment.Currency
		if currency == "" {
			currency = "BGN"
		}

		payments[i] = dto.AdditionalPayment{
			Title:    feedtext.DecodeRich(payment.Title),
			Price:    payment.Price,
			Currency: currency,
		}
	}

	excursions := make([]dto.AdditionalExcursion, len(doc.AdditionalExcursions.Items))
	for i, excursion := range doc.AdditionalExcursions.Items {
		excursions[i] = dto.AdditionalExcursion{
			ID:       fallbackID(excursion.ID, i),
			Title:    feedtext.DecodeRich(excursion.Title),
			Subtitle: feedtext.DecodeRich(excursion.Subtitle),
			Type:     feedtext.DecodeRich(excursion.Type),
			Price:    feedtext.DecodeRich(excursion.Price),
			Images:   urlsOf(excursion.Images.Items),
			Overview: feedtext.DecodeRich(excursion.Overview),
			Details:  feedtext.DecodeRich(excursion.Details),
		}
	}

	return dto.PackageDetail{
		ID:         doc.ID,
		Title:      feedtext.DecodeRich(doc.Title),
		Subtitle:   feedtext.DecodeRich(doc.Subtitle),
		Duration:   int(doc.Duration),
		Overnights: int(doc.Overnights),
		Transport:  feedtext.DecodeRich(doc.Transport.Name),
		Countries:  countries,
		Cities:     cities,
		MinPrice: dto.PriceInfo{
			Price:          feedtext.DecodeRich(doc.MinPrice.Price),
			PriceNote:      feedtext.DecodeRich(doc.MinPrice.PriceNote),
			PriceNoteShort: feedtext.DecodeRich(doc.MinPrice.PriceNoteShort),
		},
		Board:      feedtext.DecodeRich(doc.Board.Name),
		PriceNote1: feedtext.DecodeRich(doc.PriceNote1),
		PriceNote2: feedtext.DecodeRich(doc.PriceNote2),
		Images:     urlsOf(doc.Images.Items),
		Period: dto.Period{
			From: doc.Period.FromDate,
			To:   doc.Period.ToDate,
		},
		Overview:             feedtext.DecodeRich(doc.Overview),
		AdditionalConditions: feedtext.DecodeRich(doc.AdditionalConditions),
		DailySchedule:        schedule,
		Hotels:               hotels,
		AdditionalPayments:   payments,
		AdditionalExcursions: excursions,
	}
}

// Destinations flattens the two-level destination taxonomy into one list:
// each country followed by its cities, in upstream document order. Cities
// carry their owning country's name instead of nesting.
func (s *CatalogService) Destinations(ctx context.Context) ([]dto.Destination, error) {
	var doc feed.DestinationsDocument
	if err := s.Feed.Fetch(ctx, "Destinations", &doc); err != nil {
		return nil, withCause(ErrDestinationFeedUnavailable, err)
	}

	destinations := make([]dto.Destination, 0, len(doc.Countries))

	for _, country := range doc.Countries {
		countryName := feedtext.Decode(country.Name)

		destinations = append(destinations, dto.Destination{
			ID:          "country-" + country.ID,
			Name:        countryName,
			Type:        dto.DestinationKindCountry,
			CountryName: countryName,
		})

		for _, city := range country.Cities.Items {
			destinations = append(destinations, dto.Destination{
				ID:          "city-" + city.ID,
				Name:        feedtext.Decode(city.Name),
				Type:        dto.DestinationKindCity,
				CountryName: countryName,
			})
		}
	}

	return destinations, nil
}

// fallbackID substitutes a positional id when the upstream omits one, so the
// same upstream document always projects to the same response.
func fallbackID(id string, index int) string {
	if id != "" {
		return id
	}

	return strconv.Itoa(index + 1)
}

func namesOf(refs []feed.NamedRef) []string {
	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = feedtext.Decode(ref.Name)
	}

	return names
}

func urlsOf(images []feed.Image) []string {
	urls := make([]string, len(images))
	for i, image := range images {
		urls[i] = image.URL
	}

	return urls
}

func withCause(base exception.ApplicationError, cause error) exception.ApplicationError {
	base.Cause = cause

	return base
}
