package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/globaltravelbg/package-feed-service/internal/app/dto"
)

type CatalogService interface {
	PackageList(ctx context.Context) ([]dto.PackageSummary, error)
	PackageDetail(ctx context.Context, id string) (dto.PackageDetail, error)
	Destinations(ctx context.Context) ([]dto.Destination, error)
}

type CatalogEndpoint struct {
	PackageList   endpoint.Endpoint
	PackageDetail endpoint.Endpoint
	Destinations  endpoint.Endpoint
}

type Endpoints struct {
	Catalog CatalogEndpoint
}

func MakeCatalogEndpoint(service CatalogService) CatalogEndpoint {
	return CatalogEndpoint{
		PackageList:   makePackageListEndpoint(service),
		PackageDetail: makePackageDetailEndpoint(service),
		Destinations:  makeDestinationsEndpoint(service),
	}
}

func makePackageListEndpoint(service CatalogService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		summaries, err := service.PackageList(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog service: %w", err)
		}

		return summaries, nil
	}
}

func makePackageDetailEndpoint(service CatalogService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PackageDetailRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		detail, err := service.PackageDetail(ctx, request.ID)
		if err != nil {
			return nil, fmt.Errorf("catalog service: %w", err)
		}

		return detail, nil
	}
}

func makeDestinationsEndpoint(service CatalogService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		destinations, err := service.Destinations(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog service: %w", err)
		}

		return destinations, nil
	}
}
