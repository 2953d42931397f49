package postgres

import (
	"slices"

	"vitrine/internal/domain/entity"
	"vitrine/internal/errors"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// toListingDomain is the record transform every listing read goes through.
// Missing photos become an empty list, a missing location becomes an empty
// address and a missing featured flag becomes false. A status outside the
// known set is rejected.
func toListingDomain(data *model.ListingModel) (*entity.Listing, error) {
	status, err := entity.ParseListingStatus(data.Status)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", data.ID)
	}

	photos := []string{}
	if len(data.Photos) > 0 {
		photos = slices.Clone([]string(data.Photos))
	}

	location := entity.Location{}
	if data.Location.Valid {
		loc := data.Location.Data()
		location = entity.Location{
			Address:       loc.Address,
			Latitude:      loc.Latitude,
			Longitude:     loc.Longitude,
			GoogleMapsURL: loc.GoogleMapsURL,
		}
	}

	featured := false
	if data.Featured != nil {
		featured = *data.Featured
	}

	return &entity.Listing{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Photos:      photos,
		Phone:       data.Phone,
		WhatsApp:    data.WhatsApp,
		Instagram:   data.Instagram,
		Location:    location,
		Status:      status,
		Category:    data.Category,
		Featured:    featured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

func toListingsDomain(rows []*model.ListingModel) ([]*entity.Listing, error) {
	listings := make([]*entity.Listing, 0, len(rows))
	for _, row := range rows {
		listing, err := toListingDomain(row)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func fromLocationDomain(loc entity.Location) model.NullLocation {
	return model.NewNullLocation(model.LocationColumn{
		Address:       loc.Address,
		Latitude:      loc.Latitude,
		Longitude:     loc.Longitude,
		GoogleMapsURL: loc.GoogleMapsURL,
	})
}

func fromListingDomain(ownerID uuid.UUID, data *entity.Listing) *model.ListingModel {
	featured := data.Featured

	return &model.ListingModel{
		ID:          data.ID,
		OwnerID:     ownerID,
		Name:        data.Name,
		Description: data.Description,
		Photos:      pq.StringArray(slices.Clone(data.Photos)),
		Phone:       data.Phone,
		WhatsApp:    data.WhatsApp,
		Instagram:   data.Instagram,
		Location:    fromLocationDomain(data.Location),
		Status:      string(data.Status),
		Category:    data.Category,
		Featured:    &featured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// patchColumns translates the present fields of patch into column updates.
func patchColumns(patch *entity.ListingPatch) map[string]any {
	columns := map[string]any{}
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Description != nil {
		columns["description"] = *patch.Description
	}
	if patch.Photos != nil {
		columns["photos"] = pq.StringArray(slices.Clone(patch.Photos))
	}
	if patch.Phone != nil {
		columns["phone"] = *patch.Phone
	}
	if patch.WhatsApp != nil {
		columns["whatsapp"] = *patch.WhatsApp
	}
	if patch.Instagram != nil {
		columns["instagram"] = *patch.Instagram
	}
	if patch.Location != nil {
		columns["location"] = fromLocationDomain(*patch.Location)
	}
	if patch.Status != nil {
		columns["status"] = string(*patch.Status)
	}
	if patch.Category != nil {
		columns["category"] = *patch.Category
	}
	if patch.Featured != nil {
		columns["featured"] = *patch.Featured
	}

	return columns
}
