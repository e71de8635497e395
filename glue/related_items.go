package glue

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/docuglue/glue-go/glue/jsonapi"
)

const typeRelatedItems = "related_items"

// RelatedItemsService manages links between a resource and other
// resources.
type RelatedItemsService service

// RelatedItemSpec describes one link to create. Notes is optional: nil
// serializes as an empty string, an explicit empty string is sent
// as-is.
type RelatedItemSpec struct {
	DestinationID   int64           `json:"destination_id"`
	DestinationType DestinationType `json:"destination_type"`
	Notes           *string         `json:"notes,omitempty"`
}

func (s RelatedItemSpec) validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.DestinationID, validation.Required),
		validation.Field(&s.DestinationType, validation.Required, validation.In(destinationTypes()...)),
	)
}

type relatedItemAttributes struct {
	DestinationID   int64           `json:"destination_id"`
	DestinationType DestinationType `json:"destination_type"`
	Notes           string          `json:"notes"`
}

type relatedItemUpdateAttributes struct {
	Notes string `json:"notes"`
}

type deletionAttributes struct {
	ID int64 `json:"id"`
}

func relatedItemResource(spec RelatedItemSpec) jsonapi.Resource[relatedItemAttributes] {
	attrs := relatedItemAttributes{
		DestinationID:   spec.DestinationID,
		DestinationType: spec.DestinationType,
	}
	if spec.Notes != nil {
		attrs.Notes = *spec.Notes
	}

	return jsonapi.Resource[relatedItemAttributes]{
		Type:       typeRelatedItems,
		Attributes: attrs,
	}
}

// buildRelatedItemsCreate turns the input into a request document.
// Batch entries are validated up front; one bad entry aborts the whole
// build.
func buildRelatedItemsCreate(in Input[RelatedItemSpec]) (jsonapi.Document[relatedItemAttributes], error) {
	var doc jsonapi.Document[relatedItemAttributes]

	if in.single != nil {
		return jsonapi.NewDocument(relatedItemResource(*in.single)), nil
	}

	if len(in.batch) == 0 {
		return doc, &ValidationError{Index: -1, Err: errors.New("at least one related item is required")}
	}

	rs := make([]jsonapi.Resource[relatedItemAttributes], 0, len(in.batch))
	for i, spec := range in.batch {
		if err := spec.validate(); err != nil {
			return doc, &ValidationError{Index: i, Err: err}
		}
		rs = append(rs, relatedItemResource(spec))
	}

	return jsonapi.NewBatchDocument(rs), nil
}

// deletionDocument builds the shared deletion shape: one id yields a
// single object under data, several yield an array in input order.
func deletionDocument(resourceType string, ids []int64) (jsonapi.Document[deletionAttributes], error) {
	var doc jsonapi.Document[deletionAttributes]

	if len(ids) == 0 {
		return doc, &ValidationError{Index: -1, Err: errors.New("at least one id is required")}
	}

	if len(ids) == 1 {
		return jsonapi.NewDocument(jsonapi.Resource[deletionAttributes]{
			Type:       resourceType,
			Attributes: deletionAttributes{ID: ids[0]},
		}), nil
	}

	rs := make([]jsonapi.Resource[deletionAttributes], 0, len(ids))
	for _, id := range ids {
		rs = append(rs, jsonapi.Resource[deletionAttributes]{
			Type:       resourceType,
			Attributes: deletionAttributes{ID: id},
		})
	}

	return jsonapi.NewBatchDocument(rs), nil
}

// Create links one or more destinations to the given resource.
func (s *RelatedItemsService) Create(ctx context.Context, rt ResourceType, resourceID int64, in Input[RelatedItemSpec]) (*jsonapi.Response, error) {
	if err := rt.validate(); err != nil {
		return nil, err
	}

	doc, err := buildRelatedItemsCreate(in)
	if err != nil {
		return nil, err
	}

	return s.client.post(ctx, relationshipPath(rt, resourceID, typeRelatedItems), doc)
}

// Update replaces the notes on an existing related item.
func (s *RelatedItemsService) Update(ctx context.Context, rt ResourceType, resourceID, relatedItemID int64, notes string) (*jsonapi.Response, error) {
	if err := rt.validate(); err != nil {
		return nil, err
	}

	doc := jsonapi.NewDocument(jsonapi.Resource[relatedItemUpdateAttributes]{
		Type:       typeRelatedItems,
		Attributes: relatedItemUpdateAttributes{Notes: notes},
	})

	return s.client.patch(ctx, memberPath(rt, resourceID, typeRelatedItems, relatedItemID), doc)
}

// Delete removes one or more related items from the given resource.
func (s *RelatedItemsService) Delete(ctx context.Context, rt ResourceType, resourceID int64, ids ...int64) (*jsonapi.Response, error) {
	if err := rt.validate(); err != nil {
		return nil, err
	}

	doc, err := deletionDocument(typeRelatedItems, ids)
	if err != nil {
		return nil, err
	}

	return s.client.delete(ctx, relationshipPath(rt, resourceID, typeRelatedItems), doc)
}
