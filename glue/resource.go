package glue

import "fmt"

// ResourceType identifies the parent resource a relationship hangs off.
type ResourceType string

const (
	ResourceTypeChecklists         ResourceType = "checklists"
	ResourceTypeChecklistTemplates ResourceType = "checklist_templates"
	ResourceTypeConfigurations     ResourceType = "configurations"
	ResourceTypeContacts           ResourceType = "contacts"
	ResourceTypeDocuments          ResourceType = "documents"
	ResourceTypeDomains            ResourceType = "domains"
	ResourceTypeLocations          ResourceType = "locations"
	ResourceTypePasswords          ResourceType = "passwords"
	ResourceTypeSSLCertificates    ResourceType = "ssl_certificates"
	ResourceTypeFlexibleAssets     ResourceType = "flexible_assets"
	ResourceTypeTickets            ResourceType = "tickets"
)

var resourceTypes = map[ResourceType]struct{}{
	ResourceTypeChecklists:         {},
	ResourceTypeChecklistTemplates: {},
	ResourceTypeConfigurations:     {},
	ResourceTypeContacts:           {},
	ResourceTypeDocuments:          {},
	ResourceTypeDomains:            {},
	ResourceTypeLocations:          {},
	ResourceTypePasswords:          {},
	ResourceTypeSSLCertificates:    {},
	ResourceTypeFlexibleAssets:     {},
	ResourceTypeTickets:            {},
}

func (t ResourceType) validate() error {
	if _, ok := resourceTypes[t]; !ok {
		return &ValidationError{Index: -1, Err: fmt.Errorf("unknown resource type: %q", string(t))}
	}
	return nil
}

// DestinationType is the kind of resource a related item points at.
type DestinationType string

const (
	DestinationTypeUser              DestinationType = "User"
	DestinationTypeChecklist         DestinationType = "Checklist"
	DestinationTypeChecklistTemplate DestinationType = "Checklist Template"
	DestinationTypeContact           DestinationType = "Contact"
	DestinationTypeConfiguration     DestinationType = "Configuration"
	DestinationTypeDattoDevice       DestinationType = "Datto Device"
	DestinationTypeDocument          DestinationType = "Document"
	DestinationTypeFolder            DestinationType = "Folder"
	DestinationTypeDomain            DestinationType = "Domain"
	DestinationTypeLocation          DestinationType = "Location"
	DestinationTypeOrganization      DestinationType = "Organization"
	DestinationTypePassword          DestinationType = "Password"
	DestinationTypeSSLCertificate    DestinationType = "SSL Certificate"
	DestinationTypeFlexibleAsset     DestinationType = "Flexible Asset"
	DestinationTypeTicket            DestinationType = "Ticket"
)

func destinationTypes() []interface{} {
	return []interface{}{
		DestinationTypeUser,
		DestinationTypeChecklist,
		DestinationTypeChecklistTemplate,
		DestinationTypeContact,
		DestinationTypeConfiguration,
		DestinationTypeDattoDevice,
		DestinationTypeDocument,
		DestinationTypeFolder,
		DestinationTypeDomain,
		DestinationTypeLocation,
		DestinationTypeOrganization,
		DestinationTypePassword,
		DestinationTypeSSLCertificate,
		DestinationTypeFlexibleAsset,
		DestinationTypeTicket,
	}
}

// relationshipPath builds /{resource_type}/{resource_id}/relationships/{relation}.
func relationshipPath(rt ResourceType, resourceID int64, relation string) string {
	return fmt.Sprintf("%s/%d/relationships/%s", rt, resourceID, relation)
}

// memberPath builds /{resource_type}/{resource_id}/relationships/{relation}/{id}.
func memberPath(rt ResourceType, resourceID int64, relation string, id int64) string {
	return fmt.Sprintf("%s/%d/relationships/%s/%d", rt, resourceID, relation, id)
}
