// Package authz holds the authorization policy: a single pure function that
// every service consults before touching a resource. Handlers never make role
// decisions on their own.
package authz

import "github.com/swiftcargo/logistics_app/internal/core/domain"

// Actor is the authenticated identity performing a request. ClientID is the
// actor's resolved client profile ID and stays empty for employees or when the
// operation does not require profile resolution.
type Actor struct {
	UserID   string
	Role     domain.UserRole
	ClientID string
}

// Action enumerates the operations the policy rules on.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionReport Action = "report"
)

// ResourceType enumerates the guarded resource kinds.
type ResourceType string

const (
	ResourceCompany  ResourceType = "company"
	ResourceOffice   ResourceType = "office"
	ResourceEmployee ResourceType = "employee"
	ResourceClient   ResourceType = "client"
	ResourceShipment ResourceType = "shipment"
)

// Resource describes the target of an action together with its ownership data.
// OwnerUserID is the user owning the resource (a client profile's user).
// OwnerClientIDs are the client profiles attached to the resource (a
// shipment's sender and receiver).
type Resource struct {
	Type           ResourceType
	OwnerUserID    string
	OwnerClientIDs []string
}

// Company returns a Resource for company administration checks.
func Company() Resource { return Resource{Type: ResourceCompany} }

// Office returns a Resource for office administration checks.
func Office() Resource { return Resource{Type: ResourceOffice} }

// Employee returns a Resource for employee administration checks.
func Employee() Resource { return Resource{Type: ResourceEmployee} }

// Client returns a Resource for the given client profile.
func Client(c domain.Client) Resource {
	return Resource{Type: ResourceClient, OwnerUserID: c.UserID, OwnerClientIDs: []string{c.ClientID}}
}

// Shipment returns a Resource for the given shipment.
func Shipment(s domain.Shipment) Resource {
	return Resource{Type: ResourceShipment, OwnerClientIDs: []string{s.SenderID, s.ReceiverID}}
}

// Allows is the authorization policy. It is pure: the decision depends only on
// the actor, the action, and the resource's ownership data.
//
// EMPLOYEE actors have full access to every resource and action. CLIENT actors
// may read client profiles (their own and other clients', needed to pick a
// recipient), update only their own profile, read and create shipments they are
// attached to as sender or receiver, and pull per-client reports only for their
// own profile. Everything else is denied.
func Allows(actor Actor, action Action, res Resource) bool {
	switch actor.Role {
	case domain.RoleEmployee:
		return true
	case domain.RoleClient:
		return clientAllows(actor, action, res)
	default:
		return false
	}
}

func clientAllows(actor Actor, action Action, res Resource) bool {
	switch res.Type {
	case ResourceClient:
		switch action {
		case ActionRead:
			return true
		case ActionUpdate, ActionReport:
			return res.OwnerUserID != "" && res.OwnerUserID == actor.UserID
		}
	case ResourceShipment:
		switch action {
		case ActionRead, ActionCreate:
			return ownedByClient(res, actor.ClientID)
		}
	}
	return false
}

func ownedByClient(res Resource, clientID string) bool {
	if clientID == "" {
		return false
	}
	for _, id := range res.OwnerClientIDs {
		if id == clientID {
			return true
		}
	}
	return false
}
