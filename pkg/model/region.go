package model

import (
	"encoding/json"
	"fmt"
)

// Provider identifies the cloud platform operating a region.
type Provider string

const (
	ProviderAWS   Provider = "AWS"
	ProviderAzure Provider = "Azure"
)

// Providers returns the allowed provider values in documentation order.
func Providers() []string {
	return []string{string(ProviderAWS), string(ProviderAzure)}
}

// Service identifiers known to the catalog. ServiceVault is the only tiered
// service; the rest are plain availability flags.
const (
	ServiceVault         = "vdc_vault"
	ServiceCompute       = "compute"
	ServiceObjectStorage = "object_storage"
	ServiceCDN           = "cdn"
	ServiceMonitoring    = "monitoring"
)

// KnownServices returns every queryable service identifier.
func KnownServices() []string {
	return []string{ServiceVault, ServiceCompute, ServiceObjectStorage, ServiceCDN, ServiceMonitoring}
}

// Vault tier and edition values.
const (
	TierCore    = "Core"
	TierNonCore = "Non-Core"

	EditionFoundation = "Foundation"
	EditionAdvanced   = "Advanced"
)

// Tiers returns the allowed vault tier values.
func Tiers() []string { return []string{TierCore, TierNonCore} }

// Editions returns the allowed vault edition values.
func Editions() []string { return []string{EditionFoundation, EditionAdvanced} }

// VaultEntry is one edition/tier combination offered by a region. A region
// may offer several; duplicates carry no meaning.
type VaultEntry struct {
	Edition string `json:"edition"`
	Tier    string `json:"tier"`
}

// ServiceAvailability is a tagged union with two variants: a boolean
// availability flag, or a set of vault edition/tier entries. Dispatch on the
// Tiered tag rather than inspecting Entries.
type ServiceAvailability struct {
	Tiered    bool
	Available bool         // boolean variant only
	Entries   []VaultEntry // tiered variant only
}

// BooleanAvailability builds the flag variant.
func BooleanAvailability(available bool) ServiceAvailability {
	return ServiceAvailability{Available: available}
}

// TieredAvailability builds the vault variant.
func TieredAvailability(entries ...VaultEntry) ServiceAvailability {
	return ServiceAvailability{Tiered: true, Entries: entries}
}

// The generated dataset encodes a boolean service as a JSON bool and a
// tiered service as an array of {edition, tier} objects. The union keeps
// that wire shape in both directions.

// MarshalJSON encodes the variant in the dataset's wire shape.
func (a ServiceAvailability) MarshalJSON() ([]byte, error) {
	if a.Tiered {
		return json.Marshal(a.Entries)
	}
	return json.Marshal(a.Available)
}

// UnmarshalJSON decodes either wire shape into the tagged union.
func (a *ServiceAvailability) UnmarshalJSON(data []byte) error {
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*a = ServiceAvailability{Available: flag}
		return nil
	}
	var entries []VaultEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("service availability must be a bool or a list of edition/tier entries: %w", err)
	}
	*a = ServiceAvailability{Tiered: true, Entries: entries}
	return nil
}

// Region is one immutable catalog record. ID is unique and stable across
// releases; it doubles as the deterministic sort tie-break.
type Region struct {
	ID        string                         `json:"id" db:"id"`
	Name      string                         `json:"name" db:"name"`
	Provider  Provider                       `json:"provider" db:"provider"`
	Latitude  float64                        `json:"latitude" db:"latitude"`
	Longitude float64                        `json:"longitude" db:"longitude"`
	Aliases   []string                       `json:"aliases,omitempty"`
	Services  map[string]ServiceAvailability `json:"services"`
}

// HasService reports whether the region offers the given service: a true
// flag for boolean services, at least one vault entry for the tiered one.
func (r Region) HasService(service string) bool {
	avail, ok := r.Services[service]
	if !ok {
		return false
	}
	if avail.Tiered {
		return len(avail.Entries) > 0
	}
	return avail.Available
}

// VaultEntries returns the region's vault edition/tier entries, nil when the
// region has no vault offering.
func (r Region) VaultEntries() []VaultEntry {
	avail, ok := r.Services[ServiceVault]
	if !ok || !avail.Tiered {
		return nil
	}
	return avail.Entries
}
