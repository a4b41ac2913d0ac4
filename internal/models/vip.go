package models

import "strings"

// VIP is an immutable snapshot of a protected public figure under monitoring.
// A new fetch replaces the whole set; records are never mutated in place.
type VIP struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Instagram      string   `json:"instagram"`
	Twitter        string   `json:"twitter"`
	Followers      int64    `json:"followers"`
	ProfilePicture string   `json:"profile_picture,omitempty"`
	RiskLevel      string   `json:"risk_level"`
	Aliases        []string `json:"aliases,omitempty"`
}

// Severity classifies the VIP's current risk level.
func (v *VIP) Severity() Severity {
	return ClassifyRisk(v.RiskLevel)
}

// VIPIndex resolves a VIP by canonical name or any known alias. Lookups are
// case-insensitive, so a record referencing "Jane Doe" and one referencing
// the alias "J.D." resolve to the same identity.
type VIPIndex struct {
	byName map[string]*VIP
}

// NewVIPIndex builds an index over the given VIP set. The slice is not
// copied; the index shares the same immutable snapshot.
func NewVIPIndex(vips []VIP) *VIPIndex {
	idx := &VIPIndex{byName: make(map[string]*VIP, len(vips))}
	for i := range vips {
		vip := &vips[i]
		idx.byName[normalizeName(vip.Name)] = vip
		for _, alias := range vip.Aliases {
			idx.byName[normalizeName(alias)] = vip
		}
	}
	return idx
}

// Lookup returns the VIP matching the given name or alias, or nil if the
// name is unknown.
func (idx *VIPIndex) Lookup(nameOrAlias string) *VIP {
	return idx.byName[normalizeName(nameOrAlias)]
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
