package entity

import "strings"

type MembershipTier struct {
	Key      string
	Name     string
	Price    string
	Period   string
	Benefits []string
	Popular  bool
}

func MembershipTiers() []MembershipTier {
	return []MembershipTier{
		{
			Key:   "basic",
			Name:  "Basic Member",
			Price: "Free",
			Benefits: []string{
				"Access to alumni directory",
				"Monthly newsletter",
				"Basic event invitations",
			},
		},
		{
			Key:     "premium",
			Name:    "Premium Member",
			Price:   "$50",
			Period:  "/year",
			Popular: true,
			Benefits: []string{
				"All Basic benefits",
				"Exclusive networking events",
				"Career services access",
				"Mentorship program",
			},
		},
		{
			Key:    "lifetime",
			Name:   "Lifetime Member",
			Price:  "$500",
			Period: "/once",
			Benefits: []string{
				"All Premium benefits",
				"VIP event access",
				"Recognition plaque",
				"Lifetime directory listing",
			},
		},
	}
}

// LookupTier finds a tier by key, case-insensitively.
func LookupTier(key string) (MembershipTier, bool) {
	for _, t := range MembershipTiers() {
		if strings.EqualFold(t.Key, strings.TrimSpace(key)) {
			return t, true
		}
	}
	return MembershipTier{}, false
}
