package services

import "roomly_server/models"

// PassesFilter decides whether a candidate listing satisfies a viewer's
// filter set. The default is permissive: a nil filter, a nil bound or an
// empty area list never restricts, and a malformed range (min above max)
// is ignored rather than rejected.
func PassesFilter(listing *models.Listing, filter *models.Filter) bool {
	if filter == nil || listing == nil {
		return true
	}

	return inRange(listing.MonthlyRent, filter.RentMin, filter.RentMax) &&
		inRange(listing.SizeSqm, filter.SizeMin, filter.SizeMax) &&
		inAreas(listing.City, filter.Areas)
}

func inRange(value float64, min, max *float64) bool {
	if min != nil && max != nil && *min > *max {
		// malformed bounds do not restrict
		return true
	}
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}

func inAreas(city string, areas []string) bool {
	if len(areas) == 0 {
		return true
	}
	for _, area := range areas {
		if area == city {
			return true
		}
	}
	return false
}
